package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

// RedisStore hits Redis directly, for deployments that skip the sidecar.
// Keys are namespaced "{storeName}||{key}", matching the layout the Dapr
// Redis state component uses, so sidecar and direct deployments can share a
// Redis instance.
type RedisStore struct {
	log       *logger.Logger
	rdb       *goredis.Client
	storeName string
}

func NewRedisStore(log *logger.Logger, addr, storeName string) (*RedisStore, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{
		log:       log.With("service", "RedisStore", "store", storeName),
		rdb:       rdb,
		storeName: storeName,
	}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.rdb.Get(ctx, s.storeName+"||"+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domain.Dependency(s.storeName, err)
	}
	return val, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.storeName+"||"+key, value, 0).Err(); err != nil {
		return domain.Dependency(s.storeName, err)
	}
	return nil
}

func (s *RedisStore) Close() error { return s.rdb.Close() }
