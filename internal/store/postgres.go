package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

// StateEntry is one keyed document in the shared state table. The layout
// mirrors the Dapr Postgres state component: one row per (store, key) pair
// with the document stored as jsonb.
type StateEntry struct {
	StoreName string `gorm:"primaryKey;column:store_name"`
	Key       string `gorm:"primaryKey;column:key"`
	Value     []byte `gorm:"type:jsonb;not null;column:value"`
	UpdatedAt time.Time
}

func (StateEntry) TableName() string { return "state_entries" }

// PostgresStore serves one logical state store from a Postgres table.
type PostgresStore struct {
	log       *logger.Logger
	db        *gorm.DB
	storeName string
}

// PostgresConfig carries the connection parameters; no package-level state.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func NewPostgresStore(logg *logger.Logger, cfg PostgresConfig, storeName string) (*PostgresStore, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name,
	)

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}
	if err := db.AutoMigrate(&StateEntry{}); err != nil {
		return nil, fmt.Errorf("migrate state table: %w", err)
	}

	return &PostgresStore{
		log:       logg.With("service", "PostgresStore", "store", storeName),
		db:        db,
		storeName: storeName,
	}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry StateEntry
	err := s.db.WithContext(ctx).
		Where("store_name = ? AND key = ?", s.storeName, key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domain.Dependency(s.storeName, err)
	}
	return entry.Value, true, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	entry := StateEntry{
		StoreName: s.storeName,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_name"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return domain.Dependency(s.storeName, err)
	}
	return nil
}
