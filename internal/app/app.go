package app

import (
	"fmt"

	"github.com/yungbote/storefront-backend/internal/platform/dapr"
	"github.com/yungbote/storefront-backend/internal/platform/httpcall"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/services"
	"github.com/yungbote/storefront-backend/internal/store"
)

// NewStore builds the configured state-store backend. All backends share the
// same key layout, so switching backends never reshapes data.
func NewStore(log *logger.Logger, cfg Config) (store.Store, error) {
	switch cfg.StateBackend {
	case "sidecar", "":
		client := dapr.NewClient(log, cfg.DaprHost, cfg.DaprHTTPPort)
		return store.NewSidecarStore(client, cfg.StoreName), nil
	case "redis":
		return store.NewRedisStore(log, cfg.RedisAddr, cfg.StoreName)
	case "postgres":
		return store.NewPostgresStore(log, cfg.Postgres, cfg.StoreName)
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
	}
}

// NewInvoker builds the cross-service caller: through the sidecar when one
// is configured, direct HTTP otherwise.
func NewInvoker(log *logger.Logger, cfg Config) services.Invoker {
	if cfg.StateBackend == "sidecar" || cfg.StateBackend == "" {
		return dapr.NewClient(log, cfg.DaprHost, cfg.DaprHTTPPort)
	}
	return httpcall.New(log, cfg.ServiceTargets)
}
