package app

import (
	"github.com/yungbote/storefront-backend/internal/platform/envutil"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/store"
)

// Config carries everything a service binary needs. It is built once at
// startup and passed into components explicitly; nothing reads the
// environment after this point.
type Config struct {
	Port    string
	LogMode string

	// sidecar | redis | postgres
	StateBackend string
	// Logical state store name, e.g. "order-state-store".
	StoreName string

	DaprHost     string
	DaprHTTPPort string

	RedisAddr string
	Postgres  store.PostgresConfig

	// Base URLs for direct (sidecarless) service invocation.
	ServiceTargets map[string]string

	EnrichConcurrency int
	Tracing           bool
}

// LoadConfig reads the environment. defaultStoreName is the service's own
// logical store ("user-state-store" and friends), overridable via STORE_NAME.
func LoadConfig(log *logger.Logger, defaultStoreName string) Config {
	cfg := Config{
		Port:         envutil.String("PORT", "8080"),
		LogMode:      envutil.String("LOG_MODE", "development"),
		StateBackend: envutil.String("STATE_BACKEND", "sidecar"),
		StoreName:    envutil.String("STORE_NAME", defaultStoreName),
		DaprHost:     envutil.String("DAPR_HOST", "127.0.0.1"),
		DaprHTTPPort: envutil.String("DAPR_HTTP_PORT", "3500"),
		RedisAddr:    envutil.String("REDIS_ADDR", "localhost:6379"),
		Postgres: store.PostgresConfig{
			Host:     envutil.String("POSTGRES_HOST", "localhost"),
			Port:     envutil.String("POSTGRES_PORT", "5432"),
			User:     envutil.String("POSTGRES_USER", "postgres"),
			Password: envutil.String("POSTGRES_PASSWORD", ""),
			Name:     envutil.String("POSTGRES_NAME", "storefront"),
		},
		ServiceTargets: map[string]string{
			"user-service":    envutil.String("USER_SERVICE_URL", "http://localhost:8081"),
			"order-service":   envutil.String("ORDER_SERVICE_URL", "http://localhost:8082"),
			"product-service": envutil.String("PRODUCT_SERVICE_URL", "http://localhost:8083"),
		},
		EnrichConcurrency: envutil.Int("ENRICH_CONCURRENCY", 4),
		Tracing:           envutil.Bool("OTEL_ENABLED", false),
	}
	log.Info("configuration loaded",
		"port", cfg.Port,
		"state_backend", cfg.StateBackend,
		"store_name", cfg.StoreName,
	)
	return cfg
}
