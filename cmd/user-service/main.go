package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/storefront-backend/internal/app"
	httpx "github.com/yungbote/storefront-backend/internal/http"
	"github.com/yungbote/storefront-backend/internal/http/handlers"
	"github.com/yungbote/storefront-backend/internal/observability"
	"github.com/yungbote/storefront-backend/internal/platform/envutil"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/services"
)

func main() {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := app.LoadConfig(log, "user-state-store")

	shutdownTracing := observability.InitTracing(context.Background(), log, "user-service")
	defer func() { _ = shutdownTracing(context.Background()) }()

	st, err := app.NewStore(log, cfg)
	if err != nil {
		log.Fatal("state store init failed", "error", err)
	}

	userService := services.NewUserService(log, st)

	srv := httpx.NewServer(httpx.RouterConfig{
		Log:           log,
		ServiceName:   "user-service",
		Tracing:       cfg.Tracing,
		HealthHandler: handlers.NewHealthHandler(),
		UserHandler:   handlers.NewEntityHandler(userService, "userId"),
	})

	log.Info("user-service listening", "port", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed", "error", err)
	}
}
