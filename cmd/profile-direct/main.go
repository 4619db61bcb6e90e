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

	cfg := app.LoadConfig(log, "")

	shutdownTracing := observability.InitTracing(context.Background(), log, "profile-direct")
	defer func() { _ = shutdownTracing(context.Background()) }()

	invoker := app.NewInvoker(log, cfg)
	enricher := services.NewOrderEnricher(log, invoker, cfg.EnrichConcurrency)
	profileService := services.NewProfileService(log, invoker, enricher)

	srv := httpx.NewServer(httpx.RouterConfig{
		Log:            log,
		ServiceName:    "profile-direct",
		Tracing:        cfg.Tracing,
		HealthHandler:  handlers.NewHealthHandler(),
		ProfileHandler: handlers.NewProfileHandler(profileService),
	})

	log.Info("profile-direct listening", "port", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed", "error", err)
	}
}
