package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/storefront-backend/internal/http/handlers"
	httpMW "github.com/yungbote/storefront-backend/internal/http/middleware"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

// RouterConfig wires the handlers a given service exposes. Nil handlers are
// skipped, so each binary registers only its own routes on the shared router.
type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	Tracing     bool

	HealthHandler    *httpH.HealthHandler
	UserHandler      *httpH.EntityHandler
	ProductHandler   *httpH.EntityHandler
	OrderHandler     *httpH.OrderHandler
	ProfileHandler   *httpH.ProfileHandler
	CompositeHandler *httpH.CompositeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Tracing {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.RequestID())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	if cfg.UserHandler != nil {
		r.GET("/users/:userId", cfg.UserHandler.Get)
		r.POST("/users", cfg.UserHandler.Create)
		r.PUT("/users/:userId", cfg.UserHandler.Update)
	}

	if cfg.ProductHandler != nil {
		r.GET("/products/:productId", cfg.ProductHandler.Get)
		r.POST("/products", cfg.ProductHandler.Create)
		r.PUT("/products/:productId", cfg.ProductHandler.Update)
	}

	if cfg.OrderHandler != nil {
		r.GET("/orders/:orderId", cfg.OrderHandler.Get)
		r.GET("/orders", cfg.OrderHandler.ListByUser)
		r.POST("/orders", cfg.OrderHandler.Create)
		r.PUT("/orders/:orderId", cfg.OrderHandler.Update)
	}

	if cfg.ProfileHandler != nil {
		r.GET("/users/:userId/all-details-direct", cfg.ProfileHandler.GetProfile)
	}

	if cfg.CompositeHandler != nil {
		r.GET("/users/:userId/all-details-drasi", cfg.CompositeHandler.GetProfile)
	}

	return r
}
