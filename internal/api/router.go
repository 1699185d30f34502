package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/shopdesk/store-admin/internal/api/handler"
	"github.com/shopdesk/store-admin/internal/api/middleware"
	"github.com/shopdesk/store-admin/internal/core/imagelist"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

// maxBatchFiles bounds the request body of image and product calls, which
// may carry several inline images.
const maxBatchFiles = 16

// Deps are the services the panel API is built on.
type Deps struct {
	Log           zerolog.Logger
	Session       ports.SessionService
	Products      ports.ProductService
	Categories    ports.CategoryService
	Settings      ports.SettingsService
	Ingester      *imagelist.Ingester
	MaxImageBytes int64
	Readiness     map[string]handler.Pinger

	// Registry receives the HTTP request metrics. Nil means the default
	// Prometheus registry, which also serves /metrics.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLog(d.Log))
	e.Use(requestMetrics(d.Registry))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(d.Session)
	productHandler := handler.NewProductHandler(d.Products, d.Settings)
	categoryHandler := handler.NewCategoryHandler(d.Categories)
	settingsHandler := handler.NewSettingsHandler(d.Settings)
	imageHandler := handler.NewImageHandler(d.Ingester)

	// --- Session routes (no session required) ---
	sess := e.Group("/panel/session")
	sess.POST("/login", sessionHandler.Login)
	sess.POST("/logout", sessionHandler.Logout)
	sess.GET("", sessionHandler.Get)

	// --- Protected panel routes ---
	panel := e.Group("/panel",
		echomiddleware.BodyLimit(bodyLimit(d.MaxImageBytes)),
		middleware.RequireSession(d.Session),
	)

	panel.GET("/products", productHandler.List)
	panel.POST("/products", productHandler.Create)
	panel.PUT("/products/:id", productHandler.Update)
	panel.DELETE("/products/:id", productHandler.Delete)

	panel.GET("/categories", categoryHandler.List)
	panel.POST("/categories", categoryHandler.Create)
	panel.PUT("/categories/:id", categoryHandler.Update)
	panel.DELETE("/categories/:id", categoryHandler.Delete)

	panel.GET("/settings/exchange-rates", settingsHandler.GetRates)
	panel.PUT("/settings/exchange-rates", settingsHandler.UpdateRates)

	panel.POST("/images/add-url", imageHandler.AddURL)
	panel.POST("/images/remove", imageHandler.Remove)
	panel.POST("/images/reorder", imageHandler.Reorder)
	panel.POST("/images/normalize", imageHandler.Normalize)
	panel.POST("/images/upload", imageHandler.Upload)
	panel.POST("/images/replace", imageHandler.Replace)

	// --- Health probes, metrics and docs (no session required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Readiness, d.Session)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", metricsHandler(d.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func bodyLimit(maxImageBytes int64) string {
	if maxImageBytes <= 0 {
		maxImageBytes = 5 << 20
	}
	// Base64 inflates inline images by a third.
	return fmt.Sprintf("%dK", maxBatchFiles*maxImageBytes*4/3/1024+64)
}

func requestMetrics(reg *prometheus.Registry) echo.MiddlewareFunc {
	cfg := echoprometheus.MiddlewareConfig{Subsystem: "storeadmin"}
	if reg != nil {
		cfg.Registerer = reg
	}
	return echoprometheus.NewMiddlewareWithConfig(cfg)
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
