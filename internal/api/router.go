package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/freshbasket/grocery-system/internal/api/handler"
	"github.com/freshbasket/grocery-system/internal/core/ports"
)

// Deps carries everything the router needs wired in.
type Deps struct {
	Auth    ports.AuthService
	Catalog ports.CatalogService
	Orders  ports.OrderService
	Store   ports.Store
	Logger  zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("grocery"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	productHandler := handler.NewProductHandler(deps.Catalog)
	orderHandler := handler.NewOrderHandler(deps.Orders)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to Grocery Store API!"})
	})

	// --- Users ---
	e.GET("/users", authHandler.List)
	e.POST("/users", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Products ---
	e.GET("/products", productHandler.List)
	e.POST("/products", productHandler.Create)
	e.PUT("/products/:name", productHandler.Update)
	e.DELETE("/products/:name", productHandler.Delete)

	// --- Orders ---
	e.GET("/orders", orderHandler.List)
	e.POST("/orders", orderHandler.Create)
	e.PUT("/orders/:order_id", orderHandler.UpdateStatus)
	e.GET("/admin/overview", orderHandler.Overview)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
