// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"greencart/config"
	"greencart/internal/delivery/http/middleware"
	"greencart/internal/delivery/http/router/handler"
	"greencart/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	Registry       *prometheus.Registry
	UserHandler    *handler.UserHandler
	SellerHandler  *handler.SellerHandler
	CartHandler    *handler.CartHandler
	ProductHandler *handler.ProductHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	registry       *prometheus.Registry
	userHandler    *handler.UserHandler
	sellerHandler  *handler.SellerHandler
	cartHandler    *handler.CartHandler
	productHandler *handler.ProductHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		registry:       params.Registry,
		userHandler:    params.UserHandler,
		sellerHandler:  params.SellerHandler,
		cartHandler:    params.CartHandler,
		productHandler: params.ProductHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.registry != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))
	}

	credentialLimiter := middleware.NewCredentialRateLimiter(r.cfg)

	api := e.Group("/api")

	userGroup := api.Group("/user")
	{
		userGroup.POST("/register", r.userHandler.Register, credentialLimiter)
		userGroup.POST("/login", r.userHandler.Login, credentialLimiter)
		userGroup.GET("/is-auth", r.userHandler.IsAuth, r.authMiddleware.UserGate)
		userGroup.GET("/logout", r.userHandler.Logout, r.authMiddleware.UserGate)
		userGroup.POST("/add-address", r.userHandler.AddAddress, r.authMiddleware.UserGate)
		userGroup.GET("/get-address", r.userHandler.GetAddresses, r.authMiddleware.UserGate)
	}

	sellerGroup := api.Group("/seller")
	{
		sellerGroup.POST("/login", r.sellerHandler.Login, credentialLimiter)
		sellerGroup.GET("/is-auth", r.sellerHandler.IsAuth, r.authMiddleware.SellerGate)
		sellerGroup.GET("/logout", r.sellerHandler.Logout, r.authMiddleware.SellerGate)
	}

	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.UserGate)
	{
		cartGroup.POST("/update", r.cartHandler.Update)
	}

	productGroup := api.Group("/product")
	{
		productGroup.GET("/list", r.productHandler.List)
	}
}
