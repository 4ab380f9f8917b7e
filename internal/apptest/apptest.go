// Package apptest assembles the full HTTP application on the in-memory backend for end-to-end tests.
package apptest

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"greencart/config"
	deliveryhttp "greencart/internal/delivery/http"
	"greencart/internal/delivery/http/middleware"
	"greencart/internal/delivery/http/router"
	"greencart/internal/delivery/http/router/handler"
	"greencart/internal/delivery/http/session"
	"greencart/internal/infra/auth"
	"greencart/internal/infra/metrics"
	"greencart/internal/infra/persistence/memory"
	"greencart/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Seller credentials configured for every test application.
const (
	SellerEmail    = "seller@example.com"
	SellerPassword = "seller-secret"
)

// App is a running application backed by an in-memory store.
type App struct {
	Config   *config.Config
	Store    *memory.Store
	Registry *prometheus.Registry
	Echo     *echo.Echo
	Server   *httptest.Server
}

// NewConfig returns a development configuration on the memory driver.
func NewConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "development"
	cfg.Env.ServiceName = "greencart-test"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.RateLimit = &config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000, ExpiresIn: time.Minute}
	cfg.Storage.Driver = config.StorageDriverMemory
	cfg.SecretKey.JWT = "test-secret"
	cfg.Seller = config.SellerConfig{Email: SellerEmail, Password: SellerPassword}
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost, TokenTTL: 7 * 24 * time.Hour}
	cfg.Catalog = []config.CatalogProduct{
		{ID: "p1", Name: "Potato 500g", Category: "Vegetables", Price: 25, OfferPrice: 19.999, InStock: true},
		{ID: "p2", Name: "Tomato 1kg", Category: "Vegetables", Price: 40, OfferPrice: 35, InStock: true},
	}

	return cfg
}

// New builds the application and serves it until the test ends.
func New(t testing.TB) *App {
	t.Helper()

	app := NewWithConfig(t, NewConfig())
	app.Server = httptest.NewServer(app.Echo)
	t.Cleanup(app.Server.Close)

	return app
}

// NewWithConfig wires every layer the way the production container does, without binding a port.
func NewWithConfig(t testing.TB, cfg *config.Config) *App {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStoreFromConfig(cfg)
	registry := prometheus.NewRegistry()
	sessionMetrics := metrics.NewSessionMetrics(registry)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)
	cookies := session.NewCookiePolicy(cfg)

	userUC := impl.NewUserService(impl.UserServiceParams{
		TxManager:    store.TransactionManager(),
		UserRepo:     store.Users(),
		Hasher:       hasher,
		TokenService: tokenSvc,
		Metrics:      sessionMetrics,
		Logger:       logger,
	})
	addressUC := impl.NewAddressService(impl.AddressServiceParams{
		TxManager: store.TransactionManager(),
		UserRepo:  store.Users(),
		Logger:    logger,
	})
	sellerUC := impl.NewSellerService(impl.SellerServiceParams{
		Config:       cfg,
		TokenService: tokenSvc,
		Metrics:      sessionMetrics,
		Logger:       logger,
	})
	cartUC := impl.NewCartService(impl.CartServiceParams{
		UserRepo: store.Users(),
		Metrics:  sessionMetrics,
		Logger:   logger,
	})
	productUC := impl.NewProductService(store.Products())

	e := deliveryhttp.NewEcho(
		cfg,
		middleware.NewErrorMiddleware(logger),
		middleware.NewRequestIDMiddleware(logger),
		middleware.NewLoggerMiddleware(logger, cfg),
		router.RouterParams{
			Config:         cfg,
			Registry:       registry,
			UserHandler:    handler.NewUserHandler(userUC, addressUC, cookies, logger),
			SellerHandler:  handler.NewSellerHandler(sellerUC, cookies),
			CartHandler:    handler.NewCartHandler(cartUC),
			ProductHandler: handler.NewProductHandler(productUC),
			AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc, sessionMetrics, logger),
		},
	)

	return &App{
		Config:   cfg,
		Store:    store,
		Registry: registry,
		Echo:     e,
	}
}
