// Package server assembles the gateway and the backend services into HTTP
// handlers and runs them.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"finpredictor/internal/config"
	"finpredictor/internal/database"
	"finpredictor/internal/logger"
	"finpredictor/internal/middleware"
	"finpredictor/internal/store"
)

// Service names, also used as CLI sub-commands.
const (
	ServiceGateway   = "gateway"
	ServiceUsers     = "users"
	ServicePortfolio = "portfolio"
	ServiceGoals     = "goals"
	ServiceAI        = "ai"
)

// Services lists every service in start-up order.
var Services = []string{ServiceUsers, ServicePortfolio, ServiceGoals, ServiceAI, ServiceGateway}

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// App builds service handlers from one configuration and owns the shared
// database connection, if any.
type App struct {
	cfg *config.Config
	db  *database.Manager
	log *zap.SugaredLogger
}

// New creates an App. A durable store driver opens the database and applies
// migrations before any handler is built.
func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg, log: logger.Named("server")}
	if cfg.StoreDriver == config.StoreMemory {
		return app, nil
	}

	db, err := database.NewManager(cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	app.db = db
	return app, nil
}

// Config returns the configuration the App was built from.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Close releases the database connection.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Port returns the configured listen port of a service.
func (a *App) Port(service string) (string, error) {
	switch service {
	case ServiceGateway:
		return a.cfg.GatewayPort, nil
	case ServiceUsers:
		return a.cfg.UsersPort, nil
	case ServicePortfolio:
		return a.cfg.PortfolioPort, nil
	case ServiceGoals:
		return a.cfg.GoalsPort, nil
	case ServiceAI:
		return a.cfg.AIPort, nil
	default:
		return "", fmt.Errorf("unknown service %q", service)
	}
}

// Handler builds the HTTP handler of a service.
func (a *App) Handler(service string) (http.Handler, error) {
	switch service {
	case ServiceGateway:
		return a.gatewayHandler()
	case ServiceUsers:
		return a.usersRouter(), nil
	case ServicePortfolio:
		return a.portfolioRouter(), nil
	case ServiceGoals:
		return a.goalsRouter(), nil
	case ServiceAI:
		return a.aiRouter(), nil
	default:
		return nil, fmt.Errorf("unknown service %q", service)
	}
}

func (a *App) gormDB() *gorm.DB {
	if a.db == nil {
		return nil
	}
	return a.db.DB()
}

// newStore returns a durable store when a database is open and a
// process-lifetime one otherwise.
func newStore[T any](db *gorm.DB, kind string) store.Store[T] {
	if db == nil {
		return store.NewMemoryStore[T]()
	}
	return store.NewGormStore[T](db, kind)
}

// upstreamClient makes one attempt per call; a 3xx is returned as is.
func (a *App) upstreamClient() *http.Client {
	return &http.Client{
		Timeout: a.cfg.UpstreamTimeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Run serves the handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, name, addr string, handler http.Handler) error {
	log := logger.Named(name)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%s: %w", name, err)
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%s: shutdown: %w", name, err)
	}
	return nil
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())
	r.Use(middleware.ErrorHandler())
	return r
}
