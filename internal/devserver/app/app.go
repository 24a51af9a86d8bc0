package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	httpapi "github.com/fractalglobal/fgc/internal/devserver/http"
	"github.com/fractalglobal/fgc/internal/devserver/metrics"
	"github.com/fractalglobal/fgc/internal/devserver/service"
	"github.com/fractalglobal/fgc/internal/devserver/store"
	"github.com/fractalglobal/fgc/internal/devserver/store/drivers/sqlite"
	"github.com/fractalglobal/fgc/pkg/cryptox"
	"github.com/fractalglobal/fgc/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application is the Fractal dev server with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db      store.Store
	keys    *signingKeys
	metrics *metrics.Metrics

	tokenService        *service.TokenService
	clientService       *service.ClientService
	accountService      *service.AccountService
	friendService       *service.FriendService
	transactionService  *service.TransactionService
	housekeepingService *service.HousekeepingService

	bootstrap []service.CreatedClient

	server *http.Server
	router *httpapi.Router
}

// New creates the application: it opens and migrates the database, loads
// the signing key and seeds the bootstrap clients on first start.
func New(cfg Config) (*Application, error) {
	return NewWithLogger(cfg, slogx.New(slogx.Config{
		Service: "fractal-devserver",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	}))
}

// NewWithLogger is New with a caller supplied logger.
func NewWithLogger(cfg Config, logger *slog.Logger) (*Application, error) {
	app := &Application{cfg: cfg, logger: logger, metrics: metrics.New()}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keys, err := initSigningKeys(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize signing key: %w", err)
	}
	app.keys = keys

	app.initServices()

	ctx := slogx.WithContext(context.Background(), app.logger)
	app.bootstrap, err = app.clientService.EnsureBootstrapClients(ctx, cfg.AdminClient, cfg.PublicClient)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to seed bootstrap clients: %w", err)
	}

	app.initHTTP()
	return app, nil
}

// Handler returns the HTTP handler serving the API.
func (app *Application) Handler() http.Handler { return app.router }

// BootstrapClients returns the clients seeded by New. It is empty when the
// database already had clients.
func (app *Application) BootstrapClients() []service.CreatedClient { return app.bootstrap }

// Run serves HTTP until ctx is cancelled or the listener fails, then shuts
// down gracefully.
func (app *Application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.cfg.Addr, err)
	}

	app.housekeepingService.Start()
	app.logger.Info("fractal dev server starting", "addr", ln.Addr().String(), "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		app.logger.Info("shutdown requested")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Shutdown stops the server, the housekeeping loop and the database.
func (app *Application) Shutdown(ctx context.Context) error {
	app.logger.Info("shutting down fractal dev server...")

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("fractal dev server stopped")
	return nil
}

// Close releases resources of an application that was never Run.
func (app *Application) Close() error { return app.db.Close() }

func (app *Application) initDatabase() error {
	dsn := app.cfg.DatabaseFile
	if dsn != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dsn)
	}

	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	hasher := cryptox.PasswordHasher{Pepper: app.cfg.Pepper}

	app.tokenService = &service.TokenService{
		Store:       app.db,
		Signer:      app.keys.Signer,
		Hasher:      hasher,
		Issuer:      app.cfg.Issuer,
		AccessTTL:   app.cfg.AccessTTL,
		RememberTTL: app.cfg.RememberTTL,
	}
	app.clientService = &service.ClientService{Store: app.db, Hasher: hasher}
	app.accountService = &service.AccountService{
		Store:          app.db,
		Hasher:         hasher,
		Mailer:         service.LogMailer{},
		Issuer:         app.cfg.Issuer,
		InitialBalance: int64(app.cfg.InitialBalance),
		KeyTTL:         app.cfg.EmailKeyTTL,
	}
	app.friendService = &service.FriendService{Store: app.db}
	app.transactionService = &service.TransactionService{Store: app.db, Observer: app.metrics}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.KeySet,
		app.keys.Verifier,
		BuildVersion,
		app.db,
		app.metrics,
		app.logger,
	)

	router.TokenService = app.tokenService
	router.ClientService = app.clientService
	router.AccountService = app.accountService
	router.FriendService = app.friendService
	router.TransactionService = app.transactionService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              app.cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
