// Package server initializes and runs the CMS backend. It opens the
// database, applies migrations, seeds the admin account, selects the media
// storage backend and serves the HTTP API until shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/cmskeeper/internal/common"
	"github.com/dmitrijs2005/cmskeeper/internal/dbx"
	"github.com/dmitrijs2005/cmskeeper/internal/logging"
	"github.com/dmitrijs2005/cmskeeper/internal/server/auth"
	"github.com/dmitrijs2005/cmskeeper/internal/server/config"
	"github.com/dmitrijs2005/cmskeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/cmskeeper/internal/server/metrics"
	"github.com/dmitrijs2005/cmskeeper/internal/server/models"
	"github.com/dmitrijs2005/cmskeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/cmskeeper/internal/server/storage"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	repos  repomanager.RepositoryManager
	store  storage.Store
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{
		config: c,
		logger: logger,
		db:     db,
		repos:  repomanager.NewPostgresRepositoryManager(),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// seedAdminUser creates the admin account on first start. The check and the
// insert run in one transaction so concurrent instances cannot race.
func (app *App) seedAdminUser(ctx context.Context) error {
	return dbx.WithTx(ctx, app.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		users := app.repos.Users(tx)

		_, err := users.GetByUsername(ctx, "admin")
		if err == nil {
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		hash, err := auth.HashPassword(app.config.AdminPassword)
		if err != nil {
			return err
		}

		if _, err := users.Create(ctx, &models.User{
			Username:     "admin",
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}); err != nil {
			return err
		}

		app.logger.Info(ctx, "admin user created")
		return nil
	})
}

func (app *App) initStorage(ctx context.Context) (storage.Store, error) {
	switch app.config.MediaStorage {
	case "s3":
		return storage.NewS3Store(ctx, app.config)
	case "local":
		return storage.NewLocalStore(app.config.UploadDir)
	default:
		return nil, fmt.Errorf("unknown media storage: %s", app.config.MediaStorage)
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	reg := prometheus.NewRegistry()

	api := httpapi.New(httpapi.Deps{
		DB:        app.db,
		Repos:     app.repos,
		Store:     app.store,
		SecretKey: []byte(app.config.SecretKey),
		TokenTTL:  app.config.TokenValidityDuration,
		Logger:    app.logger,
		Metrics:   metrics.NewCollector(reg),
		Gatherer:  reg,
	})

	limiter := httpapi.DefaultLoginLimiter()
	defer limiter.Stop()

	server := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: api.Router(httpapi.RouterOptions{LoginLimiter: limiter}),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting http server", "addr", app.config.EndpointAddr)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	defer app.db.Close()

	if err := app.repos.RunMigrations(ctx, app.db); err != nil {
		app.logger.Error(ctx, "migration error", "error", err)
		return
	}

	if err := app.seedAdminUser(ctx); err != nil {
		app.logger.Error(ctx, "admin seed error", "error", err)
		return
	}

	store, err := app.initStorage(ctx)
	if err != nil {
		app.logger.Error(ctx, "storage init error", "error", err)
		return
	}
	app.store = store

	app.startHTTPServer(ctx, cancelFunc)
}
