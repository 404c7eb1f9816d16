package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshbasket/grocery-system/internal/api"
	"github.com/freshbasket/grocery-system/internal/core/ports"
	"github.com/freshbasket/grocery-system/internal/core/service"
	"github.com/freshbasket/grocery-system/internal/infrastructure/config"
	"github.com/freshbasket/grocery-system/internal/infrastructure/notify"
	"github.com/freshbasket/grocery-system/internal/infrastructure/queue"
	filestore "github.com/freshbasket/grocery-system/internal/infrastructure/store/file"
	"github.com/freshbasket/grocery-system/internal/infrastructure/store/mongostore"
	"github.com/freshbasket/grocery-system/internal/infrastructure/store/redisstore"
	"github.com/freshbasket/grocery-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Amounts serialize as plain JSON numbers, matching the documents the
	// stores have always held.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}
	defer cleanup()
	log.Info().Str("driver", cfg.Store.Driver).Msg("store ready")

	notifier := notify.NewSMTPNotifier(notify.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		From:     cfg.SMTP.Email,
		Password: cfg.SMTP.Password,
	})
	dispatcher := queue.NewDispatcher(0, 0, notifier, log)
	dispatcher.Start(ctx)

	authService := service.NewAuthService(store, dispatcher, cfg.BcryptCost, log)
	catalogService := service.NewCatalogService(store, log)
	orderService := service.NewOrderService(store, catalogService, dispatcher, log)

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if err := authService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Error().Err(err).Msg("admin bootstrap failed")
		}
	}

	e := api.NewRouter(api.Deps{
		Auth:    authService,
		Catalog: catalogService,
		Orders:  orderService,
		Store:   store,
		Logger:  log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("grocery store API listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openStore builds the persistence driver selected by configuration. The
// returned cleanup closes any underlying client.
func openStore(ctx context.Context, cfg *config.Config) (ports.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, store, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Store.Mongo.URI,
			Database: cfg.Store.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return store, cleanup, nil

	case config.DriverRedis:
		client, store, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Store.Redis.Addr,
			DB:   cfg.Store.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = client.Close() }, nil

	default:
		store, err := filestore.New(cfg.Store.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}
