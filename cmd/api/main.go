package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/restaurant-pos/internal/application/service"
	"github.com/sangkips/restaurant-pos/internal/config"
	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/restaurant-pos/internal/domain/repository"
	"github.com/sangkips/restaurant-pos/internal/infrastructure/catalog"
	"github.com/sangkips/restaurant-pos/internal/infrastructure/database"
	"github.com/sangkips/restaurant-pos/internal/infrastructure/repository"
	"github.com/sangkips/restaurant-pos/internal/presentation/http/handler"
	"github.com/sangkips/restaurant-pos/internal/presentation/http/middleware"
	"github.com/sangkips/restaurant-pos/internal/presentation/http/routes"
	"github.com/sangkips/restaurant-pos/pkg/logger"
	"github.com/sangkips/restaurant-pos/pkg/printer"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment: cfg.App.Env != "production",
		Encoding:      cfg.Logger.Encoding,
		Level:         cfg.Logger.Level,
		FilePath:      cfg.Logger.File,
	})
	defer func() { _ = log.Sync() }()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Menu and floor plan
	menu, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal("Failed to load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}
	log.Info("Catalog loaded",
		zap.String("version", menu.Version()),
		zap.Int("items", len(menu.Items())),
		zap.Int("tables", len(menu.TableIDs())),
	)

	// Storage backend
	kv, closeStore, err := openKVStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closeStore()

	keys := repository.Keys{Prefix: cfg.Storage.KeyPrefix}
	zoneStore := repository.NewZoneStore(kv, keys, log)
	ledgerStore := repository.NewLedgerStore(kv, keys, log)
	idempotencyRepo := repository.NewIdempotencyRepository(kv, keys)

	header := entity.ReceiptHeader{
		StoreName: cfg.Restaurant.Name,
		Address:   cfg.Restaurant.Address,
		Phone:     cfg.Restaurant.Phone,
		Footer:    cfg.Restaurant.Footer,
	}

	// Initialize services
	ledger := service.NewSalesLedger(ledgerStore, log, time.Now, cfg.Storage.Timeout)
	engine := service.NewOrderEngine(menu, zoneStore, ledger, log, service.EngineOptions{
		Header:       header,
		StoreTimeout: cfg.Storage.Timeout,
		Clock:        time.Now,
	})
	engine.Restore(ctx)

	catalogService := service.NewCatalogService(menu)
	reportService := service.NewReportService(ledger)

	// Initialize thermal printer
	thermalPrinter, err := printer.New(printer.Options{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	})
	if err != nil {
		log.Warn("Failed to initialize printer, printing disabled", zap.Error(err))
		thermalPrinter = printer.NewNullPrinter()
	}
	defer thermalPrinter.Close()
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Type, cfg.Printer.Width, header, log)

	// Initialize handlers
	handlers := &routes.Handlers{
		Catalog: handler.NewCatalogHandler(catalogService),
		Order:   handler.NewOrderHandler(engine, printerService),
		Sales:   handler.NewSalesHandler(ledger, reportService),
		Printer: handler.NewPrinterHandler(printerService),
	}

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfigFor(cfg.RateLimit.Requests, cfg.RateLimit.Duration))
	defer rateLimiter.Stop()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		Logger:          log,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting server", zap.String("name", cfg.App.Name), zap.String("port", port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	if err := engine.Flush(shutdownCtx); err != nil {
		log.Error("Failed to flush zone state", zap.Error(err))
	}
}

// openKVStore connects the configured storage driver
func openKVStore(ctx context.Context, cfg *config.Config, log logger.ZapLogger) (domainRepo.KVStore, func(), error) {
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug, log)
		if err != nil {
			return nil, nil, err
		}
		if err := database.AutoMigrate(db, log); err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repository.NewKVRepository(db), closeFn, nil
	case "redis":
		rdb, err := database.NewRedisClient(ctx, &cfg.Redis, log)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisKVRepository(rdb), func() { _ = rdb.Close() }, nil
	case "memory", "":
		log.Warn("Using in-memory storage, state is lost on restart")
		return repository.NewMemoryKVRepository(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q (use postgres, redis or memory)", cfg.Storage.Driver)
	}
}
