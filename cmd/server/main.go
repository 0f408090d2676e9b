package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"stock_api/internal/app/di"
	"stock_api/internal/app/router"
	"stock_api/internal/platform/config"
	"stock_api/internal/platform/db"
	"stock_api/internal/platform/logger"
	"stock_api/internal/shared/schema"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()
	zap.ReplaceGlobals(lg)

	gin.SetMode(cfg.Server.Mode)

	// db
	gdb, err := db.OpenDB(cfg.DB, lg)
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			lg.Error("failed to close database", zap.Error(err))
		}
	}()
	if cfg.DB.VerifySchema {
		if err := schema.Verify(gdb); err != nil {
			lg.Fatal("schema check failed", zap.Error(err))
		}
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		lg.Fatal("failed to get sql.DB", zap.Error(err))
	}

	// metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(sqlDB, cfg.DB.Name),
	)

	// ルータ生成
	r := router.NewRouter(
		router.Handlers{
			Tickers:        di.NewTickerHandler(gdb, lg),
			Stocks:         di.NewStockHandler(gdb, cfg.Query, lg),
			CompanyDetails: di.NewCompanyDetailHandler(gdb, lg),
		},
		router.Deps{
			Server:   cfg.Server,
			Log:      lg.Named("http"),
			DB:       sqlDB,
			Registry: reg,
		},
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		lg.Info("server started", zap.String("addr", srv.Addr), zap.Int("schema_version", schema.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		lg.Error("server forced to shutdown", zap.Error(err))
		return
	}
	lg.Info("server exited")
}
