package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"voltline/internal/commons"
	"voltline/internal/config"
	"voltline/internal/infrastructure/logger"
	"voltline/internal/infrastructure/mongodb"
	"voltline/internal/order"
	"voltline/internal/product"
	"voltline/internal/server"
)

func main() {
	var (
		cfg *config.Config
		err error
	)
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		cfg, err = commons.LoadConfig(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	client, err := mongodb.NewConnection(cfg.Mongo)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			zapLogger.Warn("disconnecting from database", zap.Error(err))
		}
	}()
	zapLogger.Info("database connected", zap.String("database", cfg.Mongo.Database))

	db := client.Database(cfg.Mongo.Database)

	orderCtrl := order.NewModule(db, cfg, zapLogger)
	productCtrl := product.NewModule(db, zapLogger)

	router := server.NewRouter(orderCtrl, productCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
