// Package main provides the entry point for the auction HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	auctionRouter "github.com/cricbid/ipl-auction/internal/auction/router"
	appConfig "github.com/cricbid/ipl-auction/internal/config"
	"github.com/cricbid/ipl-auction/internal/database"
	"github.com/cricbid/ipl-auction/internal/database/migrate"
	"github.com/cricbid/ipl-auction/internal/database/pool"
	"github.com/cricbid/ipl-auction/internal/health"
	"github.com/cricbid/ipl-auction/internal/middleware"
	playerRouter "github.com/cricbid/ipl-auction/internal/player/router"
	"github.com/cricbid/ipl-auction/internal/seed"
	teamRouter "github.com/cricbid/ipl-auction/internal/team/router"
	"github.com/cricbid/ipl-auction/pkg/logger"
	"github.com/cricbid/ipl-auction/pkg/retry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbCfg := database.LoadConfigFromEnv()
	db, err := retry.DoWithResult(ctx, retry.DefaultConfig(), func() (*gorm.DB, error) {
		return database.NewWithConfig(dbCfg)
	})
	if err != nil {
		zlog.Fatalw("failed to connect to database", "driver", dbCfg.Driver, "error", err)
	}

	if err := pool.Setup(db, pool.LoadConfigFromEnv()); err != nil {
		zlog.Fatalw("failed to configure connection pool", "error", err)
	}
	if err := migrate.Run(db, dbCfg.Driver); err != nil {
		zlog.Fatalw("failed to migrate database", "error", err)
	}
	if err := seed.Run(ctx, db, zlog); err != nil {
		zlog.Fatalw("failed to seed database", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zlog), middleware.Logger(zlog))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "ipl-auction", "status": "running"})
	})
	r.GET("/health", health.New(db, zlog).Check)

	teamRouter.RegisterRoutes(r, db, zlog)
	playerRouter.RegisterRoutes(r, db, zlog)
	auctionRouter.RegisterRoutes(r, db, zlog)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zlog.Infow("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("server error", "error", err)
		}
	}()

	<-ctx.Done()
	zlog.Infow("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Errorw("graceful shutdown failed", "error", err)
	}
	zlog.Infow("server stopped")
}
