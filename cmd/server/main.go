package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop-backend/config"
	"shop-backend/internal/api"
	"shop-backend/internal/seed"
	"shop-backend/internal/service"
	"shop-backend/internal/store"
	"shop-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting shop backend")

	tp, err := util.InitTracer("shop-backend", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	// The store is optional at startup: without DATABASE_URL and
	// DATABASE_NAME the API stays up and data operations report the
	// store as unavailable.
	var st *store.Store
	if cfg.Database.URL == "" || cfg.Database.Name == "" {
		logger.Warn("DATABASE_URL or DATABASE_NAME not set, running without a document store")
	} else {
		st, err = store.NewStore(cfg.Database.URL, cfg.Database.Name)
		if err != nil {
			logger.Warn("Document store unreachable, running degraded", zap.Error(err))
			st = nil
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = st.Close(ctx)
			}()
			logger.Info("Document store connected", zap.String("database", cfg.Database.Name))

			seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := seed.Run(seedCtx, st); err != nil {
				logger.Warn("Demo data seeding failed", zap.Error(err))
			}
			cancel()
		}
	}

	catalogService := service.NewCatalogService(st)
	cartService := service.NewCartService(st)
	checkoutService := service.NewCheckoutService(st)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	handler := api.NewHandler(catalogService, cartService, checkoutService, st, cfg)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
