package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"runplay-store/internal/config"
	"runplay-store/internal/db"
	"runplay-store/internal/httpserver"
	gamerepo "runplay-store/internal/repository/game"
	"runplay-store/internal/service/catalog"
	"runplay-store/internal/service/session"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()

	var (
		dbpool *pgxpool.Pool
		cat    *catalog.Catalog
		err    error
	)
	switch cfg.CatalogSource {
	case config.CatalogPostgres:
		dbpool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer dbpool.Close()
		cat, err = catalog.LoadFrom(ctx, gamerepo.NewPostgres(dbpool, logger))
	default:
		cat, err = catalog.New(catalog.Seed())
	}
	if err != nil {
		logger.Fatalf("init catalog: %v", err)
	}
	logger.Printf("catalog loaded source=%s games=%d", cfg.CatalogSource, cat.Len())

	sessions := session.New(cfg.SessionTTL, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:  cat,
		Sessions: sessions,
	}, httpserver.Options{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped active_sessions=%d", sessions.Len())
	}
}
