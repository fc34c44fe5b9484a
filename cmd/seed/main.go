package main

import (
	"context"
	"log"
	"os"

	"runplay-store/internal/config"
	"runplay-store/internal/db"
	gamerepo "runplay-store/internal/repository/game"
	"runplay-store/internal/seed"
	"runplay-store/internal/service/catalog"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := gamerepo.NewPostgres(pool, logger)
	n, err := seed.Apply(ctx, repo, catalog.Seed())
	if err != nil {
		logger.Fatalf("seed apply: %v", err)
	}
	if err := seed.Verify(ctx, repo, catalog.Seed()); err != nil {
		logger.Fatalf("seed verify: %v", err)
	}

	logger.Printf("seed applied games=%d", n)
}
