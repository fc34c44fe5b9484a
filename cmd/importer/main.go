package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"runplay-store/internal/config"
	"runplay-store/internal/db"
	"runplay-store/internal/importer"
	gamerepo "runplay-store/internal/repository/game"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to games CSV (id,title,platform,category,base_price,discount_percent)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, gamerepo.NewPostgres(pool, logger))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d games: %v", count, err)
	}

	logger.Printf("imported games=%d file=%s took=%s", count, filePath, time.Since(start).Truncate(time.Millisecond))
}
