package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"blogpost-api/blog"
	"blogpost-api/config"
	"blogpost-api/db"
	"blogpost-api/handlers"
	"blogpost-api/logger"
	"blogpost-api/repository"
	"blogpost-api/routers"
	"blogpost-api/seed"
	"blogpost-api/server"
)

func main() {
	// Load config
	configPath := config.DefaultPath
	if p := os.Getenv("BLOG_CONFIG"); p != "" {
		configPath = p
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Println("Config file error:", err)
		os.Exit(1)
	}

	if err := logger.InitLogger(cfg.Log.AppLogFile, cfg.Log.Level); err != nil {
		fmt.Println("Failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Logger.Sync()

	logger.Logger.Info("Starting blog post server...")

	// Connect to LevelDB
	ldb, err := db.NewLevelDB(cfg.LevelDB.Path)
	if err != nil {
		logger.Logger.Fatal("Failed to open leveldb", zap.Error(err))
	}
	defer ldb.Close()

	postRepo := repository.NewBlogPostRepository(ldb)

	if cfg.Seed.Count > 0 {
		seedIfEmpty(postRepo, cfg.Seed.Count)
	}

	svc := blog.NewService(postRepo)
	h := handlers.NewHandler(svc)
	r := routers.NewRouter(h)

	srv := server.New(r, cfg.Server)
	if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Logger.Fatal("Failed to start server", zap.Error(err))
	}

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Logger.Info("Shutdown signal received, exiting...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		logger.Logger.Warn("Graceful shutdown failed", zap.Error(err))
	}
}

func seedIfEmpty(repo *repository.BlogPostRepository, n int) {
	count, err := repo.Count()
	if err != nil {
		logger.Logger.Fatal("Failed to count blog posts", zap.Error(err))
	}
	if count > 0 {
		return
	}
	if _, err := seed.Seed(repo, n); err != nil {
		logger.Logger.Fatal("Failed to seed blog posts", zap.Error(err))
	}
	logger.Logger.Info("Seeded blog posts", zap.Int("count", n))
}
