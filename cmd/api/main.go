// ABOUTME: Main entry point for the OK Crisis content pipeline
// ABOUTME: Wires together all components, starts the scheduler and the admin HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"okcrisis-api/api"
	"okcrisis-api/api/handlers"
	"okcrisis-api/core/comics"
	"okcrisis-api/core/cycle"
	"okcrisis-api/core/evaluate"
	"okcrisis-api/core/images"
	"okcrisis-api/core/interfaces"
	"okcrisis-api/core/newsfeed"
	"okcrisis-api/core/satire"
	"okcrisis-api/core/scheduler"
	stdhttp "okcrisis-api/infrastructure/http/standard"
	"okcrisis-api/infrastructure/llm/groq"
	logruslogger "okcrisis-api/infrastructure/logger/logrus"
	"okcrisis-api/infrastructure/storage"
	filestore "okcrisis-api/infrastructure/storage/file"
	memorystore "okcrisis-api/infrastructure/storage/memory"
	redisstore "okcrisis-api/infrastructure/storage/redis"
	sqlitestore "okcrisis-api/infrastructure/storage/sqlite"
	"okcrisis-api/pkg/config"
	"okcrisis-api/pkg/ratelimit"
)

// jitterMax is the random slack added on top of the minimum delay
// between generative backend calls.
const jitterMax = 500 * time.Millisecond

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(logruslogger.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	logger.Info("Starting OK Crisis pipeline", map[string]interface{}{
		"port":    cfg.Server.Port,
		"storage": cfg.Storage.Type,
		"offline": cfg.Generation.Offline,
	})

	archive := buildArchive(cfg, logger)

	// Feed and image fetches are quick; generative calls are not.
	feedClient := stdhttp.NewClient(30 * time.Second)
	generativeClient := stdhttp.NewClient(60 * time.Second)

	textGen := groq.NewClient(groq.Config{
		APIKey:  cfg.Generation.APIKey,
		BaseURL: cfg.Generation.BaseURL,
		Model:   cfg.Generation.Model,
	}, generativeClient, logger)

	feedDeps := interfaces.Dependencies{
		HTTPClient: feedClient,
		Logger:     logger,
	}
	genDeps := interfaces.Dependencies{
		HTTPClient: generativeClient,
		Logger:     logger,
		TextGen:    textGen,
	}

	fetcher := newsfeed.NewService(newsfeed.Config{
		APIKey:      cfg.Feed.APIKey,
		BaseURL:     cfg.Feed.BaseURL,
		Categories:  cfg.Feed.Categories,
		PageSize:    cfg.Feed.PageSize,
		MaxStories:  cfg.Feed.MaxStories,
		CacheTTL:    cfg.Feed.CacheTTL,
		RSSFallback: cfg.Feed.RSSFallback,
	}, feedDeps)

	// Each service gets its own call budget on the shared delay policy.
	scorer := evaluate.NewService(genDeps, ratelimit.New(cfg.Generation.MinRequestDelay, jitterMax))
	writer := satire.NewService(satire.Config{
		Styles:  cfg.Generation.Styles,
		Offline: cfg.Generation.Offline,
	}, genDeps, ratelimit.New(cfg.Generation.MinRequestDelay, jitterMax))
	cartoonist := comics.NewService(genDeps, ratelimit.New(cfg.Generation.MinRequestDelay, jitterMax))

	illustrator, err := images.NewService(images.Config{
		ReplicateToken: cfg.Images.ReplicateToken,
		PexelsKey:      cfg.Images.PexelsKey,
		UnsplashKey:    cfg.Images.UnsplashKey,
		ImageDir:       cfg.Images.ImageDir,
		ComicDir:       cfg.Images.ComicDir,
		ArticleWidth:   cfg.Images.ArticleWidth,
		ArticleHeight:  cfg.Images.ArticleHeight,
		ComicWidth:     cfg.Images.ComicWidth,
		ComicHeight:    cfg.Images.ComicHeight,
	}, interfaces.Dependencies{HTTPClient: feedClient, Logger: logger})
	if err != nil {
		log.Fatalf("Failed to create image service: %v", err)
	}

	cleaner := cycle.NewCleaner(cycle.CleanerConfig{
		ImageDir:             cfg.Images.ImageDir,
		ComicDir:             cfg.Images.ComicDir,
		TempDirs:             []string{cfg.Images.TempDir},
		MaxImagesStored:      cfg.Images.MaxImagesStored,
		MaxComicImagesStored: cfg.Images.MaxComicImagesStored,
	}, logger)

	orchestrator := cycle.NewOrchestrator(cycle.Config{
		ArticlesPerCycle: cfg.Generation.ArticlesPerCycle,
		ComicsPerCycle:   cfg.Generation.ComicsPerCycle,
		Offline:          cfg.Generation.Offline,
	}, fetcher, scorer, writer, cartoonist, illustrator, archive, cleaner, logger)

	// Scheduler runs until shutdown cancels its context.
	schedCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()

	sched := scheduler.New(scheduler.Config{
		MorningRunTime: cfg.Schedule.MorningRunTime,
		EveningRunTime: cfg.Schedule.EveningRunTime,
	}, orchestrator, logger)
	go sched.Start(schedCtx)

	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // 100 requests per minute
		RateWindow: time.Minute,
	})

	handlers.NewCycleHandler(orchestrator).RegisterRoutes(humaAPI)
	handlers.NewArchiveHandler(archive).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(archive).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
		// A manual cycle run blocks for minutes, so the write timeout
		// must cover a full pipeline pass.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...", nil)
	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildArchive selects the storage backend, falling back to memory when
// an external backend cannot be reached.
func buildArchive(cfg *config.Config, logger interfaces.Logger) interfaces.Archive {
	limits := storage.Limits{
		MaxArticles: cfg.Storage.MaxArticlesStored,
		MaxComics:   cfg.Storage.MaxComicsStored,
	}

	switch cfg.Storage.Type {
	case "redis":
		archive, err := redisstore.NewArchive(redisstore.Config{
			Address:  cfg.Storage.Redis.Address,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		}, limits)
		if err != nil {
			logger.Error("Failed to create Redis archive, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memorystore.NewArchive(limits)
		}
		logger.Info("Using Redis archive", map[string]interface{}{
			"address": cfg.Storage.Redis.Address,
		})
		return archive

	case "sqlite":
		archive, err := sqlitestore.NewArchive(cfg.Storage.SQLitePath, limits)
		if err != nil {
			logger.Error("Failed to create SQLite archive, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memorystore.NewArchive(limits)
		}
		logger.Info("Using SQLite archive", map[string]interface{}{
			"path": cfg.Storage.SQLitePath,
		})
		return archive

	case "memory":
		logger.Info("Using in-memory archive", nil)
		return memorystore.NewArchive(limits)

	default:
		archive, err := filestore.NewArchive(cfg.Storage.DataDir, limits)
		if err != nil {
			logger.Error("Failed to create file archive, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memorystore.NewArchive(limits)
		}
		logger.Info("Using file archive", map[string]interface{}{
			"dir": cfg.Storage.DataDir,
		})
		return archive
	}
}
