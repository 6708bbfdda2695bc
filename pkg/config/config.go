// ABOUTME: Configuration management for the pipeline with environment variable support
// ABOUTME: Defines configuration structures for feeds, generation, storage and scheduling

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains admin HTTP server configuration
	Server ServerConfig

	// Feed contains news feed API configuration
	Feed FeedConfig

	// Generation contains generative backend and content configuration
	Generation GenerationConfig

	// Images contains image provider and rendering configuration
	Images ImageConfig

	// Storage contains archive backend configuration
	Storage StorageConfig

	// Schedule contains the twice-daily run configuration
	Schedule ScheduleConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds admin HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// FeedConfig holds news feed API configuration
type FeedConfig struct {
	// APIKey authenticates against the feed API
	APIKey string

	// BaseURL is the feed API endpoint
	BaseURL string

	// Categories are the feed categories queried each cycle
	Categories []string

	// PageSize is the number of stories requested per category
	PageSize int

	// MaxStories is the global cap across all categories per fetch
	MaxStories int

	// CacheTTL is how long a category's response is reused
	CacheTTL time.Duration

	// RSSFallback maps a category to an RSS feed URL used when the
	// JSON API fails or is unconfigured
	RSSFallback map[string]string
}

// GenerationConfig holds generative backend and content quotas
type GenerationConfig struct {
	// APIKey authenticates against the text generation API
	APIKey string

	// BaseURL is the chat-completions endpoint base
	BaseURL string

	// Model is the model identifier sent with each request
	Model string

	// ArticlesPerCycle is the per-cycle article quota
	ArticlesPerCycle int

	// ComicsPerCycle is the per-cycle comic quota
	ComicsPerCycle int

	// Styles is the set of satire styles to draw from
	Styles []string

	// MinRequestDelay is the client-side minimum delay between calls
	MinRequestDelay time.Duration

	// Offline gates the demo mode that produces templated content
	// without any backend calls
	Offline bool
}

// ImageConfig holds image provider keys and canvas dimensions
type ImageConfig struct {
	ReplicateToken string
	PexelsKey      string
	UnsplashKey    string

	// ImageDir and ComicDir are where rendered files are written
	ImageDir string
	ComicDir string
	TempDir  string

	// Article illustration canvas size
	ArticleWidth  int
	ArticleHeight int

	// Comic strip canvas size
	ComicWidth  int
	ComicHeight int

	// Retention limits for rendered files
	MaxImagesStored      int
	MaxComicImagesStored int
}

// StorageConfig holds archive backend configuration
type StorageConfig struct {
	// Type selects the backend (file/memory/redis/sqlite)
	Type string

	// DataDir is where the file backend keeps its JSON lists
	DataDir string

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// MaxArticlesStored bounds the retained article list
	MaxArticlesStored int

	// MaxComicsStored bounds the retained comic list
	MaxComicsStored int
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// ScheduleConfig holds the daily run slots
type ScheduleConfig struct {
	// MorningRunTime and EveningRunTime are local times as "HH:MM"
	MorningRunTime string
	EveningRunTime string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level logged (debug/info/warn/error)
	Level string

	// File is the rotated log file path; empty logs to stdout only
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Feed: FeedConfig{
			APIKey:      os.Getenv("NEWS_API_KEY"),
			BaseURL:     getEnvOrDefault("NEWS_API_URL", "https://newsdata.io/api/1/news"),
			Categories:  getEnvAsListOrDefault("NEWS_CATEGORIES", []string{"world", "politics", "business", "sports", "entertainment", "lifestyle"}),
			PageSize:    getEnvAsIntOrDefault("NEWS_PAGE_SIZE", 5),
			MaxStories:  getEnvAsIntOrDefault("MAX_NEWS_STORIES", 30),
			CacheTTL:    time.Duration(getEnvAsIntOrDefault("FEED_CACHE_TTL", 900)) * time.Second,
			RSSFallback: parsePairs(os.Getenv("RSS_FALLBACK_FEEDS")),
		},
		Generation: GenerationConfig{
			APIKey:           os.Getenv("GROQ_API_KEY"),
			BaseURL:          getEnvOrDefault("GROQ_API_URL", "https://api.groq.com/openai/v1"),
			Model:            getEnvOrDefault("GROQ_MODEL", "llama-3.1-8b-instant"),
			ArticlesPerCycle: getEnvAsIntOrDefault("ARTICLES_PER_CYCLE", 8),
			ComicsPerCycle:   getEnvAsIntOrDefault("COMICS_PER_CYCLE", 2),
			Styles:           getEnvAsListOrDefault("SATIRE_STYLES", []string{"deadpan", "absurdist", "ironic", "parody", "exaggeration"}),
			MinRequestDelay:  time.Duration(getEnvAsIntOrDefault("MIN_REQUEST_DELAY_MS", 500)) * time.Millisecond,
			Offline:          getEnvAsBoolOrDefault("OFFLINE_MODE", false),
		},
		Images: ImageConfig{
			ReplicateToken:       os.Getenv("REPLICATE_API_TOKEN"),
			PexelsKey:            os.Getenv("PEXELS_API_KEY"),
			UnsplashKey:          os.Getenv("UNSPLASH_API_KEY"),
			ImageDir:             getEnvOrDefault("IMAGE_DIR", "static/images"),
			ComicDir:             getEnvOrDefault("COMIC_DIR", "static/comics"),
			TempDir:              getEnvOrDefault("TEMP_DIR", "temp"),
			ArticleWidth:         getEnvAsIntOrDefault("ARTICLE_IMAGE_WIDTH", 800),
			ArticleHeight:        getEnvAsIntOrDefault("ARTICLE_IMAGE_HEIGHT", 600),
			ComicWidth:           getEnvAsIntOrDefault("COMIC_STRIP_WIDTH", 800),
			ComicHeight:          getEnvAsIntOrDefault("COMIC_STRIP_HEIGHT", 400),
			MaxImagesStored:      getEnvAsIntOrDefault("MAX_IMAGES_STORED", 100),
			MaxComicImagesStored: getEnvAsIntOrDefault("MAX_COMIC_IMAGES_STORED", 50),
		},
		Storage: StorageConfig{
			Type:       getEnvOrDefault("STORAGE_TYPE", "file"),
			DataDir:    getEnvOrDefault("DATA_DIR", "data"),
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "data/archive.db"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			MaxArticlesStored: getEnvAsIntOrDefault("MAX_ARTICLES_STORED", 50),
			MaxComicsStored:   getEnvAsIntOrDefault("MAX_COMICS_STORED", 20),
		},
		Schedule: ScheduleConfig{
			MorningRunTime: getEnvOrDefault("MORNING_RUN_TIME", "08:00"),
			EveningRunTime: getEnvOrDefault("EVENING_RUN_TIME", "20:00"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
			File:  getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Storage.Type {
	case "file", "memory", "redis", "sqlite":
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}

	for _, slot := range []string{c.Schedule.MorningRunTime, c.Schedule.EveningRunTime} {
		if _, err := time.Parse("15:04", slot); err != nil {
			return fmt.Errorf("invalid run time %q: must be HH:MM", slot)
		}
	}

	if c.Generation.ArticlesPerCycle <= 0 {
		return errors.New("articles per cycle must be positive")
	}
	if c.Storage.MaxArticlesStored <= 0 || c.Storage.MaxComicsStored <= 0 {
		return errors.New("storage retention limits must be positive")
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated environment variable
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}

// parsePairs parses "key=value,key=value" into a map
func parsePairs(value string) map[string]string {
	pairs := map[string]string{}
	for _, part := range strings.Split(value, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) == 2 && kv[0] != "" && kv[1] != "" {
			pairs[kv[0]] = kv[1]
		}
	}
	return pairs
}
