package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.Server.Port)
	}
	if cfg.Generation.ArticlesPerCycle != 8 {
		t.Errorf("expected 8 articles per cycle, got %d", cfg.Generation.ArticlesPerCycle)
	}
	if cfg.Generation.ComicsPerCycle != 2 {
		t.Errorf("expected 2 comics per cycle, got %d", cfg.Generation.ComicsPerCycle)
	}
	if cfg.Feed.MaxStories != 30 {
		t.Errorf("expected 30 max stories, got %d", cfg.Feed.MaxStories)
	}
	if cfg.Storage.MaxArticlesStored != 50 {
		t.Errorf("expected 50 max articles stored, got %d", cfg.Storage.MaxArticlesStored)
	}
	if cfg.Storage.MaxComicsStored != 20 {
		t.Errorf("expected 20 max comics stored, got %d", cfg.Storage.MaxComicsStored)
	}
	if cfg.Storage.Type != "file" {
		t.Errorf("expected file storage default, got %q", cfg.Storage.Type)
	}
	if cfg.Schedule.MorningRunTime != "08:00" || cfg.Schedule.EveningRunTime != "20:00" {
		t.Errorf("unexpected default schedule: %s / %s", cfg.Schedule.MorningRunTime, cfg.Schedule.EveningRunTime)
	}
	if cfg.Generation.MinRequestDelay != 500*time.Millisecond {
		t.Errorf("expected 500ms min delay, got %v", cfg.Generation.MinRequestDelay)
	}
	if len(cfg.Feed.Categories) != 6 {
		t.Errorf("expected 6 default categories, got %d", len(cfg.Feed.Categories))
	}
	if cfg.Generation.Offline {
		t.Error("offline mode must default to disabled")
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ARTICLES_PER_CYCLE", "3")
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("NEWS_CATEGORIES", "world, business")
	t.Setenv("OFFLINE_MODE", "true")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("expected port 9000, got %q", cfg.Server.Port)
	}
	if cfg.Generation.ArticlesPerCycle != 3 {
		t.Errorf("expected 3 articles per cycle, got %d", cfg.Generation.ArticlesPerCycle)
	}
	if cfg.Storage.Type != "redis" {
		t.Errorf("expected redis storage, got %q", cfg.Storage.Type)
	}
	if len(cfg.Feed.Categories) != 2 || cfg.Feed.Categories[1] != "business" {
		t.Errorf("unexpected categories: %v", cfg.Feed.Categories)
	}
	if !cfg.Generation.Offline {
		t.Error("expected offline mode enabled")
	}
}

func TestLoadFromEnv_RSSFallbackPairs(t *testing.T) {
	t.Setenv("RSS_FALLBACK_FEEDS", "world=https://example.com/world.xml,politics=https://example.com/politics.xml")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if len(cfg.Feed.RSSFallback) != 2 {
		t.Fatalf("expected 2 fallback feeds, got %d", len(cfg.Feed.RSSFallback))
	}
	if cfg.Feed.RSSFallback["world"] != "https://example.com/world.xml" {
		t.Errorf("unexpected world fallback %q", cfg.Feed.RSSFallback["world"])
	}
}

func TestLoadFromEnv_InvalidIntKeepsDefault(t *testing.T) {
	t.Setenv("ARTICLES_PER_CYCLE", "not-a-number")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if cfg.Generation.ArticlesPerCycle != 8 {
		t.Errorf("expected default 8 for invalid int, got %d", cfg.Generation.ArticlesPerCycle)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, _ := LoadFromEnv()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.Server.Port = "" }, true},
		{"unknown storage type", func(c *Config) { c.Storage.Type = "cloud" }, true},
		{"bad run time", func(c *Config) { c.Schedule.MorningRunTime = "8am" }, true},
		{"zero articles per cycle", func(c *Config) { c.Generation.ArticlesPerCycle = 0 }, true},
		{"zero retention", func(c *Config) { c.Storage.MaxArticlesStored = 0 }, true},
		{"sqlite storage", func(c *Config) { c.Storage.Type = "sqlite" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
