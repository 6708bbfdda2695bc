// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as persistence, HTTP communication, text generation and logging.
//
// The infrastructure package is organized by technical concern:
//
// - storage/memory: In-memory archive, also the fallback for every other backend
// - storage/file: JSON-file archive, the default backend
// - storage/redis: Redis-backed archive
// - storage/sqlite: SQLite-backed archive
// - http/standard: Standard library HTTP client with retry logic
// - llm/groq: Groq chat-completions client behind the TextGenerator interface
// - logger/logrus: Structured logger with file rotation
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Archive Implementations
//
// File archive example:
//
//	limits := storage.Limits{MaxArticles: 50, MaxComics: 20}
//	archive, err := file.NewArchive("data", limits)
//	err = archive.AppendArticle(ctx, article)
//	articles, err := archive.LoadArticles(ctx)
//
// Redis archive example:
//
//	archive, err := redis.NewArchive(redis.Config{
//	    Address: "localhost:6379",
//	}, limits)
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com", nil)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.New(logrus.Options{Level: "info"})
//	logger.Info("Cycle complete", map[string]interface{}{
//	    "articles": 8,
//	    "comics":   2,
//	})
package infrastructure
