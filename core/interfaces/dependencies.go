// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Constructed once at process start and passed to every service

package interfaces

// Dependencies holds the external collaborators required by the core
// business logic. It replaces module-level singletons: one container is
// built in main and handed to each service constructor.
type Dependencies struct {
	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// TextGen provides generative text completions
	TextGen TextGenerator
}
