// Package core contains the business logic for the OK Crisis pipeline.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (RawStory, Article, Comic, etc.)
// - newsfeed: Real news fetching with API and RSS fallback
// - evaluate: Satire-potential scoring and story selection
// - satire: Article and editorial generation
// - comics: Three-panel dialogue generation and parsing
// - images: Illustration sourcing and comic strip rendering
// - cycle: The content cycle orchestrator and post-cycle cleanup
// - scheduler: Twice-daily cycle triggering
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, text generation, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "okcrisis-api/core/interfaces"
//	    "okcrisis-api/core/newsfeed"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	    TextGen:    myTextGen,    // implements interfaces.TextGenerator
//	}
//
//	// Create service
//	feedService := newsfeed.NewService(feedCfg, deps)
//
//	// Fetch real stories
//	stories, errs := feedService.FetchStories(ctx)
package core
