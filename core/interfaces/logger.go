package interfaces

// Logger defines the interface for logging throughout the pipeline.
// This abstraction allows different logging implementations (logrus, stdlib)
// while the core stays free of logging dependencies.
//
// Example usage:
//
//	logger.Info("Fetched stories", map[string]interface{}{
//		"category": "politics",
//		"count":    5,
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}
