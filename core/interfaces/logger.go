package interfaces

// Logger defines the interface for logging throughout the application.
// The default implementation is backed by logrus; tests use no-op or
// recording loggers.
//
// Example usage:
//
//	logger.Info("Cache hit", map[string]interface{}{
//		"url": "https://example.com/article",
//		"key": "example.com/article",
//	})
//
//	logger.Warn("API fetch failed, falling back to scraping", map[string]interface{}{
//		"url":   "https://github.com/octocat",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	// Debug messages are typically used for detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	// Info messages are used for general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warning messages indicate potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	// Error messages indicate failures that need attention.
	Error(msg string, fields map[string]interface{})
}