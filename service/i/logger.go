package i

// Logger defines the levelled logging methods used across the application.
type Logger interface {
	// Info logs routine progress.
	Info(msg string)

	// Warning logs a recoverable problem.
	Warning(msg string)

	// Error logs a failure.
	Error(msg string)

	// Debug logs detail that is only shown when debug output is enabled.
	Debug(msg string)
}
