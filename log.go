package treefx

import "log/slog"

// logger receives schedule and generation records. Replace with SetLogger.
var logger = slog.Default()

// SetLogger sets the destination for treefx log records. A nil logger
// discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return logger
}
