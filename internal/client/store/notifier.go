package store

import "log/slog"

// Notifier surfaces user-facing confirmations and failures.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Success(message string) {
	n.Logger.Info(message)
}

func (n LogNotifier) Error(message string) {
	n.Logger.Error(message)
}
