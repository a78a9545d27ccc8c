package logger

import "log/slog"

// Error returns a standard attribute for recording an error on a log record.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Component returns a standard attribute naming the emitting component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
