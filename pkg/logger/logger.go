// Package logger предоставляет интерфейс логирования поверх log/slog.
package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger — интерфейс логгера, внедряемый во все слои приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

// SlogLogger реализует Logger поверх slog с JSON-выводом в stdout.
type SlogLogger struct {
	log *slog.Logger
}

func NewSlogLogger() *SlogLogger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(),
	})

	return &SlogLogger{log: slog.New(handler)}
}

func (s *SlogLogger) Debugf(format string, args ...any) {
	s.log.Debug(fmt.Sprintf(format, args...))
}

func (s *SlogLogger) Infof(format string, args ...any) {
	s.log.Info(fmt.Sprintf(format, args...))
}

func (s *SlogLogger) Warnf(format string, args ...any) {
	s.log.Warn(fmt.Sprintf(format, args...))
}

func (s *SlogLogger) Errorf(err error, format string, args ...any) {
	s.log.Error(fmt.Sprintf(format, args...), slog.Any("error", err))
}

// logLevel читает уровень логирования из LOG_LEVEL (debug/info/warn/error).
func logLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
