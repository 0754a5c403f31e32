// Package logging предоставляет интерфейс и реализации для структурированного логирования.
package logging

import "log/slog"

// Logger определяет интерфейс структурированного логирования CLI.
//
//	logger.Info("Сборка перезапущена", "build_id", id)
//
// ВАЖНО: Logger пишет только в stderr или файл, никогда в stdout.
// stdout занят OutputWriter.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With возвращает новый Logger с добавленными атрибутами.
	With(args ...any) Logger

	// Slog возвращает *slog.Logger для передачи в travis.WithLogger.
	Slog() *slog.Logger
}
