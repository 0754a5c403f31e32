// Package main содержит точку входа CLI travis: клиента Travis CI API v3.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Kargones/travis/internal/command"
	"github.com/Kargones/travis/internal/command/handlers"
	"github.com/Kargones/travis/internal/command/handlers/shared"
	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/constants"
	"github.com/Kargones/travis/internal/di"
	"github.com/Kargones/travis/internal/pkg/apperrors"
	"github.com/Kargones/travis/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func main() {
	if err := handlers.RegisterAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось зарегистрировать команды: %v\n", err)
		os.Exit(constants.ExitFailure)
	}
	os.Exit(run(os.Args[1:]))
}

// run содержит основную логику приложения и возвращает exit code.
// os.Exit вызывается в main, поэтому defer-ы (tracerShutdown, span.End) здесь отрабатывают.
func run(args []string) int {
	ctx := context.Background()

	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось загрузить конфигурацию: %v\n", err)
		return constants.ExitConfig
	}

	// Пустая команда или --help → help
	if cfg.Command == "" || cfg.Flags.Help {
		cfg.Command = constants.ActHelp
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Не удалось инициализировать приложение: %v\n", err)
		return constants.ExitConfig
	}
	app.Bind()
	l := cfg.Logger

	l.Debug("Информация о сборке",
		slog.String("version", constants.Version),
		slog.String("commit_hash", constants.CommitHash),
		slog.String("endpoint", cfg.Endpoint().BaseURL),
	)

	ctx = tracing.WithTraceID(ctx, app.TraceID)
	ctx = tracing.ContextWithOTelTraceID(ctx, app.TraceID)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.TracerShutdown(shutdownCtx); err != nil {
			l.Error("ошибка завершения tracing", slog.String("error", err.Error()))
		}
	}()

	ctx, span := tracing.Tracer().Start(ctx, cfg.Command,
		trace.WithAttributes(
			attribute.String("command", cfg.Command),
			attribute.String("trace_id", app.TraceID),
			attribute.String("travis.tier", cfg.Tier().String()),
		),
	)
	defer span.End()

	start := time.Now()
	execErr := execute(ctx, cfg)

	app.MetricsCollector.RecordCommandEnd(cfg.Command, time.Since(start), execErr == nil)
	_ = app.MetricsCollector.Push(ctx) // Ошибки push логируются внутри

	if execErr != nil {
		span.RecordError(execErr)
		l.Error("Ошибка выполнения команды",
			slog.String("command", cfg.Command),
			slog.String("error", execErr.Error()),
			slog.String(constants.MsgErrProcessing, constants.MsgAppExit),
		)
	}
	return exitCode(execErr)
}

// execute находит команду в реестре и выполняет её.
// Неизвестная команда печатается как Result с COMMAND.NOT_FOUND.
func execute(ctx context.Context, cfg *config.Config) error {
	handler, ok := command.Get(cfg.Command)
	if !ok {
		return shared.Run(ctx, cfg, cfg.Command, func(context.Context) (*shared.Outcome, error) {
			return nil, apperrors.NewAppError(apperrors.ErrCommandNotFound,
				fmt.Sprintf("неизвестная команда %q, список команд: travis help", cfg.Command), nil)
		})
	}
	cfg.Logger.Debug("Выполнение команды", slog.String("command", cfg.Command))
	return handler.Execute(ctx, cfg)
}

// exitCode: 0 успех, 2 ошибка использования, 5 конфигурация, 8 сбой команды.
func exitCode(err error) int {
	if err == nil {
		return constants.ExitOK
	}
	code := apperrors.CodeOf(err)
	switch {
	case code == apperrors.ErrCommandUsage, code == apperrors.ErrCommandNotFound:
		return constants.ExitUsage
	case strings.HasPrefix(code, "CONFIG."):
		return constants.ExitConfig
	default:
		return constants.ExitFailure
	}
}
