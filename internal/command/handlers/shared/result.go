package shared

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/constants"
	"github.com/Kargones/travis/internal/pkg/apperrors"
	"github.com/Kargones/travis/internal/pkg/output"
	"github.com/Kargones/travis/internal/pkg/tracing"
	"github.com/Kargones/travis/travis"
)

// Outcome — данные успешного выполнения команды.
type Outcome struct {
	Data    any
	Summary *output.SummaryInfo
}

// Run выполняет fn и печатает output.Result в формате cfg.Output.Format.
// Возвращает ошибку fn, чтобы main выбрал код завершения.
func Run(ctx context.Context, cfg *config.Config, command string, fn func(ctx context.Context) (*Outcome, error)) error {
	start := time.Now()

	traceID := tracing.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = tracing.GenerateTraceID()
	}
	log := Logger(cfg).With(slog.String("trace_id", traceID), slog.String("command", command))

	outcome, err := fn(ctx)

	result := &output.Result{
		Status:  output.StatusSuccess,
		Command: command,
		Metadata: &output.Metadata{
			DurationMs: time.Since(start).Milliseconds(),
			TraceID:    traceID,
			APIVersion: constants.APIVersion,
			Endpoint:   cfg.Endpoint().BaseURL,
		},
	}
	if err != nil {
		log.Error("Команда завершилась ошибкой", slog.String("error", err.Error()))
		result.Status = output.StatusError
		result.Error = ErrorInfo(err)
	} else if outcome != nil {
		result.Data = outcome.Data
		result.Summary = outcome.Summary
	}

	if writeErr := output.NewWriter(cfg.Output.Format).Write(os.Stdout, result); writeErr != nil {
		log.Error("Не удалось записать результат", slog.String("error", writeErr.Error()))
		if err == nil {
			return apperrors.NewAppError(apperrors.ErrOutputFormat, "не удалось записать результат", writeErr)
		}
	}
	return err
}

// ErrorInfo строит ErrorInfo из ошибки.
// Для ошибок Travis добавляется HTTP статус, для прочих без кода используется COMMAND.EXEC_FAILED.
func ErrorInfo(err error) *output.ErrorInfo {
	info := &output.ErrorInfo{Code: apperrors.ErrCommandExec, Message: err.Error()}

	var tErr *travis.Error
	if errors.As(err, &tErr) {
		info.Code = tErr.Code
		info.Message = tErr.Message
		info.HTTPStatus = tErr.StatusCode
		return info
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		info.Code = appErr.Code
		info.Message = appErr.Message
	}
	return info
}
