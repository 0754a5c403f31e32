package jobshandler

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/Kargones/travis/internal/command/handlers/shared"
	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/constants"
	"github.com/Kargones/travis/internal/pkg/apperrors"
	"github.com/Kargones/travis/internal/pkg/output"
	"github.com/Kargones/travis/travis"
)

// LogData — результат job-log в формате JSON.
type LogData struct {
	JobID int64  `json:"job_id"`
	Log   string `json:"log"`
}

// LogHandler обрабатывает команду job-log.
type LogHandler struct {
	// client — опциональный клиент (nil в production, mock в тестах)
	client travis.LogReader
}

func (h *LogHandler) Name() string        { return constants.ActJobLog }
func (h *LogHandler) Description() string { return "Лог задания как есть (text/plain)" }
func (h *LogHandler) Usage() string       { return "<job-id>" }

// Execute запрашивает GET /job/{id}/log.txt.
// В текстовом формате лог копируется в stdout без обёртки Result,
// в JSON читается целиком в LogData.
func (h *LogHandler) Execute(ctx context.Context, cfg *config.Config) error {
	if !strings.EqualFold(cfg.Output.Format, output.FormatJSON) {
		body, err := h.open(ctx, cfg)
		if err != nil {
			return shared.Run(ctx, cfg, constants.ActJobLog, func(context.Context) (*shared.Outcome, error) {
				return nil, err
			})
		}
		defer body.Close() //nolint:errcheck // тело только читается
		if _, err := io.Copy(os.Stdout, body); err != nil {
			return apperrors.NewAppError(apperrors.ErrCommandExec, "не удалось прочитать лог задания", err)
		}
		return nil
	}

	return shared.Run(ctx, cfg, constants.ActJobLog, func(ctx context.Context) (*shared.Outcome, error) {
		body, err := h.open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer body.Close() //nolint:errcheck // тело только читается
		raw, err := io.ReadAll(body)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCommandExec, "не удалось прочитать лог задания", err)
		}
		id, _ := shared.ParseID("job-id", cfg.Args[0])
		return &shared.Outcome{Data: &LogData{JobID: id, Log: string(raw)}}, nil
	})
}

func (h *LogHandler) open(ctx context.Context, cfg *config.Config) (io.ReadCloser, error) {
	if err := shared.RequireArgs(cfg, 1, h.Usage()); err != nil {
		return nil, err
	}
	jobID, err := shared.ParseID("job-id", cfg.Args[0])
	if err != nil {
		return nil, err
	}

	client := h.client
	if client == nil {
		c, err := shared.CreateClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		client = c
	}

	return shared.Retry(ctx, cfg.Retry, shared.Logger(cfg), func(ctx context.Context) (io.ReadCloser, error) {
		return client.RawLog(ctx, jobID)
	})
}
