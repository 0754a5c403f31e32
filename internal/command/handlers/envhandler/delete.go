package envhandler

import (
	"context"
	"fmt"
	"io"

	"github.com/Kargones/travis/internal/command/handlers/shared"
	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/constants"
	"github.com/Kargones/travis/internal/pkg/apperrors"
	"github.com/Kargones/travis/travis"
)

// DeleteData — результат env-delete.
type DeleteData struct {
	Slug    string `json:"slug"`
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// WriteText подтверждает удаление.
func (d *DeleteData) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Переменная %s удалена из %s\n", d.ID, d.Slug)
	return err
}

// DeleteHandler обрабатывает env-delete.
type DeleteHandler struct {
	// client — опциональный клиент (nil в production, mock в тестах)
	client travis.EnvVarManager
}

func (h *DeleteHandler) Name() string        { return constants.ActEnvDelete }
func (h *DeleteHandler) Description() string { return "Удалить переменную окружения по id" }
func (h *DeleteHandler) Usage() string       { return "<owner/name> <id>" }

// Execute отправляет DELETE /repo/{slug}/env_var/{id}.
func (h *DeleteHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return shared.Run(ctx, cfg, constants.ActEnvDelete, func(ctx context.Context) (*shared.Outcome, error) {
		slug, err := slugArg(cfg, 2, h.Usage())
		if err != nil {
			return nil, err
		}
		id := cfg.Args[1]
		if id == "" {
			return nil, apperrors.NewAppError(apperrors.ErrCommandUsage, "id переменной не может быть пустым", nil)
		}

		client, err := resolve(ctx, cfg, h.client)
		if err != nil {
			return nil, err
		}

		_, err = shared.Retry(ctx, cfg.Retry, shared.Logger(cfg), func(ctx context.Context) (struct{}, error) {
			return struct{}{}, client.DeleteEnvVar(ctx, slug, id)
		})
		if err != nil {
			return nil, err
		}
		return &shared.Outcome{Data: &DeleteData{Slug: slug, ID: id, Deleted: true}}, nil
	})
}
