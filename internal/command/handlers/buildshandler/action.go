package buildshandler

import (
	"context"
	"fmt"
	"io"

	"github.com/Kargones/travis/internal/command/handlers/shared"
	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/constants"
	"github.com/Kargones/travis/travis"
)

// ActionData — результат build-restart и build-cancel.
type ActionData struct {
	BuildID     int64  `json:"build_id"`
	Number      string `json:"number,omitempty"`
	State       string `json:"state,omitempty"`
	StateChange string `json:"state_change"`
}

// WriteText выводит принятое Travis действие.
func (d *ActionData) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Сборка %d: %s принят\n", d.BuildID, d.StateChange)
	return err
}

// RestartHandler обрабатывает команду build-restart.
type RestartHandler struct {
	// client — опциональный клиент (nil в production, mock в тестах)
	client travis.BuildController
}

func (h *RestartHandler) Name() string        { return constants.ActBuildRestart }
func (h *RestartHandler) Description() string { return "Перезапустить сборку" }
func (h *RestartHandler) Usage() string       { return "<build-id>" }

// Execute отправляет POST /build/{id}/restart.
func (h *RestartHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return runAction(ctx, cfg, constants.ActBuildRestart, h.Usage(), h.client,
		func(c travis.BuildController) func(context.Context, int64) (*travis.BuildAction, error) {
			return c.RestartBuild
		})
}

// CancelHandler обрабатывает команду build-cancel.
type CancelHandler struct {
	// client — опциональный клиент (nil в production, mock в тестах)
	client travis.BuildController
}

func (h *CancelHandler) Name() string        { return constants.ActBuildCancel }
func (h *CancelHandler) Description() string { return "Отменить сборку" }
func (h *CancelHandler) Usage() string       { return "<build-id>" }

// Execute отправляет POST /build/{id}/cancel.
func (h *CancelHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return runAction(ctx, cfg, constants.ActBuildCancel, h.Usage(), h.client,
		func(c travis.BuildController) func(context.Context, int64) (*travis.BuildAction, error) {
			return c.CancelBuild
		})
}

// runAction выполняет действие над сборкой.
// Повтор только при ограничении частоты: Travis не применяет действие к 429.
func runAction(
	ctx context.Context,
	cfg *config.Config,
	name, usage string,
	client travis.BuildController,
	pick func(travis.BuildController) func(context.Context, int64) (*travis.BuildAction, error),
) error {
	return shared.Run(ctx, cfg, name, func(ctx context.Context) (*shared.Outcome, error) {
		if err := shared.RequireArgs(cfg, 1, usage); err != nil {
			return nil, err
		}
		id, err := shared.ParseID("build-id", cfg.Args[0])
		if err != nil {
			return nil, err
		}

		if client == nil {
			c, err := shared.CreateClient(ctx, cfg)
			if err != nil {
				return nil, err
			}
			client = c
		}

		action, err := shared.Retry(ctx, cfg.Retry, shared.Logger(cfg),
			func(ctx context.Context) (*travis.BuildAction, error) {
				return pick(client)(ctx, id)
			})
		if err != nil {
			return nil, err
		}

		data := &ActionData{
			BuildID:     id,
			Number:      action.Build.Number,
			State:       string(action.Build.State),
			StateChange: action.StateChange,
		}
		if action.Build.ID != 0 {
			data.BuildID = action.Build.ID
		}
		return &shared.Outcome{Data: data}, nil
	})
}
