// Package whoamihandler реализует команду whoami: текущий пользователь Travis.
package whoamihandler

import (
	"context"
	"fmt"
	"io"

	"github.com/Kargones/travis/internal/command"
	"github.com/Kargones/travis/internal/command/handlers/shared"
	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/constants"
	"github.com/Kargones/travis/internal/pkg/apperrors"
	"github.com/Kargones/travis/travis"
)

func RegisterCmd() error {
	return command.Register(&Handler{})
}

// UserData — результат команды whoami.
type UserData struct {
	travis.User
	Endpoint string `json:"endpoint"`
}

// WriteText выводит пользователя в человекочитаемом формате.
func (d *UserData) WriteText(w io.Writer) error {
	name := d.Name
	if name == "" {
		name = "-"
	}
	_, err := fmt.Fprintf(w, "Пользователь: %s (%s)\nID: %d\nEndpoint: %s\n", d.Login, name, d.ID, d.Endpoint)
	return err
}

// Handler обрабатывает команду whoami.
type Handler struct {
	// client — опциональный клиент (nil в production, mock в тестах)
	client travis.UserReader
}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActWhoami
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Текущий пользователь Travis для заданного токена"
}

// Usage возвращает синтаксис аргументов.
func (h *Handler) Usage() string {
	return ""
}

// Execute запрашивает GET /user. Без учётных данных завершается ошибкой до обращения к API.
func (h *Handler) Execute(ctx context.Context, cfg *config.Config) error {
	return shared.Run(ctx, cfg, constants.ActWhoami, func(ctx context.Context) (*shared.Outcome, error) {
		if h.client == nil && cfg.Credential() == travis.None() {
			return nil, apperrors.NewAppError(apperrors.ErrCommandUsage,
				"whoami требует TRAVIS_TOKEN или TRAVIS_GITHUB_TOKEN", nil)
		}

		client := h.client
		if client == nil {
			c, err := shared.CreateClient(ctx, cfg)
			if err != nil {
				return nil, err
			}
			client = c
		}

		user, err := shared.Retry(ctx, cfg.Retry, shared.Logger(cfg), client.CurrentUser)
		if err != nil {
			return nil, err
		}
		return &shared.Outcome{Data: &UserData{User: *user, Endpoint: cfg.Endpoint().BaseURL}}, nil
	})
}
