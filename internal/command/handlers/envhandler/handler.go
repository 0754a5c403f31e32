// Package envhandler реализует команды env-list, env-set и env-delete
// для переменных окружения репозитория.
package envhandler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Kargones/travis/internal/command"
	"github.com/Kargones/travis/internal/command/handlers/shared"
	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/constants"
	"github.com/Kargones/travis/internal/pkg/output"
	"github.com/Kargones/travis/travis"
)

// hiddenValue подставляется вместо значения закрытой переменной.
const hiddenValue = "[secure]"

// RegisterCmd регистрирует команды переменных окружения.
func RegisterCmd() error {
	return errors.Join(
		command.Register(&ListHandler{}),
		command.Register(&SetHandler{}),
		command.Register(&DeleteHandler{}),
	)
}

// EnvListData — результат env-list.
type EnvListData struct {
	Slug    string          `json:"slug"`
	EnvVars []travis.EnvVar `json:"env_vars"`
}

// WriteText выводит переменные в виде NAME=value.
func (d *EnvListData) WriteText(w io.Writer) error {
	if len(d.EnvVars) == 0 {
		_, err := fmt.Fprintf(w, "У %s нет переменных окружения\n", d.Slug)
		return err
	}
	for _, v := range d.EnvVars {
		if _, err := fmt.Fprintf(w, "%s=%s%s  (id: %s)\n", v.Name, displayValue(v), branchSuffix(v), v.ID); err != nil {
			return err
		}
	}
	return nil
}

func displayValue(v travis.EnvVar) string {
	if !v.Public {
		return hiddenValue
	}
	return v.Value
}

func branchSuffix(v travis.EnvVar) string {
	if v.Branch == "" {
		return ""
	}
	return " [" + v.Branch + "]"
}

// ListHandler обрабатывает env-list.
type ListHandler struct {
	// client — опциональный клиент (nil в production, mock в тестах)
	client travis.EnvVarManager
}

func (h *ListHandler) Name() string        { return constants.ActEnvList }
func (h *ListHandler) Description() string { return "Переменные окружения репозитория" }
func (h *ListHandler) Usage() string       { return "<owner/name>" }

// Execute запрашивает GET /repo/{slug}/env_vars.
func (h *ListHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return shared.Run(ctx, cfg, constants.ActEnvList, func(ctx context.Context) (*shared.Outcome, error) {
		slug, err := slugArg(cfg, 1, h.Usage())
		if err != nil {
			return nil, err
		}
		client, err := resolve(ctx, cfg, h.client)
		if err != nil {
			return nil, err
		}

		vars, err := shared.Retry(ctx, cfg.Retry, shared.Logger(cfg), func(ctx context.Context) ([]travis.EnvVar, error) {
			return client.ListEnvVars(ctx, slug)
		})
		if err != nil {
			return nil, err
		}
		if vars == nil {
			vars = []travis.EnvVar{}
		}

		public := 0
		for _, v := range vars {
			if v.Public {
				public++
			}
		}
		summary := output.NewSummaryInfo().
			AddMetric("Переменных", strconv.Itoa(len(vars)), "").
			AddMetric("Публичных", strconv.Itoa(public), "")
		return &shared.Outcome{Data: &EnvListData{Slug: slug, EnvVars: vars}, Summary: summary}, nil
	})
}

// slugArg проверяет число аргументов и формат slug в первом из них.
func slugArg(cfg *config.Config, n int, usage string) (string, error) {
	if err := shared.RequireArgs(cfg, n, usage); err != nil {
		return "", err
	}
	slug := cfg.Args[0]
	if err := shared.ValidateSlug(slug); err != nil {
		return "", err
	}
	return slug, nil
}

func resolve(ctx context.Context, cfg *config.Config, client travis.EnvVarManager) (travis.EnvVarManager, error) {
	if client != nil {
		return client, nil
	}
	c, err := shared.CreateClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return c, nil
}
