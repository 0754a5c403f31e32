// Package buildshandler реализует команды builds, build-restart и build-cancel.
package buildshandler

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
	"github.com/Kargones/travis/internal/pkg/apperrors"
	"github.com/Kargones/travis/internal/pkg/output"
	"github.com/Kargones/travis/travis"
)

// RegisterCmd регистрирует все команды сборок.
func RegisterCmd() error {
	return errors.Join(
		command.Register(&ListHandler{}),
		command.Register(&RestartHandler{}),
		command.Register(&CancelHandler{}),
	)
}

// BuildsData — результат команды builds.
type BuildsData struct {
	Slug    string         `json:"slug"`
	Builds  []travis.Build `json:"builds"`
	HasMore bool           `json:"has_more"`
}

// WriteText выводит сборки по одной в строке.
func (d *BuildsData) WriteText(w io.Writer) error {
	if len(d.Builds) == 0 {
		_, err := fmt.Fprintf(w, "Сборок %s не найдено\n", d.Slug)
		return err
	}
	for _, b := range d.Builds {
		branch := "-"
		if b.Branch != nil {
			branch = b.Branch.Name
		}
		sha := "-"
		if b.Commit != nil && len(b.Commit.SHA) >= 7 {
			sha = b.Commit.SHA[:7]
		}
		if _, err := fmt.Fprintf(w, "#%-6s %-10d %-9s %-20s %s %s\n",
			b.Number, b.ID, b.State, branch, sha, b.EventType); err != nil {
			return err
		}
	}
	if d.HasMore {
		_, err := fmt.Fprintln(w, "... есть ещё, используйте --all")
		return err
	}
	return nil
}

// ListHandler обрабатывает команду builds.
type ListHandler struct {
	// client — опциональный клиент (nil в production, mock в тестах)
	client travis.BuildReader
}

func (h *ListHandler) Name() string { return constants.ActBuilds }

func (h *ListHandler) Description() string {
	return "Сборки репозитория, новые первыми. Фильтры --branch и --state"
}

func (h *ListHandler) Usage() string { return "<owner/name>" }

// Execute запрашивает GET /repo/{slug}/builds.
func (h *ListHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return shared.Run(ctx, cfg, constants.ActBuilds, func(ctx context.Context) (*shared.Outcome, error) {
		if err := shared.RequireArgs(cfg, 1, h.Usage()); err != nil {
			return nil, err
		}
		slug := cfg.Args[0]
		if err := shared.ValidateSlug(slug); err != nil {
			return nil, err
		}
		opts, err := listOptions(cfg.Flags)
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

		data := &BuildsData{Slug: slug}
		if cfg.Flags.All {
			data.Builds, err = shared.Collect(cfg, "Загрузка сборок "+slug, client.Builds(ctx, slug, opts))
		} else {
			data.Builds, data.HasMore, err = shared.FirstPage(ctx, cfg,
				func(ctx context.Context) (*travis.Page[travis.Build], error) {
					return client.ListBuilds(ctx, slug, opts)
				})
		}
		if err != nil {
			return nil, err
		}
		return &shared.Outcome{Data: data, Summary: buildsSummary(data)}, nil
	})
}

func listOptions(f config.CommandFlags) (travis.BuildListOptions, error) {
	opts := travis.BuildListOptions{
		ListOptions: travis.ListOptions{Limit: f.Limit},
		Branch:      f.Branch,
	}
	if f.State != "" {
		state := travis.State(f.State)
		if !state.Valid() {
			return opts, apperrors.NewAppError(apperrors.ErrCommandUsage,
				fmt.Sprintf("неизвестное состояние сборки: %q", f.State), nil)
		}
		opts.State = state
	}
	return opts, nil
}

func buildsSummary(d *BuildsData) *output.SummaryInfo {
	passed, failed := 0, 0
	for _, b := range d.Builds {
		switch {
		case b.State.Succeeded():
			passed++
		case b.State.Finished() && b.State != travis.StateCanceled:
			failed++
		}
	}
	s := output.NewSummaryInfo().
		AddMetric("Сборок", strconv.Itoa(len(d.Builds)), "").
		AddMetric("Успешных", strconv.Itoa(passed), "").
		AddMetric("Упавших", strconv.Itoa(failed), "")
	if d.HasMore {
		s.AddWarning("показана только первая страница")
	}
	return s
}
