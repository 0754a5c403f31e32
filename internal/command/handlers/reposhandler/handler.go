// Package reposhandler реализует команду repos: список репозиториев владельца.
package reposhandler

import (
	"context"
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

func RegisterCmd() error {
	return command.Register(&Handler{})
}

// ReposData — результат команды repos.
type ReposData struct {
	Owner        string              `json:"owner"`
	Repositories []travis.Repository `json:"repositories"`
	HasMore      bool                `json:"has_more"`
}

// WriteText выводит репозитории по одному в строке.
func (d *ReposData) WriteText(w io.Writer) error {
	if len(d.Repositories) == 0 {
		_, err := fmt.Fprintf(w, "У %s нет репозиториев в Travis\n", d.Owner)
		return err
	}
	for _, r := range d.Repositories {
		status := "inactive"
		if r.Active {
			status = "active"
		}
		branch := "-"
		if r.DefaultBranch != nil {
			branch = r.DefaultBranch.Name
		}
		if _, err := fmt.Fprintf(w, "%-40s %-8s %s\n", r.Slug, status, branch); err != nil {
			return err
		}
	}
	if d.HasMore {
		_, err := fmt.Fprintln(w, "... есть ещё, используйте --all")
		return err
	}
	return nil
}

// Handler обрабатывает команду repos.
type Handler struct {
	// client — опциональный клиент (nil в production, mock в тестах)
	client travis.RepoReader
}

func (h *Handler) Name() string { return constants.ActRepos }

func (h *Handler) Description() string {
	return "Список репозиториев владельца (пользователя или организации)"
}

func (h *Handler) Usage() string { return "<owner>" }

// Execute запрашивает GET /owner/{owner}/repos.
// С --all обходит все страницы, иначе показывает первую.
func (h *Handler) Execute(ctx context.Context, cfg *config.Config) error {
	return shared.Run(ctx, cfg, constants.ActRepos, func(ctx context.Context) (*shared.Outcome, error) {
		if err := shared.RequireArgs(cfg, 1, h.Usage()); err != nil {
			return nil, err
		}
		owner := cfg.Args[0]

		client := h.client
		if client == nil {
			c, err := shared.CreateClient(ctx, cfg)
			if err != nil {
				return nil, err
			}
			client = c
		}

		opts := travis.RepoListOptions{ListOptions: travis.ListOptions{Limit: cfg.Flags.Limit}}
		data := &ReposData{Owner: owner}
		var err error
		if cfg.Flags.All {
			data.Repositories, err = shared.Collect(cfg, "Загрузка репозиториев "+owner, client.Repos(ctx, owner, opts))
		} else {
			data.Repositories, data.HasMore, err = shared.FirstPage(ctx, cfg,
				func(ctx context.Context) (*travis.Page[travis.Repository], error) {
					return client.ListRepos(ctx, owner, opts)
				})
		}
		if err != nil {
			return nil, err
		}

		active := 0
		for _, r := range data.Repositories {
			if r.Active {
				active++
			}
		}
		summary := output.NewSummaryInfo().
			AddMetric("Репозиториев", strconv.Itoa(len(data.Repositories)), "").
			AddMetric("Активных", strconv.Itoa(active), "")
		if data.HasMore {
			summary.AddWarning("показана только первая страница")
		}
		return &shared.Outcome{Data: data, Summary: summary}, nil
	})
}
