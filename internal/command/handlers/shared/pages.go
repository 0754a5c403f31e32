package shared

import (
	"context"
	"iter"
	"log/slog"
	"strings"

	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/pkg/output"
	"github.com/Kargones/travis/internal/pkg/progress"
	"github.com/Kargones/travis/travis"
)

// Collect читает итератор до конца или до первой ошибки,
// показывая в stderr число загруженных элементов.
func Collect[T any](cfg *config.Config, message string, seq iter.Seq2[T, error]) ([]T, error) {
	p := progress.New(progress.Options{
		Disabled: cfg.Output.NoProgress || strings.EqualFold(cfg.Output.Format, output.FormatJSON),
		Logger:   Logger(cfg),
	})
	p.Start(message)
	defer p.Finish()

	items := make([]T, 0)
	for item, err := range seq {
		if err != nil {
			return items, err
		}
		items = append(items, item)
		p.Update(int64(len(items)))
	}
	return items, nil
}

// FirstPage запрашивает одну страницу с повтором при ограничении частоты
// и возвращает элементы вместе с признаком наличия следующих страниц.
func FirstPage[T any](ctx context.Context, cfg *config.Config, fetch func(ctx context.Context) (*travis.Page[T], error)) ([]T, bool, error) {
	page, err := Retry(ctx, cfg.Retry, Logger(cfg), fetch)
	if err != nil {
		return nil, false, err
	}
	items := page.Items
	if items == nil {
		items = make([]T, 0)
	}
	more := page.Pagination != nil && !page.Pagination.IsLast
	if more {
		Logger(cfg).Debug("Показана первая страница, для полного списка используйте --all",
			slog.Int("count", len(items)))
	}
	return items, more, nil
}
