package travis

import (
	"context"
	"iter"
	"strconv"
)

// defaultBuildSort — сортировка списка сборок по умолчанию.
const defaultBuildSort = "started_at"

// BuildListOptions — параметры списка сборок репозитория.
type BuildListOptions struct {
	ListOptions
	// Branch фильтрует по branch.name
	Branch        string
	State         State
	PreviousState State
	EventType     string
	CreatedBy     string
}

func (o BuildListOptions) params() []QueryParam {
	lo := o.ListOptions
	if lo.SortBy == "" {
		lo.SortBy = defaultBuildSort
	}
	q := lo.params()
	if o.Branch != "" {
		q = append(q, Param("branch.name", o.Branch))
	}
	if o.CreatedBy != "" {
		q = append(q, Param("created_by", o.CreatedBy))
	}
	if o.EventType != "" {
		q = append(q, Param("event_type", o.EventType))
	}
	if o.PreviousState != "" {
		q = append(q, Param("previous_state", string(o.PreviousState)))
	}
	if o.State != "" {
		q = append(q, Param("state", string(o.State)))
	}
	return q
}

func repoBuildsPath(slug string) string {
	return "/repo/" + escapeSlug(slug) + "/builds"
}

func buildPath(id int64) string {
	return "/build/" + strconv.FormatInt(id, 10)
}

// ListBuilds возвращает одну страницу сборок репозитория.
func (c *Client) ListBuilds(ctx context.Context, slug string, opts BuildListOptions) (*Page[Build], error) {
	page, err := Execute[Page[Build]](ctx, c, Get(repoBuildsPath(slug), opts.params()...))
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Builds обходит все сборки репозитория постранично.
func (c *Client) Builds(ctx context.Context, slug string, opts BuildListOptions) iter.Seq2[Build, error] {
	return paginate[Build](ctx, c, Get(repoBuildsPath(slug), opts.params()...))
}

// GetBuild возвращает сборку по идентификатору.
func (c *Client) GetBuild(ctx context.Context, id int64) (*Build, error) {
	b, err := Execute[Build](ctx, c, Get(buildPath(id)))
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// RestartBuild перезапускает сборку.
func (c *Client) RestartBuild(ctx context.Context, id int64) (*BuildAction, error) {
	return c.buildAction(ctx, id, "restart")
}

// CancelBuild отменяет сборку.
func (c *Client) CancelBuild(ctx context.Context, id int64) (*BuildAction, error) {
	return c.buildAction(ctx, id, "cancel")
}

func (c *Client) buildAction(ctx context.Context, id int64, action string) (*BuildAction, error) {
	a, err := Execute[BuildAction](ctx, c, Post(buildPath(id)+"/"+action, nil))
	if err != nil {
		return nil, err
	}
	return &a, nil
}
