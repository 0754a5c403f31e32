package travis

import (
	"context"
	"iter"
	"net/url"
	"strconv"
)

// RepoListOptions — параметры списка репозиториев владельца.
type RepoListOptions struct {
	ListOptions
	Active  *bool
	Starred *bool
	Private *bool
}

func (o RepoListOptions) params() []QueryParam {
	q := o.ListOptions.params()
	if o.Active != nil {
		q = append(q, Param("active", strconv.FormatBool(*o.Active)))
	}
	if o.Starred != nil {
		q = append(q, Param("starred", strconv.FormatBool(*o.Starred)))
	}
	if o.Private != nil {
		q = append(q, Param("private", strconv.FormatBool(*o.Private)))
	}
	return q
}

func ownerReposPath(owner string) string {
	return "/owner/" + url.PathEscape(owner) + "/repos"
}

// ListRepos возвращает одну страницу репозиториев владельца.
func (c *Client) ListRepos(ctx context.Context, owner string, opts RepoListOptions) (*Page[Repository], error) {
	page, err := Execute[Page[Repository]](ctx, c, Get(ownerReposPath(owner), opts.params()...))
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Repos обходит все репозитории владельца, подгружая страницы по мере необходимости.
func (c *Client) Repos(ctx context.Context, owner string, opts RepoListOptions) iter.Seq2[Repository, error] {
	return paginate[Repository](ctx, c, Get(ownerReposPath(owner), opts.params()...))
}

// GetRepo возвращает репозиторий по slug ("owner/name").
func (c *Client) GetRepo(ctx context.Context, slug string) (*Repository, error) {
	r, err := Execute[Repository](ctx, c, Get("/repo/"+escapeSlug(slug)))
	if err != nil {
		return nil, err
	}
	return &r, nil
}
