package travis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/url"
	"strconv"
	"strings"
)

// Link — ссылка пагинации Travis ("@href").
type Link struct {
	Href   string `json:"@href"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

// Pagination — блок "@pagination" коллекции.
type Pagination struct {
	Count   int   `json:"count"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	IsFirst bool  `json:"is_first"`
	IsLast  bool  `json:"is_last"`
	Next    *Link `json:"next"`
	Prev    *Link `json:"prev"`
	First   *Link `json:"first"`
	Last    *Link `json:"last"`
}

// Page — одна страница коллекции Travis.
// Travis кладёт элементы под ключом, совпадающим с "@type"
// ("builds", "repositories", "jobs", "env_vars").
type Page[T any] struct {
	Type       string
	Items      []T
	Pagination *Pagination
}

// UnmarshalJSON находит коллекцию по значению "@type".
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var typ string
	if t, ok := raw["@type"]; ok {
		if err := json.Unmarshal(t, &typ); err != nil {
			return fmt.Errorf("поле @type: %w", err)
		}
	}
	if typ == "" {
		return errors.New("в коллекции отсутствует @type")
	}
	items, ok := raw[typ]
	if !ok {
		return fmt.Errorf("в ответе отсутствует коллекция %q", typ)
	}
	var list []T
	if err := json.Unmarshal(items, &list); err != nil {
		return fmt.Errorf("коллекция %q: %w", typ, err)
	}
	var pg *Pagination
	if rawPg, ok := raw["@pagination"]; ok && string(rawPg) != "null" {
		pg = &Pagination{}
		if err := json.Unmarshal(rawPg, pg); err != nil {
			return fmt.Errorf("поле @pagination: %w", err)
		}
	}
	p.Type = typ
	p.Items = list
	p.Pagination = pg
	return nil
}

// HasNext сообщает, есть ли следующая страница.
func (p *Page[T]) HasNext() bool {
	return p.Pagination != nil && !p.Pagination.IsLast &&
		p.Pagination.Next != nil && p.Pagination.Next.Href != ""
}

// ListOptions — общие параметры списков.
type ListOptions struct {
	// Limit — размер страницы (по умолчанию 25)
	Limit int
	// Offset — смещение первой страницы
	Offset int
	// SortBy — поле сортировки, ":desc" для обратного порядка
	SortBy string
	// Include — дополнительные вложенные атрибуты ("build.commit")
	Include []string
}

const defaultLimit = 25

func (o ListOptions) params() []QueryParam {
	limit := o.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	var q []QueryParam
	if len(o.Include) > 0 {
		q = append(q, Param("include", strings.Join(o.Include, ",")))
	}
	q = append(q, Param("limit", strconv.Itoa(limit)))
	if o.Offset > 0 {
		q = append(q, Param("offset", strconv.Itoa(o.Offset)))
	}
	if o.SortBy != "" {
		q = append(q, Param("sort_by", o.SortBy))
	}
	return q
}

// NextPage загружает страницу по ссылке next предыдущей страницы.
func NextPage[T any](ctx context.Context, c *Client, prev *Page[T]) (*Page[T], error) {
	if prev == nil || !prev.HasNext() {
		return nil, nil
	}
	spec, err := c.hrefSpec(prev.Pagination.Next.Href)
	if err != nil {
		return nil, err
	}
	page, err := Execute[Page[T]](ctx, c, spec)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// hrefSpec превращает "@href" в RequestSpec относительно базового адреса.
func (c *Client) hrefSpec(href string) (RequestSpec, error) {
	path, query, err := ParseHref(href)
	if err != nil {
		return RequestSpec{}, err
	}
	if base, err := url.Parse(c.endpoint.BaseURL); err == nil {
		prefix := strings.TrimRight(base.EscapedPath(), "/")
		if prefix != "" && strings.HasPrefix(path, prefix+"/") {
			path = strings.TrimPrefix(path, prefix)
		}
	}
	return Get(path, query...), nil
}

// paginate обходит все страницы, начиная с first.
// Первая ошибка передаётся в yield и завершает обход.
func paginate[T any](ctx context.Context, c *Client, first RequestSpec) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		page, err := Execute[Page[T]](ctx, c, first)
		if err != nil {
			yield(zero, err)
			return
		}
		current := &page
		for {
			for _, item := range current.Items {
				if !yield(item, nil) {
					return
				}
			}
			next, err := NextPage(ctx, c, current)
			if err != nil {
				yield(zero, err)
				return
			}
			if next == nil {
				return
			}
			current = next
		}
	}
}
