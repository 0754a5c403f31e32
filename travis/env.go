package travis

import (
	"context"
	"net/http"
	"net/url"
)

// EnvVarInput — новая переменная окружения.
type EnvVarInput struct {
	Name   string `json:"env_var.name"`
	Value  string `json:"env_var.value"`
	Public bool   `json:"env_var.public"`
	Branch string `json:"env_var.branch,omitempty"`
}

// EnvVarPatch — частичное обновление переменной. nil поля не отправляются.
type EnvVarPatch struct {
	Name   *string `json:"env_var.name,omitempty"`
	Value  *string `json:"env_var.value,omitempty"`
	Public *bool   `json:"env_var.public,omitempty"`
	Branch *string `json:"env_var.branch,omitempty"`
}

func envVarsPath(slug string) string {
	return "/repo/" + escapeSlug(slug) + "/env_vars"
}

func envVarPath(slug, id string) string {
	return "/repo/" + escapeSlug(slug) + "/env_var/" + url.PathEscape(id)
}

// ListEnvVars возвращает переменные окружения репозитория.
func (c *Client) ListEnvVars(ctx context.Context, slug string) ([]EnvVar, error) {
	page, err := Execute[Page[EnvVar]](ctx, c, Get(envVarsPath(slug)))
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// GetEnvVar возвращает переменную окружения по идентификатору.
func (c *Client) GetEnvVar(ctx context.Context, slug, id string) (*EnvVar, error) {
	v, err := Execute[EnvVar](ctx, c, Get(envVarPath(slug, id)))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateEnvVar создаёт переменную окружения.
func (c *Client) CreateEnvVar(ctx context.Context, slug string, in EnvVarInput) (*EnvVar, error) {
	v, err := Execute[EnvVar](ctx, c, Post(envVarsPath(slug), in))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateEnvVar частично обновляет переменную окружения.
func (c *Client) UpdateEnvVar(ctx context.Context, slug, id string, patch EnvVarPatch) (*EnvVar, error) {
	spec := RequestSpec{Method: http.MethodPatch, Path: envVarPath(slug, id), Body: patch}
	v, err := Execute[EnvVar](ctx, c, spec)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteEnvVar удаляет переменную окружения. Пустое тело ответа — успех.
func (c *Client) DeleteEnvVar(ctx context.Context, slug, id string) error {
	return ExecuteNoContent(ctx, c, RequestSpec{Method: http.MethodDelete, Path: envVarPath(slug, id)})
}
