package travis

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client — клиент Travis CI v3 API.
// Endpoint и токен фиксируются при создании и не меняются.
// Безопасен для конкурентного использования.
type Client struct {
	endpoint  Endpoint
	token     string
	transport Transport
	logger    *slog.Logger
	userAgent string
}

// New создаёт клиент для публичного Travis (api.travis-ci.org).
// Для GithubToken выполняет обмен токена, поэтому может вернуть ошибку.
// При nil transport используется http.DefaultClient.
func New(ctx context.Context, cred Credential, transport Transport, opts ...Option) (*Client, error) {
	return NewWithEndpoint(ctx, ResolveEndpoint(TierPublic, cred), cred, transport, opts...)
}

// Pro создаёт клиент для приватного Travis (api.travis-ci.com).
func Pro(ctx context.Context, cred Credential, transport Transport, opts ...Option) (*Client, error) {
	return NewWithEndpoint(ctx, ResolveEndpoint(TierPro, cred), cred, transport, opts...)
}

// NewWithEndpoint создаёт клиент для произвольного адреса
// (Travis Enterprise, тестовый сервер).
func NewWithEndpoint(ctx context.Context, endpoint Endpoint, cred Credential, transport Transport, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if transport == nil {
		transport = http.DefaultClient
	}

	var token string
	switch c := cred.(type) {
	case nil, NoCredential:
	case APIToken:
		token = c.Token
	case GithubToken:
		o.logger.Debug("travis: обмен GitHub токена", "endpoint", endpoint.BaseURL)
		t, err := exchange(ctx, transport, endpoint, c.Token, o.userAgent)
		if err != nil {
			return nil, err
		}
		token = t
	default:
		panic(fmt.Sprintf("travis: unsupported credential %T", cred))
	}

	return &Client{
		endpoint:  endpoint,
		token:     token,
		transport: transport,
		logger:    o.logger,
		userAgent: o.userAgent,
	}, nil
}

// Endpoint возвращает адрес API клиента.
func (c *Client) Endpoint() Endpoint {
	return c.endpoint
}

// Authenticated сообщает, отправляет ли клиент заголовок Authorization.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// Execute выполняет запрос и разбирает ответ в T.
// Единственный низкоуровневый примитив: все типизированные операции
// клиента построены на нём. Не кэширует и не повторяет запросы.
func Execute[T any](ctx context.Context, c *Client, spec RequestSpec) (T, error) {
	var zero T
	resp, err := c.do(ctx, spec)
	if err != nil {
		return zero, err
	}
	return Decode[T](resp)
}

// ExecuteNoContent выполняет запрос, тело успешного ответа игнорируется.
// Используется для DELETE, где Travis может вернуть пустое тело.
func ExecuteNoContent(ctx context.Context, c *Client, spec RequestSpec) error {
	resp, err := c.do(ctx, spec)
	if err != nil {
		return err
	}
	return decodeNoContent(resp)
}

// ExecuteRaw выполняет запрос и возвращает тело успешного ответа.
// Вызывающий код обязан закрыть возвращённый io.ReadCloser.
func ExecuteRaw(ctx context.Context, c *Client, spec RequestSpec) (io.ReadCloser, error) {
	resp, err := c.do(ctx, spec)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.Body, nil
	}
	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}
	return nil, classify(resp, body)
}

func (c *Client) do(ctx context.Context, spec RequestSpec) (*http.Response, error) {
	req, err := BuildRequest(ctx, spec, c.endpoint, c.token, c.userAgent)
	if err != nil {
		return nil, err
	}
	route := req.URL.EscapedPath()
	start := time.Now()

	resp, err := c.transport.Do(req)
	if err != nil {
		c.logger.Debug("travis: запрос не выполнен",
			slog.String("method", req.Method),
			slog.String("path", route),
			slog.String("error", err.Error()),
		)
		return nil, newTransportError(req.Method, route, err)
	}

	c.logger.Debug("travis: ответ получен",
		slog.String("method", req.Method),
		slog.String("path", route),
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return resp, nil
}
