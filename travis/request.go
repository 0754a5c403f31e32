package travis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Заголовки и значения протокола Travis v3.
const (
	HeaderAPIVersion = "Travis-API-Version"
	APIVersion       = "3"
	mediaTypeJSON    = "application/json"
	authScheme       = "token "
)

// DefaultUserAgent — User-Agent по умолчанию.
const DefaultUserAgent = "travis-go/3"

// ErrInvalidPath возвращается BuildRequest для путей с хостом, схемой или query.
var ErrInvalidPath = errors.New("travis: путь запроса должен быть относительным, без query")

// QueryParam — один параметр запроса. Порядок и повторы ключей сохраняются.
type QueryParam struct {
	Key   string
	Value string
}

// RequestSpec — логическое описание запроса до превращения в *http.Request.
type RequestSpec struct {
	// Method — HTTP метод (GET если пусто)
	Method string
	// Path — путь относительно базового адреса, например "/repo/a%2Fb/builds"
	Path string
	// Query — параметры в порядке добавления
	Query []QueryParam
	// Body — сериализуется в JSON если не nil
	Body any
	// Accept переопределяет Accept (например, text/plain для логов)
	Accept string
}

// Get создаёт RequestSpec для GET запроса.
func Get(path string, query ...QueryParam) RequestSpec {
	return RequestSpec{Method: http.MethodGet, Path: path, Query: query}
}

// Post создаёт RequestSpec для POST запроса с телом body (может быть nil).
func Post(path string, body any) RequestSpec {
	return RequestSpec{Method: http.MethodPost, Path: path, Body: body}
}

// Param — короткая форма QueryParam.
func Param(key, value string) QueryParam {
	return QueryParam{Key: key, Value: value}
}

// EncodeQuery сериализует параметры в порядке добавления.
func EncodeQuery(params []QueryParam) string {
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// joinURL соединяет базовый адрес и путь ровно одним "/".
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// BuildRequest собирает *http.Request из RequestSpec.
// Заголовок Travis-API-Version выставляется всегда, Authorization — только
// при непустом token. Функция не имеет побочных эффектов.
func BuildRequest(ctx context.Context, spec RequestSpec, endpoint Endpoint, token, userAgent string) (*http.Request, error) {
	if strings.Contains(spec.Path, "://") || strings.ContainsAny(spec.Path, "?#") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, spec.Path)
	}

	method := spec.Method
	if method == "" {
		method = http.MethodGet
	}

	rawURL := joinURL(endpoint.BaseURL, spec.Path)
	if len(spec.Query) > 0 {
		rawURL += "?" + EncodeQuery(spec.Query)
	}

	var body io.Reader
	if spec.Body != nil {
		data, err := json.Marshal(spec.Body)
		if err != nil {
			return nil, fmt.Errorf("travis: сериализация тела запроса: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("travis: создание запроса: %w", err)
	}

	accept := spec.Accept
	if accept == "" {
		accept = mediaTypeJSON
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	req.Header.Set(HeaderAPIVersion, APIVersion)
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", userAgent)
	if spec.Body != nil {
		req.Header.Set("Content-Type", mediaTypeJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", authScheme+token)
	}
	return req, nil
}

// ParseHref разбирает ссылку из ответа Travis ("@href") в путь и
// упорядоченные параметры, пригодные для RequestSpec.
func ParseHref(href string) (string, []QueryParam, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", nil, fmt.Errorf("travis: некорректная ссылка %q: %w", href, err)
	}
	var params []QueryParam
	for _, pair := range strings.Split(u.RawQuery, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return "", nil, fmt.Errorf("travis: некорректный параметр %q: %w", k, err)
		}
		val, err := url.QueryUnescape(v)
		if err != nil {
			return "", nil, fmt.Errorf("travis: некорректное значение %q: %w", v, err)
		}
		params = append(params, QueryParam{Key: key, Value: val})
	}
	return u.EscapedPath(), params, nil
}

// escapeSlug экранирует slug вида "owner/repo" в один сегмент пути.
func escapeSlug(slug string) string {
	return url.PathEscape(slug)
}
