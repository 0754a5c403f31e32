package travis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// apiErrorPayload — структурированная ошибка Travis v3:
//
//	{"@type": "error", "error_type": "not_found", "error_message": "repository not found (or insufficient access)", "resource_type": "repository"}
type apiErrorPayload struct {
	Type         string `json:"@type"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
	ResourceType string `json:"resource_type"`
}

func parseAPIError(body []byte) (apiErrorPayload, bool) {
	var p apiErrorPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return p, false
	}
	if p.Type != "error" && p.ErrorType == "" && p.ErrorMessage == "" {
		return p, false
	}
	return p, true
}

var errNullBody = errors.New("тело ответа null")

// Decode классифицирует ответ и разбирает тело 2xx ответа в T.
// Тело всегда читается полностью и закрывается.
func Decode[T any](resp *http.Response) (T, error) {
	var zero T
	body, err := readBody(resp)
	if err != nil {
		return zero, err
	}
	if apiErr := classify(resp, body); apiErr != nil {
		return zero, apiErr
	}
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return zero, newDecodeError(resp.StatusCode, body, errNullBody)
	}
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return zero, newDecodeError(resp.StatusCode, body, err)
	}
	return v, nil
}

// decodeNoContent — как Decode, но тело 2xx ответа не разбирается.
func decodeNoContent(resp *http.Response) error {
	body, err := readBody(resp)
	if err != nil {
		return err
	}
	if apiErr := classify(resp, body); apiErr != nil {
		return apiErr
	}
	return nil
}

func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close() //nolint:errcheck // тело уже прочитано
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		method, route := requestLabels(resp.Request)
		return nil, newTransportError(method, route, fmt.Errorf("чтение тела ответа: %w", err))
	}
	return body, nil
}

func requestLabels(req *http.Request) (string, string) {
	if req == nil || req.URL == nil {
		return "", ""
	}
	return req.Method, req.URL.EscapedPath()
}

// classify возвращает nil для 2xx и *Error для остальных статусов.
func classify(resp *http.Response, body []byte) *Error {
	status := resp.StatusCode
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e := &Error{
			Kind:       KindAuth,
			Code:       ErrTravisAuth,
			Message:    "доступ запрещён",
			StatusCode: status,
		}
		fillPayload(e, body)
		return e
	case status == http.StatusTooManyRequests:
		e := &Error{
			Kind:       KindRateLimited,
			Code:       ErrTravisRateLimited,
			Message:    "превышен лимит запросов",
			StatusCode: status,
			RetryAfter: resp.Header.Get("Retry-After"),
		}
		fillPayload(e, body)
		return e
	case status >= 500:
		return &Error{
			Kind:       KindServer,
			Code:       ErrTravisServer,
			Message:    "ошибка сервера Travis",
			StatusCode: status,
			Body:       truncateBody(body),
		}
	default:
		code := ErrTravisClient
		if status == http.StatusNotFound {
			code = ErrTravisNotFound
		}
		e := &Error{
			Kind:       KindClient,
			Code:       code,
			Message:    "ошибка запроса",
			StatusCode: status,
		}
		fillPayload(e, body)
		return e
	}
}

// fillPayload заполняет поля ошибки из структурированного ответа Travis,
// а при его отсутствии сохраняет сырое тело.
func fillPayload(e *Error, body []byte) {
	p, ok := parseAPIError(body)
	if !ok {
		e.Body = truncateBody(body)
		return
	}
	e.ErrorType = p.ErrorType
	e.ResourceType = p.ResourceType
	if p.ErrorMessage != "" {
		e.Message = p.ErrorMessage
	}
}
