package travis

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Kargones/travis/internal/pkg/apperrors"
)

// Kind — категория ошибки Travis API.
type Kind int

const (
	// KindTransport — сетевая ошибка: DNS, TLS, обрыв соединения, таймаут транспорта.
	KindTransport Kind = iota + 1
	// KindAuth — 401/403, неверный или просроченный токен.
	KindAuth
	// KindRateLimited — 429, см. RetryAfter.
	KindRateLimited
	// KindClient — прочие 4xx.
	KindClient
	// KindServer — 5xx.
	KindServer
	// KindDecode — тело ответа не соответствует ожидаемой структуре.
	KindDecode
)

// String возвращает имя категории.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAuth:
		return "auth"
	case KindRateLimited:
		return "rate_limited"
	case KindClient:
		return "client"
	case KindServer:
		return "server"
	case KindDecode:
		return "decode"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Коды ошибок Travis операций.
const (
	// ErrTravisTransport — ошибка транспорта
	ErrTravisTransport = apperrors.ErrTravisTransport
	// ErrTravisAuth — ошибка аутентификации
	ErrTravisAuth = apperrors.ErrTravisAuth
	// ErrTravisRateLimited — превышен лимит запросов
	ErrTravisRateLimited = apperrors.ErrTravisRateLimited
	// ErrTravisClient — ошибка запроса (4xx)
	ErrTravisClient = apperrors.ErrTravisClient
	// ErrTravisNotFound — ресурс не найден (404)
	ErrTravisNotFound = apperrors.ErrTravisNotFound
	// ErrTravisServer — ошибка сервера (5xx)
	ErrTravisServer = apperrors.ErrTravisServer
	// ErrTravisDecode — некорректное тело ответа
	ErrTravisDecode = apperrors.ErrTravisDecode
)

// maxErrorBody ограничивает объём тела ответа, сохраняемого в Error.Body.
const maxErrorBody = 64 << 10

// Error — типизированная ошибка Travis API.
// Возвращается всеми операциями клиента, кроме ошибок локальной валидации.
type Error struct {
	// Kind — категория ошибки
	Kind Kind
	// Code — машиночитаемый код (одна из констант ErrTravis*)
	Code string
	// Message — человекочитаемое описание
	Message string
	// StatusCode — HTTP статус ответа (0 для KindTransport)
	StatusCode int
	// ErrorType — поле error_type из ответа Travis (например, "not_found")
	ErrorType string
	// ResourceType — поле resource_type из ответа Travis
	ResourceType string
	// Body — сырое тело ответа, если структурированный payload отсутствует
	Body string
	// RetryAfter — значение заголовка Retry-After как есть (только KindRateLimited)
	RetryAfter string
	// Cause — исходная ошибка (если есть)
	Cause error
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("[%s] HTTP %d: %s", e.Code, e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap возвращает исходную ошибку для errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrorCode возвращает машиночитаемый код ошибки.
func (e *Error) ErrorCode() string {
	return e.Code
}

// As поддерживает преобразование Error в apperrors.AppError через errors.As.
func (e *Error) As(target any) bool {
	if t, ok := target.(**apperrors.AppError); ok {
		*t = &apperrors.AppError{
			Code:    e.Code,
			Message: e.Message,
			Cause:   e.Cause,
		}
		return true
	}
	return false
}

// RetryAfterDuration интерпретирует RetryAfter: число секунд или HTTP-дата.
// Возвращает false если подсказки нет или её не удалось разобрать.
func (e *Error) RetryAfterDuration() (time.Duration, bool) {
	return parseRetryAfter(e.RetryAfter, time.Now())
}

func parseRetryAfter(v string, now time.Time) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if at, err := http.ParseTime(v); err == nil {
		d := at.Sub(now)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}

func newTransportError(method, route string, cause error) *Error {
	return &Error{
		Kind:    KindTransport,
		Code:    ErrTravisTransport,
		Message: fmt.Sprintf("%s %s: запрос не выполнен", method, route),
		Cause:   cause,
	}
}

func newDecodeError(status int, body []byte, cause error) *Error {
	return &Error{
		Kind:       KindDecode,
		Code:       ErrTravisDecode,
		Message:    "не удалось разобрать ответ Travis API",
		StatusCode: status,
		Body:       truncateBody(body),
		Cause:      cause,
	}
}

func truncateBody(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody])
	}
	return string(body)
}

func kindOf(err error) (Kind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// IsTransportError проверяет, является ли ошибка сетевой.
// Поддерживает wrapped errors через errors.As.
func IsTransportError(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindTransport
}

// IsAuthError проверяет, является ли ошибка ошибкой аутентификации.
func IsAuthError(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindAuth
}

// IsRateLimited проверяет, превышен ли лимит запросов.
func IsRateLimited(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindRateLimited
}

// IsClientError проверяет, является ли ошибка ошибкой запроса (4xx кроме 401/403/429).
func IsClientError(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindClient
}

// IsServerError проверяет, является ли ошибка ошибкой сервера (5xx).
func IsServerError(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindServer
}

// IsDecodeError проверяет, является ли ошибка ошибкой разбора ответа.
func IsDecodeError(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindDecode
}

// IsNotFound проверяет, вернул ли Travis 404.
func IsNotFound(err error) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind == KindClient && te.StatusCode == http.StatusNotFound
	}
	return false
}
