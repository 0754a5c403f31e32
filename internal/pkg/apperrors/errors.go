// Package apperrors предоставляет структурированные ошибки приложения.
// Переименован из errors чтобы избежать конфликта со стандартной библиотекой.
package apperrors

import (
	"errors"
	"fmt"
)

// Коды ошибок в иерархическом формате: CATEGORY.SPECIFIC_ERROR.
const (
	// Category: CONFIG — ошибки загрузки конфигурации и разбора флагов.
	ErrConfigLoad     = "CONFIG.LOAD_FAILED"
	ErrConfigParse    = "CONFIG.PARSE_FAILED"
	ErrConfigValidate = "CONFIG.VALIDATION_FAILED"

	// Category: COMMAND — ошибки выполнения команд.
	ErrCommandNotFound = "COMMAND.NOT_FOUND"
	ErrCommandUsage    = "COMMAND.USAGE"
	ErrCommandExec     = "COMMAND.EXEC_FAILED"

	// Category: OUTPUT — ошибки форматирования вывода.
	ErrOutputFormat = "OUTPUT.FORMAT_FAILED"

	// Category: TRAVIS — ошибки обращения к Travis CI API.
	ErrTravisTransport   = "TRAVIS.TRANSPORT_FAILED"
	ErrTravisAuth        = "TRAVIS.AUTH_FAILED"
	ErrTravisRateLimited = "TRAVIS.RATE_LIMITED"
	ErrTravisClient      = "TRAVIS.CLIENT_ERROR"
	ErrTravisNotFound    = "TRAVIS.NOT_FOUND"
	ErrTravisServer      = "TRAVIS.SERVER_ERROR"
	ErrTravisDecode      = "TRAVIS.DECODE_FAILED"
)

// AppError представляет структурированную ошибку приложения.
//
// ВАЖНО: Message НЕ ДОЛЖЕН содержать секреты (токены Travis и GitHub).
//
//	return apperrors.NewAppError(apperrors.ErrConfigLoad,
//	    "не удалось прочитать файл конфигурации", err)
type AppError struct {
	// Code — машиночитаемый код ошибки в формате CATEGORY.SPECIFIC.
	Code string `json:"code"`

	// Message — человекочитаемое описание ошибки.
	Message string `json:"message"`

	// Cause не сериализуется в JSON.
	Cause error `json:"-"`
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap возвращает wrapped ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError создаёт новый AppError с заданным кодом, сообщением и причиной.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf возвращает код первой AppError в цепочке err.
// Для ошибок без кода возвращает пустую строку.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
