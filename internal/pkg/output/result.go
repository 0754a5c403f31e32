// Package output форматирует результаты команд CLI в JSON и текст.
package output

// StatusSuccess и StatusError — возможные значения поля Status в Result.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result — структурированный результат выполнения команды.
// Сериализуется в JSON при TRAVIS_OUTPUT_FORMAT=json, иначе печатается текстом.
type Result struct {
	Status  string `json:"status"`
	Command string `json:"command"`

	// Data — типизированный payload команды.
	// Если Data реализует TextRenderer, TextWriter использует его.
	Data any `json:"data,omitempty"`

	Error    *ErrorInfo `json:"error,omitempty"`
	Metadata *Metadata  `json:"metadata,omitempty"`

	// Summary попадает в JSON как metadata.summary.
	Summary *SummaryInfo `json:"-"`
}

// ErrorInfo описывает ошибку. Message не должен содержать токены.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	// HTTPStatus заполняется для ошибок Travis API.
	HTTPStatus int `json:"http_status,omitempty"`
}

// Metadata содержит метаданные выполнения команды.
type Metadata struct {
	DurationMs int64  `json:"duration_ms"`
	TraceID    string `json:"trace_id,omitempty"`
	APIVersion string `json:"api_version"`

	// Endpoint — базовый URL Travis API, к которому обращалась команда.
	Endpoint string `json:"endpoint,omitempty"`

	Summary *SummaryInfo `json:"summary,omitempty"`
}
