package di

import (
	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/pkg/logging"
	"github.com/Kargones/travis/internal/pkg/metrics"
	"github.com/Kargones/travis/internal/pkg/tracing"
	"github.com/Kargones/travis/travis"
)

// App содержит инициализированные зависимости приложения.
// Создаётся через Wire DI в InitializeApp().
//
// При добавлении новых зависимостей:
// 1. Добавить поле в App struct
// 2. Создать провайдер в providers.go
// 3. Добавить провайдер в ProviderSet в wire.go
// 4. Перегенерировать wire_gen.go: go generate ./internal/di/...
type App struct {
	// Config передаётся извне через InitializeApp().
	Config *config.Config

	// Logger создаётся через ProvideLogger на основе Config.Logging.
	Logger logging.Logger

	// TraceID — идентификатор запуска для корреляции логов и вывода.
	TraceID string

	// MetricsCollector собирает метрики команд и HTTP-запросов.
	// Если метрики отключены — используется NopCollector.
	MetricsCollector metrics.Collector

	// TracerShutdown завершает OTel TracerProvider и отправляет буферизированные span-ы.
	TracerShutdown tracing.ShutdownFunc

	// Transport — цепочка для клиентов travis: ограничение частоты,
	// инструментирование, HTTP клиент с таймаутом.
	Transport travis.Transport
}

// Bind передаёт логгер и транспорт в Config, откуда их берут обработчики команд.
func (a *App) Bind() {
	a.Config.Logger = a.Logger.Slog().With("trace_id", a.TraceID)
	a.Config.Transport = a.Transport
}
