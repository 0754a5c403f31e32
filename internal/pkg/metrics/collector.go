// Package metrics собирает метрики CLI и HTTP-запросов к Travis API
// и отправляет их в Prometheus Pushgateway.
//
// NewCollector возвращает NopCollector при отключённых метриках.
package metrics

import (
	"context"
	"time"
)

// Collector определяет интерфейс для сбора метрик.
// Реализации: PrometheusCollector и NopCollector.
type Collector interface {
	// RecordCommandEnd записывает завершение команды CLI.
	RecordCommandEnd(command string, duration time.Duration, success bool)

	// RecordRequest записывает один HTTP-запрос к Travis API.
	// route — нормализованный путь без идентификаторов, status 0 означает сбой транспорта.
	RecordRequest(method, route string, status int, duration time.Duration)

	// Push отправляет метрики в Pushgateway.
	// Всегда возвращает nil: ошибки отправки только логируются.
	Push(ctx context.Context) error
}
