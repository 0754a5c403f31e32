package metrics

import (
	"context"
	"time"
)

// NopCollector — no-op реализация Collector для отключённых метрик.
type NopCollector struct{}

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

func (c *NopCollector) RecordCommandEnd(string, time.Duration, bool) {}

func (c *NopCollector) RecordRequest(string, string, int, time.Duration) {}

// Push всегда возвращает nil.
func (c *NopCollector) Push(context.Context) error {
	return nil
}
