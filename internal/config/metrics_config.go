package config

import (
	"time"

	"github.com/Kargones/travis/internal/pkg/metrics"
)

// MetricsConfig — отправка метрик в Pushgateway, переменные TRAVIS_METRICS_*.
type MetricsConfig struct {
	Enabled        bool          `yaml:"enabled" env:"TRAVIS_METRICS_ENABLED"`
	PushgatewayURL string        `yaml:"pushgatewayUrl" env:"TRAVIS_METRICS_PUSHGATEWAY_URL"`
	JobName        string        `yaml:"jobName" env:"TRAVIS_METRICS_JOB_NAME" env-default:"travis"`
	Timeout        time.Duration `yaml:"timeout" env:"TRAVIS_METRICS_TIMEOUT" env-default:"10s"`
	InstanceLabel  string        `yaml:"instanceLabel" env:"TRAVIS_METRICS_INSTANCE"`
}

// ToMetrics конвертирует секцию в metrics.Config.
func (mc MetricsConfig) ToMetrics() metrics.Config {
	return metrics.Config{
		Enabled:        mc.Enabled,
		PushgatewayURL: mc.PushgatewayURL,
		JobName:        mc.JobName,
		Timeout:        mc.Timeout,
		InstanceLabel:  mc.InstanceLabel,
	}
}
