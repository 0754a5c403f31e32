package metrics

import (
	"errors"
	"net/url"
	"time"
)

// Ошибки валидации Config.
var (
	ErrPushgatewayURLRequired = errors.New("metrics: TRAVIS_METRICS_PUSHGATEWAY_URL обязателен когда метрики включены")
	ErrPushgatewayURLInvalid  = errors.New("metrics: pushgateway URL должен быть URL с host, например http://pushgateway:9091")
	ErrJobNameRequired        = errors.New("metrics: job name обязателен")
	ErrInvalidTimeout         = errors.New("metrics: timeout push должен быть положительным")
)

// Config содержит настройки отправки метрик в Pushgateway.
type Config struct {
	// Enabled — включены ли метрики (по умолчанию false).
	Enabled bool

	// PushgatewayURL — URL Prometheus Pushgateway.
	// Пример: "http://pushgateway:9091"
	PushgatewayURL string

	// JobName — имя job в Pushgateway. По умолчанию "travis".
	JobName string

	// Timeout — таймаут push. По умолчанию 10 секунд.
	Timeout time.Duration

	// InstanceLabel переопределяет hostname в label instance.
	InstanceLabel string
}

// Validate проверяет конфигурацию включённых метрик.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.PushgatewayURL == "" {
		return ErrPushgatewayURLRequired
	}

	u, err := url.Parse(c.PushgatewayURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrPushgatewayURLInvalid
	}

	if c.JobName == "" {
		return ErrJobNameRequired
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	return nil
}

// DefaultConfig возвращает конфигурацию по умолчанию.
func DefaultConfig() Config {
	return Config{
		JobName: "travis",
		Timeout: 10 * time.Second,
	}
}
