package config

import (
	"time"

	"github.com/Kargones/travis/internal/pkg/tracing"
)

// TracingConfig — экспорт трейсов OTLP, переменные TRAVIS_TRACING_*.
type TracingConfig struct {
	Enabled      bool          `yaml:"enabled" env:"TRAVIS_TRACING_ENABLED"`
	Endpoint     string        `yaml:"endpoint" env:"TRAVIS_TRACING_ENDPOINT"`
	ServiceName  string        `yaml:"serviceName" env:"TRAVIS_TRACING_SERVICE_NAME" env-default:"travis"`
	Environment  string        `yaml:"environment" env:"TRAVIS_TRACING_ENVIRONMENT" env-default:"production"`
	Insecure     bool          `yaml:"insecure" env:"TRAVIS_TRACING_INSECURE"`
	Timeout      time.Duration `yaml:"timeout" env:"TRAVIS_TRACING_TIMEOUT" env-default:"5s"`
	SamplingRate float64       `yaml:"samplingRate" env:"TRAVIS_TRACING_SAMPLING_RATE" env-default:"1.0"`
}

// ToTracing конвертирует секцию в tracing.Config.
func (tc TracingConfig) ToTracing(version string) tracing.Config {
	return tracing.Config{
		Enabled:      tc.Enabled,
		Endpoint:     tc.Endpoint,
		ServiceName:  tc.ServiceName,
		Version:      version,
		Environment:  tc.Environment,
		Insecure:     tc.Insecure,
		Timeout:      tc.Timeout,
		SamplingRate: tc.SamplingRate,
	}
}
