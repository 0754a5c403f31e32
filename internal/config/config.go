// Package config загружает конфигурацию CLI travis.
//
// Источники в порядке приоритета: значения по умолчанию, YAML файл
// (TRAVIS_CONFIG или --config), переменные окружения TRAVIS_*, флаги командной строки.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/Kargones/travis/travis"
)

// TravisConfig — параметры подключения к Travis CI API.
type TravisConfig struct {
	// Pro выбирает api.travis-ci.com вместо api.travis-ci.org.
	Pro bool `yaml:"pro" env:"TRAVIS_PRO"`

	// Endpoint переопределяет базовый URL (Travis Enterprise).
	Endpoint string `yaml:"endpoint" env:"TRAVIS_ENDPOINT"`

	// Token — токен Travis API. Имеет приоритет над GithubToken.
	Token string `yaml:"token" env:"TRAVIS_TOKEN"`

	// GithubToken обменивается на токен Travis при создании клиента.
	GithubToken string `yaml:"githubToken" env:"TRAVIS_GITHUB_TOKEN"`

	UserAgent string `yaml:"userAgent" env:"TRAVIS_USER_AGENT"`

	// Timeout — общий таймаут HTTP-запроса.
	Timeout time.Duration `yaml:"timeout" env:"TRAVIS_TIMEOUT" env-default:"30s"`

	// RateLimit — запросов в секунду, 0 отключает ограничение.
	RateLimit float64 `yaml:"rateLimit" env:"TRAVIS_RATE_LIMIT" env-default:"0"`
	RateBurst int     `yaml:"rateBurst" env:"TRAVIS_RATE_BURST" env-default:"1"`
}

// RetryConfig — повтор команд при TRAVIS.RATE_LIMITED.
// Сама библиотека travis запросы не повторяет.
type RetryConfig struct {
	// MaxAttempts включает первую попытку; 1 отключает повторы.
	MaxAttempts uint `yaml:"maxAttempts" env:"TRAVIS_RETRY_MAX_ATTEMPTS" env-default:"3"`

	InitialInterval time.Duration `yaml:"initialInterval" env:"TRAVIS_RETRY_INITIAL_INTERVAL" env-default:"1s"`
	MaxInterval     time.Duration `yaml:"maxInterval" env:"TRAVIS_RETRY_MAX_INTERVAL" env-default:"30s"`
}

// OutputConfig — формат вывода результата команды.
type OutputConfig struct {
	Format string `yaml:"format" env:"TRAVIS_OUTPUT_FORMAT" env-default:"text"`

	// NoProgress отключает счётчик загрузки страниц в stderr при --all.
	NoProgress bool `yaml:"noProgress" env:"TRAVIS_NO_PROGRESS"`
}

// AppConfig — содержимое YAML файла конфигурации.
type AppConfig struct {
	Travis  TravisConfig  `yaml:"travis"`
	Retry   RetryConfig   `yaml:"retry"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// Config — полная конфигурация запуска CLI.
type Config struct {
	AppConfig

	// ConfigPath — путь к YAML файлу, если он использовался.
	ConfigPath string

	// Command — имя команды, первый позиционный аргумент.
	Command string

	// Args — позиционные аргументы после имени команды.
	Args []string

	// Flags — флаги отдельных команд.
	Flags CommandFlags

	// Logger — логгер загрузки конфигурации.
	Logger *slog.Logger

	// Transport — транспорт для клиентов travis, заполняется di.
	Transport travis.Transport
}

// CommandFlags — флаги, которые используют отдельные команды.
type CommandFlags struct {
	// Limit — размер страницы для repos и builds.
	Limit int
	// All обходит все страницы вместо первой.
	All bool
	// Branch и State фильтруют builds.
	Branch string
	State  string
	// Public делает переменную env-set видимой в логах сборки.
	Public bool
	// Help выводит справку.
	Help bool
}

// Tier возвращает тариф Travis по конфигурации.
func (c *Config) Tier() travis.Tier {
	if c.Travis.Pro {
		return travis.TierPro
	}
	return travis.TierPublic
}

// Credential выбирает учётные данные: токен Travis, затем токен GitHub, затем анонимно.
func (c *Config) Credential() travis.Credential {
	switch {
	case c.Travis.Token != "":
		return travis.APIKey(c.Travis.Token)
	case c.Travis.GithubToken != "":
		return travis.Github(c.Travis.GithubToken)
	default:
		return travis.None()
	}
}

// Endpoint возвращает адрес API с учётом переопределения Travis.Endpoint.
func (c *Config) Endpoint() travis.Endpoint {
	ep := travis.ResolveEndpoint(c.Tier(), c.Credential())
	if c.Travis.Endpoint != "" {
		ep.BaseURL = strings.TrimRight(c.Travis.Endpoint, "/")
	}
	return ep
}
