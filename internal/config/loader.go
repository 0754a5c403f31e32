package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Kargones/travis/internal/pkg/apperrors"
	"github.com/Kargones/travis/internal/pkg/output"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath — переменная окружения с путём к YAML файлу.
const EnvConfigPath = "TRAVIS_CONFIG"

// Load разбирает аргументы командной строки (без имени программы)
// и собирает Config из всех источников.
//
// Ошибки разбора флагов возвращаются с кодом CONFIG.PARSE_FAILED,
// ошибки файла и окружения с CONFIG.LOAD_FAILED,
// невалидные значения с CONFIG.VALIDATION_FAILED.
func Load(args []string) (*Config, error) {
	fs, fv := newFlagSet()
	if err := fs.Parse(args); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			return nil, apperrors.NewAppError(apperrors.ErrConfigParse, "некорректные аргументы командной строки", err)
		}
		fv.cmd.Help = true
	}

	cfg := &Config{}
	cfg.ConfigPath = fv.configPath
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = os.Getenv(EnvConfigPath)
	}

	if cfg.ConfigPath != "" {
		if err := readYAML(cfg.ConfigPath, &cfg.AppConfig); err != nil {
			return nil, err
		}
	}

	if err := cleanenv.ReadEnv(&cfg.AppConfig); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad, "не удалось прочитать переменные окружения TRAVIS_*", err)
	}

	fv.apply(fs, cfg)

	if positional := fs.Args(); len(positional) > 0 {
		cfg.Command = positional[0]
		cfg.Args = positional[1:]
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigValidate, "некорректная конфигурация", err)
	}
	return cfg, nil
}

// readYAML читает файл строго: неизвестные ключи считаются ошибкой.
func readYAML(path string, dst *AppConfig) error {
	data, err := os.ReadFile(path) //nolint:gosec // путь задаёт пользователь
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrConfigLoad, "не удалось прочитать файл конфигурации", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.NewAppError(apperrors.ErrConfigParse, "некорректный YAML в файле конфигурации", err)
	}
	return nil
}

// Validate проверяет значения, которые нельзя исправить значениями по умолчанию.
func (c *Config) Validate() error {
	var problems []string

	if !output.ValidFormat(c.Output.Format) {
		problems = append(problems, fmt.Sprintf("формат вывода %q не поддерживается", c.Output.Format))
	}
	if c.Travis.Endpoint != "" && !strings.HasPrefix(c.Travis.Endpoint, "http://") && !strings.HasPrefix(c.Travis.Endpoint, "https://") {
		problems = append(problems, "endpoint должен начинаться с http:// или https://")
	}
	if c.Travis.Timeout <= 0 {
		problems = append(problems, "timeout должен быть положительным")
	}
	if c.Travis.RateLimit < 0 {
		problems = append(problems, "rateLimit не может быть отрицательным")
	}
	if c.Travis.RateLimit > 0 && c.Travis.RateBurst < 1 {
		problems = append(problems, "rateBurst должен быть не меньше 1")
	}
	if c.Retry.MaxAttempts < 1 {
		problems = append(problems, "retry.maxAttempts должен быть не меньше 1")
	}
	if c.Flags.Limit < 0 {
		problems = append(problems, "--limit не может быть отрицательным")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
