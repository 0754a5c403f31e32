// Package shared содержит общие компоненты обработчиков команд:
// создание клиента Travis, повтор при ограничении частоты, формирование результата.
package shared

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/pkg/urlutil"
	"github.com/Kargones/travis/travis"
)

// CreateClient создаёт клиент Travis по конфигурации.
// Для токена GitHub выполняет обмен, поэтому обращается к сети.
func CreateClient(ctx context.Context, cfg *config.Config) (*travis.Client, error) {
	if cfg == nil {
		return nil, errors.New("конфигурация не может быть nil")
	}

	endpoint := cfg.Endpoint()
	Logger(cfg).Debug("Создание клиента Travis",
		slog.String("endpoint", endpoint.BaseURL),
		slog.String("credential", credentialLabel(cfg)),
	)

	opts := []travis.Option{travis.WithLogger(Logger(cfg))}
	if cfg.Travis.UserAgent != "" {
		opts = append(opts, travis.WithUserAgent(cfg.Travis.UserAgent))
	}

	return travis.NewWithEndpoint(ctx, endpoint, cfg.Credential(), cfg.Transport, opts...)
}

// credentialLabel описывает учётные данные для лога без раскрытия токена.
func credentialLabel(cfg *config.Config) string {
	switch {
	case cfg.Travis.Token != "":
		return "api:" + urlutil.MaskToken(cfg.Travis.Token)
	case cfg.Travis.GithubToken != "":
		return "github:" + urlutil.MaskToken(cfg.Travis.GithubToken)
	default:
		return "none"
	}
}

// Logger возвращает логгер конфигурации или slog.Default().
func Logger(cfg *config.Config) *slog.Logger {
	if cfg != nil && cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.Default()
}
