// Package version реализует команду version.
package version

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/Kargones/travis/internal/command"
	"github.com/Kargones/travis/internal/command/handlers/shared"
	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/constants"
	"github.com/Kargones/travis/travis"
)

func RegisterCmd() error {
	return command.Register(&VersionHandler{})
}

// VersionData содержит информацию о версии приложения.
type VersionData struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Commit    string `json:"commit"`

	// UserAgent — заголовок User-Agent запросов к Travis по умолчанию.
	UserAgent string `json:"user_agent"`
}

// WriteText выводит версию в человекочитаемом формате.
func (d *VersionData) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "travis version %s\n  Go:         %s\n  Commit:     %s\n  User-Agent: %s\n",
		d.Version, d.GoVersion, d.Commit, d.UserAgent)
	return err
}

// buildVersionData подставляет "dev" и "unknown" вместо пустых значений.
func buildVersionData(version, commit string) *VersionData {
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	return &VersionData{
		Version:   version,
		GoVersion: runtime.Version(),
		Commit:    commit,
		UserAgent: travis.DefaultUserAgent,
	}
}

// VersionHandler обрабатывает команду version.
type VersionHandler struct{}

// Name возвращает имя команды.
func (h *VersionHandler) Name() string {
	return constants.ActVersion
}

// Description возвращает описание команды для вывода в help.
func (h *VersionHandler) Description() string {
	return "Вывод информации о версии приложения"
}

// Usage возвращает синтаксис аргументов.
func (h *VersionHandler) Usage() string {
	return ""
}

// Execute выводит версию. Обращений к Travis API нет.
func (h *VersionHandler) Execute(ctx context.Context, cfg *config.Config) error {
	return shared.Run(ctx, cfg, constants.ActVersion, func(context.Context) (*shared.Outcome, error) {
		return &shared.Outcome{Data: buildVersionData(constants.Version, constants.CommitHash)}, nil
	})
}
