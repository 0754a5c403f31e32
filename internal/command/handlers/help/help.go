// Package help реализует команду help: список команд, их аргументы и флаги.
package help

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Kargones/travis/internal/command"
	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/constants"
	"github.com/Kargones/travis/internal/pkg/output"
	"github.com/Kargones/travis/internal/pkg/tracing"
)

func RegisterCmd() error {
	return command.Register(&Handler{})
}

// Data содержит описание всех команд.
type Data struct {
	Commands []CommandInfo `json:"commands"`
}

// CommandInfo описывает одну команду.
type CommandInfo struct {
	Name        string `json:"name"`
	Usage       string `json:"usage,omitempty"`
	Description string `json:"description"`
}

// Handler обрабатывает команду help.
type Handler struct{}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActHelp
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Вывод списка доступных команд"
}

// Usage возвращает синтаксис аргументов.
func (h *Handler) Usage() string {
	return ""
}

// Execute выводит справку. Текстовый формат печатается без обёртки Result.
func (h *Handler) Execute(ctx context.Context, cfg *config.Config) error {
	start := time.Now()
	data := buildData()

	if cfg == nil || !strings.EqualFold(cfg.Output.Format, output.FormatJSON) {
		return data.writeText(os.Stdout)
	}

	traceID := tracing.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = tracing.GenerateTraceID()
	}
	result := &output.Result{
		Status:  output.StatusSuccess,
		Command: constants.ActHelp,
		Data:    data,
		Metadata: &output.Metadata{
			DurationMs: time.Since(start).Milliseconds(),
			TraceID:    traceID,
			APIVersion: constants.APIVersion,
		},
	}
	return output.NewJSONWriter().Write(os.Stdout, result)
}

func buildData() *Data {
	handlers := command.All()
	data := &Data{Commands: make([]CommandInfo, 0, len(handlers))}
	for _, h := range handlers {
		data.Commands = append(data.Commands, CommandInfo{
			Name:        h.Name(),
			Usage:       h.Usage(),
			Description: h.Description(),
		})
	}
	return data
}

func (d *Data) writeText(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("travis — клиент Travis CI API v3\n")
	sb.WriteString("\nИспользование: travis [флаги] <команда> [аргументы]\n")
	sb.WriteString("\nКоманды:\n")

	width := 0
	for _, c := range d.Commands {
		width = max(width, len(signature(c)))
	}
	for _, c := range d.Commands {
		fmt.Fprintf(&sb, "  %-*s  %s\n", width, signature(c), c.Description)
	}
	sb.WriteString("\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	config.PrintDefaults(w)
	return nil
}

func signature(c CommandInfo) string {
	if c.Usage == "" {
		return c.Name
	}
	return c.Name + " " + c.Usage
}
