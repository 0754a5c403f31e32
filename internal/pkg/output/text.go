package output

import (
	"encoding/json"
	"fmt"
	"io"
)

const summaryDivider = "══════════════════════════════════════════════════════"

// TextWriter форматирует Result в человекочитаемый текст.
type TextWriter struct{}

// NewTextWriter создаёт TextWriter.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// Write печатает заголовок, ошибку или данные и сводку.
// Сводка для ошибок не печатается.
func (t *TextWriter) Write(w io.Writer, result *Result) error {
	if result == nil {
		return nil
	}

	if _, err := fmt.Fprintf(w, "%s: %s\n", result.Command, result.Status); err != nil {
		return err
	}

	if result.Error != nil {
		if result.Error.HTTPStatus != 0 {
			_, err := fmt.Fprintf(w, "Error [%s] HTTP %d: %s\n", result.Error.Code, result.Error.HTTPStatus, result.Error.Message)
			return err
		}
		_, err := fmt.Fprintf(w, "Error [%s]: %s\n", result.Error.Code, result.Error.Message)
		return err
	}

	if err := writeData(w, result.Data); err != nil {
		return err
	}

	return t.writeSummary(w, result)
}

func writeData(w io.Writer, data any) error {
	if data == nil {
		return nil
	}
	if r, ok := data.(TextRenderer); ok {
		return r.WriteText(w)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("не удалось сериализовать Data: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", raw)
	return err
}

func (t *TextWriter) writeSummary(w io.Writer, result *Result) error {
	hasDuration := result.Metadata != nil && result.Metadata.DurationMs > 0
	if !hasDuration && result.Summary == nil {
		return nil
	}

	lines := []string{"", summaryDivider, "📊 Сводка", summaryDivider}
	if hasDuration {
		lines = append(lines, "⏱️  Время выполнения: "+formatDuration(result.Metadata.DurationMs))
	}
	if s := result.Summary; s != nil {
		for _, m := range s.KeyMetrics {
			line := "📈 " + m.Name + ": " + m.Value
			if m.Unit != "" {
				line += " " + m.Unit
			}
			lines = append(lines, line)
		}
		if s.WarningsCount > 0 {
			lines = append(lines, fmt.Sprintf("⚠️  Предупреждений: %d", s.WarningsCount))
			for _, warn := range s.Warnings {
				lines = append(lines, "   • "+warn)
			}
		}
	}
	lines = append(lines, summaryDivider)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// formatDuration печатает миллисекунды как "850мс", "2.5с" или "3м 5с".
func formatDuration(ms int64) string {
	switch {
	case ms < 1000:
		return fmt.Sprintf("%dмс", ms)
	case ms < 60_000:
		return fmt.Sprintf("%.1fс", float64(ms)/1000)
	default:
		sec := ms / 1000
		return fmt.Sprintf("%dм %dс", sec/60, sec%60)
	}
}
