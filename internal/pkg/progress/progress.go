// Package progress показывает ход долгих операций в stderr:
// обход всех страниц коллекции Travis с --all.
// Поддерживает TTY счётчик со спиннером, non-TTY логирование и пустую реализацию.
package progress

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"
)

// Progress определяет интерфейс для отображения прогресса операций.
type Progress interface {
	// Start инициализирует progress с начальным сообщением.
	Start(message string)
	// Update сообщает текущее число обработанных элементов.
	Update(current int64)
	// Finish завершает progress.
	Finish()
}

// Options конфигурирует progress.
type Options struct {
	// Output — куда выводить (обычно os.Stderr)
	Output io.Writer
	// Disabled отключает вывод (TRAVIS_NO_PROGRESS или JSON формат)
	Disabled bool
	// ThrottleInterval — минимальный интервал между обновлениями
	ThrottleInterval time.Duration
	// Logger используется в non-TTY режиме
	Logger *slog.Logger
}

// IsTTY проверяет, является ли writer терминалом.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// FormatDuration форматирует duration в читаемый вид (1h 7m 30s, 5m 30s, 45s).
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < 0 {
		return "0s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	s := ""
	if hours > 0 {
		s = fmt.Sprintf("%dh", hours)
	}
	if minutes > 0 {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%dm", minutes)
	}
	if seconds > 0 {
		s += fmt.Sprintf(" %ds", seconds)
	}
	return s
}
