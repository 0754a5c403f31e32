package progress

import (
	"log/slog"
	"time"
)

// nonTTYReportInterval — минимальный интервал между записями в лог.
const nonTTYReportInterval = 5 * time.Second

// NonTTYProgress реализует progress для non-TTY режима (CI/CD, pipes).
// Пишет в лог не чаще раза в nonTTYReportInterval.
type NonTTYProgress struct {
	opts       Options
	startTime  time.Time
	lastReport time.Time
	current    int64
	message    string
	log        *slog.Logger
}

// NewNonTTYProgress создаёт новый non-TTY progress.
func NewNonTTYProgress(opts Options) *NonTTYProgress {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &NonTTYProgress{opts: opts, log: log}
}

// Start инициализирует progress с начальным сообщением.
func (p *NonTTYProgress) Start(message string) {
	p.startTime = time.Now()
	p.lastReport = p.startTime
	p.message = message
	p.current = 0
	p.log.Info("Операция начата", slog.String("message", message))
}

// Update логирует счётчик, если с прошлой записи прошло достаточно времени.
func (p *NonTTYProgress) Update(current int64) {
	p.current = current
	if time.Since(p.lastReport) < nonTTYReportInterval {
		return
	}
	p.lastReport = time.Now()
	p.log.Info("Прогресс операции",
		slog.Int64("count", current),
		slog.String("elapsed", FormatDuration(time.Since(p.startTime))),
		slog.String("message", p.message))
}

// Finish логирует итог.
func (p *NonTTYProgress) Finish() {
	p.log.Info("Операция завершена",
		slog.Int64("count", p.current),
		slog.String("duration", FormatDuration(time.Since(p.startTime))),
		slog.String("message", p.message))
}
