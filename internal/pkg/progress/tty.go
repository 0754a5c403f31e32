package progress

import (
	"fmt"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// TTYProgress перерисовывает одну строку терминала: спиннер, сообщение, счётчик.
type TTYProgress struct {
	mu        sync.Mutex
	opts      Options
	startTime time.Time
	lastDraw  time.Time
	current   int64
	frame     int
	message   string
}

// NewTTYProgress создаёт новый TTY progress.
func NewTTYProgress(opts Options) *TTYProgress {
	return &TTYProgress{opts: opts}
}

// Start инициализирует progress с начальным сообщением.
func (p *TTYProgress) Start(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.startTime = time.Now()
	p.lastDraw = time.Time{}
	p.current = 0
	p.message = message
	p.draw()
}

// Update перерисовывает строку не чаще ThrottleInterval.
func (p *TTYProgress) Update(current int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = current
	if time.Since(p.lastDraw) < p.opts.ThrottleInterval {
		return
	}
	p.draw()
}

// Finish выводит итог и переводит строку.
func (p *TTYProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.opts.Output, "\r\033[K✓ %s: %d за %s\n", //nolint:errcheck // terminal output
		p.message, p.current, FormatDuration(time.Since(p.startTime)))
}

func (p *TTYProgress) draw() {
	p.lastDraw = time.Now()
	frame := spinnerFrames[p.frame%len(spinnerFrames)]
	p.frame++
	_, _ = fmt.Fprintf(p.opts.Output, "\r\033[K%s %s: %d", frame, p.message, p.current) //nolint:errcheck // terminal output
}
