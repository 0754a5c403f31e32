package progress

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{-time.Second, "0s"},
		{0, "0s"},
		{45 * time.Second, "45s"},
		{5 * time.Minute, "5m"},
		{5*time.Minute + 30*time.Second, "5m 30s"},
		{time.Hour, "1h"},
		{time.Hour + 30*time.Second, "1h 30s"},
		{time.Hour + 7*time.Minute + 30*time.Second, "1h 7m 30s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}

func TestNew_Selection(t *testing.T) {
	assert.IsType(t, &NoopProgress{}, New(Options{Disabled: true}))
	assert.IsType(t, &NonTTYProgress{}, New(Options{Output: &bytes.Buffer{}}))
}

func TestIsTTY_NonFile(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestTTYProgress_DrawsCounter(t *testing.T) {
	var buf bytes.Buffer
	p := NewTTYProgress(Options{Output: &buf, ThrottleInterval: 0})

	p.Start("Загрузка сборок")
	p.Update(25)
	p.Update(50)
	p.Finish()

	out := buf.String()
	assert.Contains(t, out, "Загрузка сборок: 25")
	assert.Contains(t, out, "Загрузка сборок: 50")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "✓ Загрузка сборок: 50")
}

func TestTTYProgress_Throttles(t *testing.T) {
	var buf bytes.Buffer
	p := NewTTYProgress(Options{Output: &buf, ThrottleInterval: time.Hour})

	p.Start("Загрузка")
	p.Update(1)
	p.Update(2)

	assert.NotContains(t, buf.String(), "Загрузка: 2")
}

func TestNonTTYProgress_LogsStartAndFinish(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	p := NewNonTTYProgress(Options{Logger: log})

	p.Start("Загрузка репозиториев")
	p.Update(3)
	p.Finish()

	out := buf.String()
	require.Contains(t, out, "Операция начата")
	assert.Contains(t, out, "Операция завершена")
	assert.Contains(t, out, "count=3")
}

func TestNoopProgress(t *testing.T) {
	p := NewNoOp()
	assert.NotPanics(t, func() {
		p.Start("x")
		p.Update(1)
		p.Finish()
	})
}
