package help

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Kargones/travis/internal/command"
	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/pkg/output"
	"github.com/Kargones/travis/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type usageHandler struct{}

func (usageHandler) Name() string        { return "builds" }
func (usageHandler) Usage() string       { return "<slug>" }
func (usageHandler) Description() string { return "Список сборок" }
func (usageHandler) Execute(context.Context, *config.Config) error {
	return nil
}

func registerOnce(t *testing.T) {
	t.Helper()
	if _, ok := command.Get("help"); !ok {
		require.NoError(t, RegisterCmd())
	}
	if _, ok := command.Get("builds"); !ok {
		require.NoError(t, command.Register(usageHandler{}))
	}
}

func TestHandler_Text(t *testing.T) {
	registerOnce(t)

	var execErr error
	out := testutil.CaptureStdout(t, func() {
		execErr = (&Handler{}).Execute(context.Background(), &config.Config{})
	})
	require.NoError(t, execErr)

	assert.Contains(t, out, "Использование: travis")
	assert.Contains(t, out, "builds <slug>")
	assert.Contains(t, out, "Список сборок")
	assert.Contains(t, out, "--github-token")
	assert.NotContains(t, out, `"status"`)
}

func TestHandler_JSON(t *testing.T) {
	registerOnce(t)
	cfg := &config.Config{}
	cfg.Output.Format = output.FormatJSON

	var execErr error
	out := testutil.CaptureStdout(t, func() {
		execErr = (&Handler{}).Execute(context.Background(), cfg)
	})
	require.NoError(t, execErr)

	var result struct {
		Status string `json:"status"`
		Data   Data   `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "success", result.Status)

	names := map[string]string{}
	for _, c := range result.Data.Commands {
		names[c.Name] = c.Usage
	}
	assert.Contains(t, names, "help")
	assert.Equal(t, "<slug>", names["builds"])
}
