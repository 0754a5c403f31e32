package command

import (
	"context"
	"sync"
	"testing"

	"github.com/Kargones/travis/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct{ name string }

func (s *stubHandler) Name() string        { return s.name }
func (s *stubHandler) Description() string { return "stub " + s.name }
func (s *stubHandler) Usage() string       { return "" }
func (s *stubHandler) Execute(context.Context, *config.Config) error {
	return nil
}

func TestRegister(t *testing.T) {
	clearRegistry()
	t.Cleanup(clearRegistry)

	require.NoError(t, Register(&stubHandler{name: "builds"}))
	require.NoError(t, Register(&stubHandler{name: "build-restart"}))

	h, ok := Get("builds")
	require.True(t, ok)
	assert.Equal(t, "stub builds", h.Description())

	_, ok = Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"build-restart", "builds"}, Names())

	all := All()
	require.Len(t, all, 2)
	assert.Equal(t, "build-restart", all[0].Name())
}

func TestRegister_Errors(t *testing.T) {
	clearRegistry()
	t.Cleanup(clearRegistry)

	assert.ErrorIs(t, Register(nil), ErrNilHandler)

	for _, bad := range []string{"", "Builds", "env_set", "env-", "env--set", "1env"} {
		assert.ErrorIs(t, Register(&stubHandler{name: bad}), ErrInvalidName, bad)
	}

	require.NoError(t, Register(&stubHandler{name: "whoami"}))
	assert.ErrorIs(t, Register(&stubHandler{name: "whoami"}), ErrDuplicateName)
}

func TestRegister_Concurrent(t *testing.T) {
	clearRegistry()
	t.Cleanup(clearRegistry)

	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	var wg sync.WaitGroup
	for _, n := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, Register(&stubHandler{name: n}))
			_ = Names()
		}()
	}
	wg.Wait()
	assert.Equal(t, names, Names())
}
