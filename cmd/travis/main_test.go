package main

import (
	"errors"
	"os"
	"testing"

	"github.com/Kargones/travis/internal/command/handlers"
	"github.com/Kargones/travis/internal/constants"
	"github.com/Kargones/travis/internal/pkg/apperrors"
	"github.com/Kargones/travis/internal/pkg/testutil"
	"github.com/Kargones/travis/travis"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	if err := handlers.RegisterAll(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func quietEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TRAVIS_LOG_LEVEL", "error")
	t.Setenv("TRAVIS_CONFIG", "")
	t.Setenv("TRAVIS_TOKEN", "")
	t.Setenv("TRAVIS_GITHUB_TOKEN", "")
	t.Setenv("TRAVIS_OUTPUT_FORMAT", "text")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"успех", nil, constants.ExitOK},
		{"использование", apperrors.NewAppError(apperrors.ErrCommandUsage, "usage", nil), constants.ExitUsage},
		{"неизвестная команда", apperrors.NewAppError(apperrors.ErrCommandNotFound, "nope", nil), constants.ExitUsage},
		{"конфигурация", apperrors.NewAppError(apperrors.ErrConfigValidate, "bad", nil), constants.ExitConfig},
		{"ошибка Travis", &travis.Error{Kind: travis.KindServer, Code: travis.ErrTravisServer, StatusCode: 502}, constants.ExitFailure},
		{"прочая ошибка", errors.New("boom"), constants.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestRun_Version(t *testing.T) {
	quietEnv(t)
	var code int
	out := testutil.CaptureStdout(t, func() { code = run([]string{"version"}) })

	assert.Equal(t, constants.ExitOK, code)
	assert.Contains(t, out, "version: success")
}

func TestRun_EmptyCommandShowsHelp(t *testing.T) {
	quietEnv(t)
	var code int
	out := testutil.CaptureStdout(t, func() { code = run(nil) })

	assert.Equal(t, constants.ExitOK, code)
	assert.Contains(t, out, constants.ActEnvSet)
}

func TestRun_UnknownCommand(t *testing.T) {
	quietEnv(t)
	var code int
	out := testutil.CaptureStdout(t, func() { code = run([]string{"deploy"}) })

	assert.Equal(t, constants.ExitUsage, code)
	assert.Contains(t, out, "COMMAND.NOT_FOUND")
}

func TestRun_MissingArgument(t *testing.T) {
	quietEnv(t)
	var code int
	out := testutil.CaptureStdout(t, func() { code = run([]string{"builds"}) })

	assert.Equal(t, constants.ExitUsage, code)
	assert.Contains(t, out, "travis builds <owner/name>")
}

func TestRun_BadFlag(t *testing.T) {
	quietEnv(t)
	var code int
	testutil.CaptureStderr(t, func() { code = run([]string{"--no-such-flag"}) })

	assert.Equal(t, constants.ExitConfig, code)
}
