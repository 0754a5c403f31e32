package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Kargones/travis/internal/pkg/apperrors"
	"github.com/Kargones/travis/travis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "travis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load([]string{"whoami"})
	require.NoError(t, err)

	assert.Equal(t, "whoami", cfg.Command)
	assert.Empty(t, cfg.Args)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 30*time.Second, cfg.Travis.Timeout)
	assert.Equal(t, uint(3), cfg.Retry.MaxAttempts)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "travis", cfg.Metrics.JobName)
	assert.Equal(t, "travis", cfg.Tracing.ServiceName)
	assert.False(t, cfg.Metrics.Enabled)

	assert.Equal(t, travis.TierPublic, cfg.Tier())
	assert.Equal(t, travis.None(), cfg.Credential())
	assert.Equal(t, travis.PublicBaseURL, cfg.Endpoint().BaseURL)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
travis:
  pro: true
  token: from-yaml
  timeout: 10s
output:
  format: json
logging:
  level: warn
retry:
  maxAttempts: 5
`)
	t.Setenv(EnvConfigPath, path)
	t.Setenv("TRAVIS_TOKEN", "from-env")
	t.Setenv("TRAVIS_LOG_LEVEL", "error")

	cfg, err := Load([]string{"builds", "octo/hello", "--log-level", "debug", "--branch", "main"})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigPath)
	assert.True(t, cfg.Travis.Pro, "YAML")
	assert.Equal(t, 10*time.Second, cfg.Travis.Timeout, "YAML")
	assert.Equal(t, "json", cfg.Output.Format, "YAML")
	assert.Equal(t, uint(5), cfg.Retry.MaxAttempts, "YAML")
	assert.Equal(t, "from-env", cfg.Travis.Token, "env поверх YAML")
	assert.Equal(t, "debug", cfg.Logging.Level, "флаг поверх env")

	assert.Equal(t, "builds", cfg.Command)
	assert.Equal(t, []string{"octo/hello"}, cfg.Args)
	assert.Equal(t, "main", cfg.Flags.Branch)

	assert.Equal(t, travis.TierPro, cfg.Tier())
	assert.Equal(t, travis.APIKey("from-env"), cfg.Credential())
	assert.Equal(t, travis.ProBaseURL, cfg.Endpoint().BaseURL)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	t.Setenv("TRAVIS_OUTPUT_FORMAT", "json")

	cfg, err := Load([]string{
		"--format", "text",
		"--endpoint", "https://travis.example.com/api/",
		"--github-token", "gh",
		"env-set", "octo/hello", "SECRET", "v", "--public",
	})
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "https://travis.example.com/api", cfg.Endpoint().BaseURL)
	assert.Equal(t, travis.Github("gh"), cfg.Credential())
	assert.True(t, cfg.Flags.Public)
	assert.Equal(t, []string{"octo/hello", "SECRET", "v"}, cfg.Args)
}

func TestLoad_ConfigFlagBeatsEnvPath(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "missing.yaml"))
	path := writeConfig(t, "travis:\n  endpoint: https://ci.example\n")

	cfg, err := Load([]string{"--config", path, "whoami"})
	require.NoError(t, err)
	assert.Equal(t, "https://ci.example", cfg.Travis.Endpoint)
}

func TestLoad_Help(t *testing.T) {
	cfg, err := Load([]string{"-h"})
	require.NoError(t, err)
	assert.True(t, cfg.Flags.Help)
	assert.Empty(t, cfg.Command)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		yaml     string
		wantCode string
	}{
		{name: "неизвестный флаг", args: []string{"--nope"}, wantCode: apperrors.ErrConfigParse},
		{name: "неизвестный ключ YAML", yaml: "travis:\n  tokn: x\n", wantCode: apperrors.ErrConfigParse},
		{name: "плохой формат", args: []string{"--format", "yaml"}, wantCode: apperrors.ErrConfigValidate},
		{name: "endpoint без схемы", args: []string{"--endpoint", "travis.example"}, wantCode: apperrors.ErrConfigValidate},
		{name: "отрицательный limit", args: []string{"--limit", "-1"}, wantCode: apperrors.ErrConfigValidate},
		{name: "отрицательный rate", yaml: "travis:\n  rateLimit: -2\n", wantCode: apperrors.ErrConfigValidate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.yaml != "" {
				args = append([]string{"--config", writeConfig(t, tt.yaml)}, args...)
			}
			_, err := Load(args)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConfigLoad, apperrors.CodeOf(err))
}

func TestSectionConversions(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	lc := cfg.Logging.ToLogging()
	assert.True(t, lc.Compress)
	assert.Equal(t, "/var/log/travis.log", lc.FilePath)

	mc := cfg.Metrics.ToMetrics()
	assert.Equal(t, 10*time.Second, mc.Timeout)

	tc := cfg.Tracing.ToTracing("1.2.3")
	assert.Equal(t, "1.2.3", tc.Version)
	assert.Equal(t, 1.0, tc.SamplingRate)
}
