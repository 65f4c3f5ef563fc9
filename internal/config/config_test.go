package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnv = []string{
	EnvBackendURL, EnvLegacyBackend, EnvTimeout, EnvLogFile, EnvDebug,
	EnvOTLPEndpoint, EnvOTELService, EnvDisableAltScrn,
}

// clearEnv unsets every variable the package reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allEnv {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.BackendURL)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, DefaultServiceName, cfg.ServiceName)
	assert.True(t, cfg.AltScreen)
	assert.False(t, cfg.Debug)
}

func TestFromEnv_ReadsVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBackendURL, "http://api.local:8000")
	t.Setenv(EnvTimeout, "3s")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvLogFile, "/tmp/eventperf.log")
	t.Setenv(EnvOTLPEndpoint, "localhost:4318")
	t.Setenv(EnvOTELService, "analyzer")
	t.Setenv(EnvDisableAltScrn, "1")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://api.local:8000", cfg.BackendURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/eventperf.log", cfg.LogFile)
	assert.Equal(t, "localhost:4318", cfg.OTLPEndpoint)
	assert.Equal(t, "analyzer", cfg.ServiceName)
	assert.False(t, cfg.AltScreen)
}

func TestFromEnv_LegacyBackendURL(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLegacyBackend, "http://legacy:9000")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://legacy:9000", cfg.BackendURL)

	t.Setenv(EnvBackendURL, "http://primary:9000")
	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://primary:9000", cfg.BackendURL, "primary variable wins over legacy")
}

func TestFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad timeout", EnvTimeout, "soon"},
		{"bad debug", EnvDebug, "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := FromEnv()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty backend is same-origin", Config{}, false},
		{"http backend", Config{BackendURL: "http://localhost:8000"}, false},
		{"https backend", Config{BackendURL: "https://api.example.edu/v1"}, false},
		{"missing scheme", Config{BackendURL: "localhost:8000"}, true},
		{"ftp scheme", Config{BackendURL: "ftp://example.edu"}, true},
		{"no host", Config{BackendURL: "http://"}, true},
		{"negative timeout", Config{Timeout: -time.Second}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBackendURL, "http://from-env:8000")

	var out bytes.Buffer
	cfg, err := Load([]string{"-backend-url", "http://from-flag:8000/", "-timeout", "5s", "-debug"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "http://from-flag:8000", cfg.BackendURL, "trailing slash trimmed")
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("VITE_BACKEND_URL=http://dotenv:8000\nEVENTPERF_TIMEOUT=2s\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv(EnvLegacyBackend)
		os.Unsetenv(EnvTimeout)
	})

	cfg, err := Load(nil, &bytes.Buffer{}, envPath, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv:8000", cfg.BackendURL)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLegacyBackend, "http://already-set:8000")
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("VITE_BACKEND_URL=http://dotenv:8000\n"), 0o644))

	cfg, err := Load(nil, &bytes.Buffer{}, envPath)
	require.NoError(t, err)
	assert.Equal(t, "http://already-set:8000", cfg.BackendURL)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"-backend-url", "not a url"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = Load([]string{"extra"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unexpected arguments")

	var out bytes.Buffer
	_, err = Load([]string{"-h"}, &out)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "Usage: eventperf")
}
