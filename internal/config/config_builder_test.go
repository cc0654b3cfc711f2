// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func parsedFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CONFIG", "PAPERLESS_INSTANCE_URL", "PAPERLESS_TOKEN", "PAPERLESS_REQUEST_TIMEOUT", "JOURNAL_DSN", "LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier config is
// not overwritten by later ones, while unset fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Paperless: Paperless{Token: "from-flags"}},
		&StructuredConfig{Paperless: Paperless{Token: "from-env", InstanceURL: "http://env:8000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.Paperless.Token)
	assert.Equal(t, "http://env:8000", cfg.Paperless.InstanceURL)
}

func TestBuild_InvalidLogLevel(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Log: Log{Level: "loud"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultRequestTimeout, cfg.Paperless.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Journal.DSN)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)

	path := writeTempJSONConfig(t, `{
		"paperless": {"instance_url": "http://json:8000", "token": "json-token", "request_timeout": "5s"},
		"journal": {"dsn": "json.db"},
		"log": {"level": "warn"}
	}`)

	t.Setenv("CONFIG", path)
	t.Setenv("PAPERLESS_TOKEN", "env-token")
	t.Setenv("JOURNAL_DSN", "env.db")

	cfg, err := Load(parsedFlags(t, "-journal", "flag.db", "-timeout", "12s"))
	require.NoError(t, err)

	assert.Equal(t, "http://json:8000", cfg.Paperless.InstanceURL)
	assert.Equal(t, "env-token", cfg.Paperless.Token)
	assert.Equal(t, 12*time.Second, cfg.Paperless.RequestTimeout)
	assert.Equal(t, "flag.db", cfg.Journal.DSN)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ConfigFlagOverridesEnvPath(t *testing.T) {
	clearEnv(t)

	envPath := writeTempJSONConfig(t, `{"paperless": {"token": "env-file"}}`)
	flagPath := writeTempJSONConfig(t, `{"paperless": {"token": "flag-file"}}`)
	t.Setenv("CONFIG", envPath)

	cfg, err := Load(parsedFlags(t, "-config", flagPath))
	require.NoError(t, err)
	assert.Equal(t, "flag-file", cfg.Paperless.Token)
}

func TestLoad_MissingJSONFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(parsedFlags(t, "-config", filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestLoad_BadEnvDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAPERLESS_REQUEST_TIMEOUT", "soon")

	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// ── Require* ──────────────────────────────────────────────────────────────────

func TestRequirePaperless(t *testing.T) {
	valid := Paperless{InstanceURL: "https://docs.example.com/", Token: "abc", RequestTimeout: time.Second}

	tests := []struct {
		name    string
		mutate  func(p *Paperless)
		wantErr bool
	}{
		{"valid", func(p *Paperless) {}, false},
		{"missing url", func(p *Paperless) { p.InstanceURL = "" }, true},
		{"bad scheme", func(p *Paperless) { p.InstanceURL = "ftp://docs" }, true},
		{"blank token", func(p *Paperless) { p.Token = "  " }, true},
		{"zero timeout", func(p *Paperless) { p.RequestTimeout = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			cfg := &StructuredConfig{Paperless: p}

			err := cfg.RequirePaperless()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPaperlessConfigs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequireJournal(t *testing.T) {
	assert.ErrorIs(t, (&StructuredConfig{}).RequireJournal(), ErrInvalidJournalConfigs)
	assert.NoError(t, (&StructuredConfig{Journal: Journal{DSN: "uploads.db"}}).RequireJournal())
}
