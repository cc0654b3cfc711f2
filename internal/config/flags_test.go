// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlags_AllFlags(t *testing.T) {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	f := RegisterFlags(fs)

	err := fs.Parse([]string{
		"-url", "http://localhost:8000",
		"-token", "t0k3n",
		"-timeout", "1m",
		"-journal", "uploads.db",
		"-log-level", "debug",
		"-config", "cfg.json",
		"scan.pdf",
	})
	require.NoError(t, err)

	cfg := f.config()
	assert.Equal(t, "http://localhost:8000", cfg.Paperless.InstanceURL)
	assert.Equal(t, "t0k3n", cfg.Paperless.Token)
	assert.Equal(t, time.Minute, cfg.Paperless.RequestTimeout)
	assert.Equal(t, "uploads.db", cfg.Journal.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, []string{"scan.pdf"}, fs.Args())
}

func TestRegisterFlags_Unset(t *testing.T) {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, &StructuredConfig{}, f.config())
}
