// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// DefaultRequestTimeout bounds every request to Paperless-NGX when no
// timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

// StructuredConfig is the top-level configuration of the paperless CLI.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// Paperless holds the instance URL, API token and request timeout.
	Paperless Paperless `envPrefix:"PAPERLESS_"`

	// Journal holds the upload journal database settings.
	Journal Journal `envPrefix:"JOURNAL_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flag: -config
	JSONFilePath string `env:"CONFIG"`
}

// Paperless holds the credentials and transport settings of the
// Paperless-NGX instance.
type Paperless struct {
	// InstanceURL is the base URL of the instance, without /api
	// (e.g. "https://paperless.example.com").
	// Env: PAPERLESS_INSTANCE_URL
	InstanceURL string `env:"INSTANCE_URL"`

	// Token is the API token sent as "Authorization: Token <token>".
	// Env: PAPERLESS_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds a single HTTP request.
	// Env: PAPERLESS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Journal configures the optional upload journal.
type Journal struct {
	// DSN selects the database: a postgres:// URL for PostgreSQL, anything
	// else is a SQLite file path. Empty disables the journal.
	// Env: JOURNAL_DSN
	DSN string `env:"DSN"`
}

// Log configures the logger.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Paperless: Paperless{RequestTimeout: DefaultRequestTimeout},
		Log:       Log{Level: "info"},
	}
}

// Load merges flags, environment, the JSON file and defaults, and validates
// the result. flags may be nil when no command-line flags are bound.
func Load(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
