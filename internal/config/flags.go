// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// Flags holds the configuration flags bound to one command's FlagSet.
type Flags struct {
	instanceURL    string
	token          string
	requestTimeout time.Duration
	journalDSN     string
	logLevel       string
	jsonConfigPath string
}

// RegisterFlags binds the configuration flags to fs:
//
//	-url        Paperless-NGX instance URL
//	-token      API token
//	-timeout    request timeout (e.g. "30s")
//	-journal    upload journal DSN
//	-log-level  log level
//	-config     JSON config file path
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVar(&f.instanceURL, "url", "", "Paperless-NGX instance URL")
	fs.StringVar(&f.token, "token", "", "Paperless-NGX API token")
	fs.DurationVar(&f.requestTimeout, "timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&f.journalDSN, "journal", "", "Upload journal DSN (SQLite path or postgres:// URL)")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.jsonConfigPath, "config", "", "JSON config file path")

	return f
}

func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		Paperless: Paperless{
			InstanceURL:    f.instanceURL,
			Token:          f.token,
			RequestTimeout: f.requestTimeout,
		},
		Journal:      Journal{DSN: f.journalDSN},
		Log:          Log{Level: f.logLevel},
		JSONFilePath: f.jsonConfigPath,
	}
}
