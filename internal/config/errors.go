// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidPaperlessConfigs indicates a missing or malformed instance
	// URL, an empty token or a non-positive request timeout.
	ErrInvalidPaperlessConfigs = errors.New("invalid paperless configuration")
	// ErrInvalidJournalConfigs indicates the journal is required but no DSN
	// is configured.
	ErrInvalidJournalConfigs = errors.New("invalid journal configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
