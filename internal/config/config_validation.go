// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-paperless/internal/utils"
)

var logLevels = []any{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// validate checks the rules every command shares. Paperless credentials are
// checked by [StructuredConfig.RequirePaperless] since not every command
// talks to the API.
func (cfg *StructuredConfig) validate() error {
	if err := validation.Validate(strings.ToLower(cfg.Log.Level), validation.In(logLevels...)); err != nil {
		return fmt.Errorf("%w: level %q: %v", ErrInvalidLogConfigs, cfg.Log.Level, err)
	}
	if cfg.Paperless.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidPaperlessConfigs)
	}
	return nil
}

// RequirePaperless reports whether the instance URL, token and timeout are
// usable.
func (cfg *StructuredConfig) RequirePaperless() error {
	p := cfg.Paperless
	if _, err := utils.NormalizeInstanceURL(p.InstanceURL); err != nil {
		return fmt.Errorf("%w: instance url: %v", ErrInvalidPaperlessConfigs, err)
	}
	if strings.TrimSpace(p.Token) == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidPaperlessConfigs)
	}
	if p.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidPaperlessConfigs)
	}
	return nil
}

// RequireJournal reports whether a journal DSN is configured.
func (cfg *StructuredConfig) RequireJournal() error {
	if strings.TrimSpace(cfg.Journal.DSN) == "" {
		return ErrInvalidJournalConfigs
	}
	return nil
}
