// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/MKhiriev/go-paperless/models"
)

var errInvalidParam = errors.New("expected key=value")

// paramFlag collects repeated -p key=value flags. Values stay strings; the
// mapper decodes them weakly.
type paramFlag struct {
	values models.Parameters
}

func (p *paramFlag) String() string {
	if p == nil || len(p.values) == 0 {
		return ""
	}
	parts := make([]string, 0, len(p.values))
	for _, k := range slices.Sorted(maps.Keys(p.values)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, p.values[k]))
	}
	return strings.Join(parts, ",")
}

func (p *paramFlag) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("%w, got %q", errInvalidParam, s)
	}
	if p.values == nil {
		p.values = make(models.Parameters)
	}
	p.values[key] = value
	return nil
}

// loadParams reads a JSON object of parameters from path and lays the
// command-line overrides on top.
func loadParams(path string, overrides models.Parameters) (models.Parameters, error) {
	params := make(models.Parameters)

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read params file: %w", err)
		}
		if err = json.Unmarshal(raw, &params); err != nil {
			return nil, fmt.Errorf("parse params file %s: %w", path, err)
		}
	}

	maps.Copy(params, overrides)
	return params, nil
}
