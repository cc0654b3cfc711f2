// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-paperless/models"
)

// ParsePermissions parses a set_permissions JSON string.
//
// An empty or blank string yields nil and no error: the key is simply not
// sent. Anything that is not a permissions object fails with
// ErrInvalidPermissions.
func ParsePermissions(raw string) (*models.Permissions, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if !strings.HasPrefix(raw, "{") {
		return nil, fmt.Errorf("%w: expected an object", ErrInvalidPermissions)
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()

	var p models.Permissions
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPermissions, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after object", ErrInvalidPermissions)
	}

	p.Normalize()
	return &p, nil
}
