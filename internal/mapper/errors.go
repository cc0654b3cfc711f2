// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-paperless/models"
)

var (
	ErrInvalidParams      = errors.New("invalid parameters")
	ErrInvalidPermissions = errors.New("invalid permissions JSON")
	ErrInvalidExtraData   = errors.New("invalid extra data JSON")
	ErrInvalidDate        = errors.New("invalid date")
)

// FieldError attributes a construction failure to a resource and one of its
// parameters.
type FieldError struct {
	Resource models.Resource
	Field    string
	Err      error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Resource, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
