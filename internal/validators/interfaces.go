// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded operation parameters and upload items
// before any request is built.
//
// A Validator receives the value and an optional list of field names. With
// no names it applies every rule of the value's type; with names it applies
// only the named rules, which lets callers pick rules per operation (a
// partial update does not require a name, a create does).
package validators

import "context"

// Validator validates an input value, optionally restricted to named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
