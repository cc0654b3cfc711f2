// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the application:
// typed context keys, the HTTP client wrapper, id generation, instance URL
// normalisation and HTTP response writers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so they never collide with
// string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// RunIDCtxKey is the key the id of the current upload run is stored under.
var RunIDCtxKey = contextKey("runID")

// WithRunID returns a copy of ctx carrying runID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDCtxKey, runID)
}

// GetRunIDFromContext returns the run id stored in ctx, if any.
func GetRunIDFromContext(ctx context.Context) (string, bool) {
	runID, ok := ctx.Value(RunIDCtxKey).(string)
	return runID, ok && runID != ""
}
