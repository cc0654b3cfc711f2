// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestRunIDCtxKey(t *testing.T) {
	if RunIDCtxKey.String() != "runID" {
		t.Errorf("expected 'runID', got '%s'", RunIDCtxKey.String())
	}
}

func TestGetRunIDFromContext_Success(t *testing.T) {
	ctx := WithRunID(context.Background(), "0190a3c2-run")

	runID, ok := GetRunIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if runID != "0190a3c2-run" {
		t.Errorf("expected run id '0190a3c2-run', got %q", runID)
	}
}

func TestGetRunIDFromContext_Missing(t *testing.T) {
	runID, ok := GetRunIDFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for missing run id")
	}
	if runID != "" {
		t.Errorf("expected empty run id, got %q", runID)
	}
}

func TestGetRunIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RunIDCtxKey, 42)

	if _, ok := GetRunIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetRunIDFromContext_Empty(t *testing.T) {
	if _, ok := GetRunIDFromContext(WithRunID(context.Background(), "")); ok {
		t.Error("expected ok=false for empty run id")
	}
}
