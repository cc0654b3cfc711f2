// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists upload results in an SQL journal. SQLite and
// PostgreSQL are supported; the dialect is chosen from the DSN.
package store

import (
	"context"

	"github.com/MKhiriev/go-paperless/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upload_journal_mock.go -package=mock

// UploadJournal records upload results and lists them back.
type UploadJournal interface {
	// Record stores every result of run runID in one transaction.
	Record(ctx context.Context, runID string, results []models.UploadResult) error
	// List returns journal records matching filter, newest run first.
	List(ctx context.Context, filter models.UploadFilter) ([]models.UploadRecord, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// attempting again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
