// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UploadRecord is one upload result persisted in the upload journal.
type UploadRecord struct {
	RunID      string    `json:"run_id"`
	ItemIndex  int       `json:"item_index"`
	FileName   string    `json:"filename"`
	Title      string    `json:"title"`
	DocumentID string    `json:"document_id,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewUploadRecord converts an upload result of run runID into a journal
// record.
func NewUploadRecord(runID string, r UploadResult) UploadRecord {
	return UploadRecord{
		RunID:      runID,
		ItemIndex:  r.PairedItem.Item,
		FileName:   r.FileName,
		Title:      r.Title,
		DocumentID: r.DocumentID,
		Error:      r.Error,
	}
}

// UploadFilter narrows a journal listing.
type UploadFilter struct {
	// RunID limits the listing to one run when non-empty.
	RunID string

	// FailedOnly keeps records that carry an error.
	FailedOnly bool

	// Limit caps the number of records; 0 means no limit.
	Limit uint64
}
