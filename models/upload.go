// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// DefaultBinaryField is the binary field name an upload reads when none is
// configured.
const DefaultBinaryField = "data"

// UploadSucceededMessage is the message attached to every successful upload
// result.
const UploadSucceededMessage = "Document uploaded successfully"

// BinaryData is a file payload: its bytes, the original file name and the
// MIME type it is sent with.
type BinaryData struct {
	FileName string
	MimeType string
	Data     []byte
}

// UploadItem is one input record of a document upload run.
//
// Zero numeric ids and empty strings mean "not provided" and are left out of
// the upload form.
type UploadItem struct {
	// Binary maps a field name to the file stored under it. The upload reads
	// the field named by [UploadOptions.BinaryField].
	Binary map[string]BinaryData

	Title               string
	Correspondent       int64
	DocumentType        int64
	StoragePath         int64
	ArchiveSerialNumber string

	// SourceErr is set when the file for Binary could not be loaded. The
	// item then fails at binary resolution with this error attached.
	SourceErr error
}

// UploadOptions configures one upload run.
type UploadOptions struct {
	// BinaryField names the binary field of each item. Defaults to "data".
	BinaryField string

	// ContinueOnFail turns per-item failures into error results instead of
	// aborting the run.
	ContinueOnFail bool

	// RunID identifies the run in logs and in the upload journal.
	RunID string

	// Observer, if set, is called synchronously with each result as soon as
	// the item resolves.
	Observer func(UploadResult)
}

// PairedItem points a result back at the input item it was produced from.
type PairedItem struct {
	Item int `json:"item"`
}

// UploadResult is the output record of one upload item. A successful result
// has DocumentID set; a tolerated failure has only Error set.
type UploadResult struct {
	DocumentID string     `json:"documentId,omitempty"`
	Message    string     `json:"message,omitempty"`
	FileName   string     `json:"filename,omitempty"`
	Title      string     `json:"title,omitempty"`
	Error      string     `json:"error,omitempty"`
	PairedItem PairedItem `json:"pairedItem"`
}

// Failed reports whether the result records a tolerated failure.
func (r UploadResult) Failed() bool {
	return r.Error != ""
}

// UploadResults is the ordered output of an upload run.
type UploadResults []UploadResult

// Err collects the failures of a run into one error, or returns nil when
// every item succeeded.
func (rs UploadResults) Err() error {
	var result *multierror.Error
	for _, r := range rs {
		if r.Failed() {
			result = multierror.Append(result,
				fmt.Errorf("item %d: %s", r.PairedItem.Item, r.Error))
		}
	}
	return result.ErrorOrNil()
}

// Succeeded returns the number of successful results.
func (rs UploadResults) Succeeded() int {
	n := 0
	for _, r := range rs {
		if !r.Failed() {
			n++
		}
	}
	return n
}

// DocumentForm is the multipart form of one post_document request: optional
// metadata fields and the file sent under the "document" field.
type DocumentForm struct {
	Fields   map[string]string
	Document BinaryData
}
