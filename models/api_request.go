// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// APIRequest is a fully resolved request against the Paperless-NGX REST API.
// Path is relative to {instanceUrl}/api and always ends with a slash.
type APIRequest struct {
	Method string
	Path   string
	Body   map[string]any
	Query  map[string]string

	// Binary marks requests whose response is a file rather than JSON.
	Binary bool
}

// OperationResult is the outcome of one resource operation: the JSON body
// returned by Paperless, or the downloaded file for binary operations.
type OperationResult struct {
	JSON   json.RawMessage
	Binary *BinaryData
}

// BinaryProperty is the output property a downloaded file is returned under.
const BinaryProperty = "data"
