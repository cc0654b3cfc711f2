// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the Paperless-NGX REST API.
//
// [PaperlessAdapter] hides the HTTP client from the service layer. The
// resty-based implementation ([NewHTTPPaperlessAdapter]) resolves every path
// against {instanceUrl}/api, authenticates with "Authorization: Token <t>"
// and maps non-2xx responses to the sentinel errors of errors.go, so callers
// can match them with [errors.Is].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-paperless/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/paperless_adapter_mock.go -package=mock

// PaperlessAdapter performs authenticated requests against one Paperless-NGX
// instance. No request is retried.
type PaperlessAdapter interface {
	// Do sends a JSON request and returns the response body verbatim. An
	// empty body (204 No Content) yields a nil message.
	Do(ctx context.Context, req models.APIRequest) (json.RawMessage, error)

	// Download fetches a file. The file name is taken from the
	// Content-Disposition header and the MIME type from Content-Type.
	Download(ctx context.Context, path string) (models.BinaryData, error)

	// PostDocument uploads one document as multipart/form-data to
	// /documents/post_document/ and returns the trimmed text body, the id
	// of the consumption task Paperless started.
	PostDocument(ctx context.Context, form models.DocumentForm) (string, error)
}
