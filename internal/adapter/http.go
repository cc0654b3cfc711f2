// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-paperless/internal/config"
	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/MKhiriev/go-paperless/internal/utils"
	"github.com/MKhiriev/go-paperless/models"
)

const (
	postDocumentPath   = "/documents/post_document/"
	documentFormField  = "document"
	defaultContentType = "application/octet-stream"
)

type httpPaperlessAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPPaperlessAdapter constructs the resty implementation of
// [PaperlessAdapter] for the instance in cfg.
//
// Returns an error if the instance URL cannot be parsed or the token is
// empty.
func NewHTTPPaperlessAdapter(cfg config.Paperless, logger *logger.Logger) (PaperlessAdapter, error) {
	baseURL, err := utils.APIBaseURL(cfg.InstanceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid paperless instance url: %w", err)
	}

	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, fmt.Errorf("empty paperless token")
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	return &httpPaperlessAdapter{client: client, token: token, logger: logger}, nil
}

// Do implements [PaperlessAdapter].
func (h *httpPaperlessAdapter) Do(ctx context.Context, req models.APIRequest) (json.RawMessage, error) {
	r := h.authedRequest(ctx)
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}

	h.logger.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("query_params", len(req.Query)).
		Msg("paperless request")

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", req.Method, req.Path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s %s returned non-JSON body", ErrUnexpectedResponse, req.Method, req.Path)
	}

	return json.RawMessage(body), nil
}

// Download implements [PaperlessAdapter].
func (h *httpPaperlessAdapter) Download(ctx context.Context, filePath string) (models.BinaryData, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", "*/*").
		Get(filePath)
	if err != nil {
		return models.BinaryData{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BinaryData{}, err
	}

	mimeType := defaultContentType
	if ct := resp.Header().Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			mimeType = mt
		}
	}

	return models.BinaryData{
		FileName: fileNameFromDisposition(resp.Header().Get("Content-Disposition"), filePath),
		MimeType: mimeType,
		Data:     resp.Body(),
	}, nil
}

// PostDocument implements [PaperlessAdapter].
func (h *httpPaperlessAdapter) PostDocument(ctx context.Context, form models.DocumentForm) (string, error) {
	contentType := form.Document.MimeType
	if contentType == "" {
		contentType = defaultContentType
	}

	r := h.authedRequest(ctx)
	if len(form.Fields) > 0 {
		r.SetMultipartFormData(form.Fields)
	}
	r.SetMultipartField(documentFormField, form.Document.FileName, contentType, bytes.NewReader(form.Document.Data))

	h.logger.Debug().
		Str("filename", form.Document.FileName).
		Int("size", len(form.Document.Data)).
		Msg("posting document")

	resp, err := r.Post(postDocumentPath)
	if err != nil {
		return "", fmt.Errorf("post document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpPaperlessAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Token "+h.token).
		SetHeader("Accept", "application/json")
}

// fileNameFromDisposition returns the filename parameter of a
// Content-Disposition header, or a name derived from the request path.
func fileNameFromDisposition(disposition, requestPath string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := params["filename"]; name != "" {
				return path.Base(name)
			}
		}
	}

	// /documents/{id}/download/ -> document-{id}
	id := path.Base(path.Dir(strings.TrimSuffix(requestPath, "/")))
	return "document-" + id
}
