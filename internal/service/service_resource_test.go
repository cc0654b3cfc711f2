// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-paperless/internal/adapter"
	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/MKhiriev/go-paperless/internal/mapper"
	"github.com/MKhiriev/go-paperless/internal/mock"
	"github.com/MKhiriev/go-paperless/internal/validators"
	"github.com/MKhiriev/go-paperless/models"
)

func newTestResourceSvc(t *testing.T) (ResourceService, *mock.MockPaperlessAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockPaperlessAdapter(ctrl)
	return NewResourceService(mockAdapter, logger.Nop()), mockAdapter
}

func TestExecute_CreateTag(t *testing.T) {
	svc, mockAdapter := newTestResourceSvc(t)

	var sent models.APIRequest
	mockAdapter.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.APIRequest) (json.RawMessage, error) {
			sent = req
			return json.RawMessage(`{"id":12,"name":"Inbox"}`), nil
		})

	res, err := svc.Execute(context.Background(), models.Tag, models.OpCreate, models.Parameters{
		"name":       "Inbox",
		"isInboxTag": true,
		"color":      "#a6cee3",
		"match":      "",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":12,"name":"Inbox"}`, string(res.JSON))
	assert.Nil(t, res.Binary)
	assert.Equal(t, http.MethodPost, sent.Method)
	assert.Equal(t, "/tags/", sent.Path)
	assert.Equal(t, "Inbox", sent.Body["name"])
	assert.Equal(t, true, sent.Body["is_inbox_tag"])
	assert.NotContains(t, sent.Body, "match")
	assert.Nil(t, sent.Query)
}

func TestExecute_ListDocuments(t *testing.T) {
	svc, mockAdapter := newTestResourceSvc(t)

	var sent models.APIRequest
	mockAdapter.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.APIRequest) (json.RawMessage, error) {
			sent = req
			return json.RawMessage(`{"count":0,"results":[]}`), nil
		})

	_, err := svc.Execute(context.Background(), models.Document, models.OpList, models.Parameters{
		"pageSize":      25,
		"titleContains": "invoice",
		"fullPerms":     false,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, sent.Method)
	assert.Equal(t, "/documents/", sent.Path)
	assert.Equal(t, "25", sent.Query["page_size"])
	assert.Equal(t, "invoice", sent.Query["title__icontains"])
	assert.NotContains(t, sent.Query, "full_perms")
	assert.Nil(t, sent.Body)
}

func TestExecute_PartialUpdateCorrespondent(t *testing.T) {
	svc, mockAdapter := newTestResourceSvc(t)

	var sent models.APIRequest
	mockAdapter.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.APIRequest) (json.RawMessage, error) {
			sent = req
			return json.RawMessage(`{}`), nil
		})

	_, err := svc.Execute(context.Background(), models.Correspondent, models.OpPartialUpdate, models.Parameters{
		"id":            "4",
		"isInsensitive": false,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, sent.Method)
	assert.Equal(t, "/correspondents/4/", sent.Path)
	assert.Equal(t, map[string]any{"is_insensitive": false}, sent.Body)
}

func TestExecute_DeleteGroup_Unsupported(t *testing.T) {
	svc, _ := newTestResourceSvc(t)

	_, err := svc.Execute(context.Background(), models.Group, models.OpDelete, models.Parameters{"id": 1})
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestExecute_GetByIDRequiresPositiveID(t *testing.T) {
	svc, _ := newTestResourceSvc(t)

	_, err := svc.Execute(context.Background(), models.User, models.OpGetByID, models.Parameters{"id": 0})
	assert.ErrorIs(t, err, validators.ErrInvalidID)
}

func TestExecute_MalformedPermissions(t *testing.T) {
	svc, _ := newTestResourceSvc(t)

	_, err := svc.Execute(context.Background(), models.StoragePath, models.OpCreate, models.Parameters{
		"name":           "Archive",
		"path":           "{{ created_year }}/{{ title }}",
		"setPermissions": "{bad",
	})

	var fieldErr *mapper.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, models.StoragePath, fieldErr.Resource)
	assert.Equal(t, "setPermissions", fieldErr.Field)
	assert.ErrorIs(t, err, mapper.ErrInvalidPermissions)
}

func TestExecute_DownloadDocument(t *testing.T) {
	svc, mockAdapter := newTestResourceSvc(t)

	file := models.BinaryData{FileName: "scan.pdf", MimeType: "application/pdf", Data: []byte("%PDF")}
	mockAdapter.EXPECT().Download(gomock.Any(), "/documents/7/download/").Return(file, nil)

	res, err := svc.Execute(context.Background(), models.Document, models.OpDownload, models.Parameters{"id": 7})
	require.NoError(t, err)
	require.NotNil(t, res.Binary)
	assert.Equal(t, file, *res.Binary)
	assert.Nil(t, res.JSON)
}

func TestExecute_AdapterErrorPropagates(t *testing.T) {
	svc, mockAdapter := newTestResourceSvc(t)
	mockAdapter.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrNotFound)

	_, err := svc.Execute(context.Background(), models.Tag, models.OpGetByID, models.Parameters{"id": 404})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestExecute_DownloadErrorPropagates(t *testing.T) {
	svc, mockAdapter := newTestResourceSvc(t)
	mockAdapter.EXPECT().Download(gomock.Any(), gomock.Any()).Return(models.BinaryData{}, adapter.ErrForbidden)

	_, err := svc.Execute(context.Background(), models.Document, models.OpDownload, models.Parameters{"id": 1})
	assert.ErrorIs(t, err, adapter.ErrForbidden)
}
