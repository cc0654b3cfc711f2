// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service runs Paperless-NGX resource operations and document
// uploads on top of the HTTP adapter.
package service

import (
	"context"

	"github.com/MKhiriev/go-paperless/models"
)

// ResourceService executes one CRUD operation against a Paperless resource.
type ResourceService interface {
	Execute(ctx context.Context, resource models.Resource, op models.Operation, params models.Parameters) (models.OperationResult, error)
}

// UploadService uploads documents one after another, in input order.
//
// With opts.ContinueOnFail a failed item becomes an error result and the run
// goes on. Otherwise the first failure is returned and no results are.
//
// A canceled context stops the run before the next item. Without
// ContinueOnFail nothing is returned; with it the results so far are
// recorded and returned together with the context error.
type UploadService interface {
	Upload(ctx context.Context, items []models.UploadItem, opts models.UploadOptions) ([]models.UploadResult, error)
}

// HistoryService reads back recorded upload results.
type HistoryService interface {
	List(ctx context.Context, filter models.UploadFilter) ([]models.UploadRecord, error)
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
