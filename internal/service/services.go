// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-paperless/internal/adapter"
	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/MKhiriev/go-paperless/internal/store"
)

type Services struct {
	ResourceService ResourceService
	UploadService   UploadService
	HistoryService  HistoryService
}

// NewServices wires the services on one adapter. A nil journal disables
// upload history.
func NewServices(paperless adapter.PaperlessAdapter, journal store.UploadJournal, logger *logger.Logger) *Services {
	return &Services{
		ResourceService: NewResourceService(paperless, logger),
		UploadService:   NewUploadService(paperless, journal, logger),
		HistoryService:  NewHistoryService(journal, logger),
	}
}
