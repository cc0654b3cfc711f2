// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/MKhiriev/go-paperless/internal/store"
	"github.com/MKhiriev/go-paperless/models"
)

type historyService struct {
	journal store.UploadJournal

	logger *logger.Logger
}

func NewHistoryService(journal store.UploadJournal, logger *logger.Logger) HistoryService {
	return &historyService{journal: journal, logger: logger}
}

func (s *historyService) List(ctx context.Context, filter models.UploadFilter) ([]models.UploadRecord, error) {
	if s.journal == nil {
		return nil, ErrJournalDisabled
	}

	records, err := s.journal.List(ctx, filter)
	if err != nil {
		s.logger.Err(err).Str("func", "*historyService.List").Msg("error listing upload journal")
		return nil, err
	}
	return records, nil
}
