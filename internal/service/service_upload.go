// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-paperless/internal/adapter"
	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/MKhiriev/go-paperless/internal/store"
	"github.com/MKhiriev/go-paperless/internal/utils"
	"github.com/MKhiriev/go-paperless/internal/validators"
	"github.com/MKhiriev/go-paperless/models"
)

type uploadService struct {
	adapter   adapter.PaperlessAdapter
	journal   store.UploadJournal
	validator validators.Validator

	logger *logger.Logger
}

// NewUploadService returns an [UploadService]. journal may be nil, in which
// case results are not recorded.
func NewUploadService(paperless adapter.PaperlessAdapter, journal store.UploadJournal, logger *logger.Logger) UploadService {
	return &uploadService{
		adapter:   paperless,
		journal:   journal,
		validator: validators.NewParamsValidator(),
		logger:    logger,
	}
}

func (s *uploadService) Upload(ctx context.Context, items []models.UploadItem, opts models.UploadOptions) ([]models.UploadResult, error) {
	field := opts.BinaryField
	if field == "" {
		field = models.DefaultBinaryField
	}
	runID := opts.RunID
	if runID == "" {
		runID, _ = utils.GetRunIDFromContext(ctx)
	}
	log := s.logger.WithRunID(runID)

	results := make([]models.UploadResult, 0, len(items))
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Int("item", i).Int("processed", len(results)).Msg("upload run canceled")
			if !opts.ContinueOnFail {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			if rerr := s.record(context.WithoutCancel(ctx), runID, results); rerr != nil {
				log.Err(rerr).Str("func", "*uploadService.Upload").Msg("error recording upload results")
				return results, errors.Join(fmt.Errorf("item %d: %w", i, err), rerr)
			}
			return results, fmt.Errorf("item %d: %w", i, err)
		}

		result, err := s.uploadItem(ctx, i, item, field)
		if err != nil {
			log.Err(err).Str("func", "*uploadService.Upload").Int("item", i).Msg("document upload failed")
			if !opts.ContinueOnFail {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			result = models.UploadResult{Error: err.Error(), PairedItem: models.PairedItem{Item: i}}
		} else {
			log.Info().Int("item", i).Str("document_id", result.DocumentID).Str("filename", result.FileName).Msg("document uploaded")
		}

		results = append(results, result)
		if opts.Observer != nil {
			opts.Observer(result)
		}
	}

	if err := s.record(ctx, runID, results); err != nil {
		log.Err(err).Str("func", "*uploadService.Upload").Msg("error recording upload results")
		return results, err
	}

	return results, nil
}

func (s *uploadService) uploadItem(ctx context.Context, i int, item models.UploadItem, field string) (models.UploadResult, error) {
	if item.SourceErr != nil {
		return models.UploadResult{}, fmt.Errorf("%w: %q: %w", ErrBinaryNotFound, field, item.SourceErr)
	}
	binary, ok := item.Binary[field]
	if !ok {
		return models.UploadResult{}, fmt.Errorf("%w: %q", ErrBinaryNotFound, field)
	}
	if err := s.validator.Validate(ctx, item, validators.FieldUploadIDs); err != nil {
		return models.UploadResult{}, err
	}

	documentID, err := s.adapter.PostDocument(ctx, buildDocumentForm(item, binary))
	if err != nil {
		return models.UploadResult{}, err
	}

	title := item.Title
	if title == "" {
		title = binary.FileName
	}

	return models.UploadResult{
		DocumentID: documentID,
		Message:    models.UploadSucceededMessage,
		FileName:   binary.FileName,
		Title:      title,
		PairedItem: models.PairedItem{Item: i},
	}, nil
}

func (s *uploadService) record(ctx context.Context, runID string, results []models.UploadResult) error {
	if s.journal == nil || len(results) == 0 {
		return nil
	}
	if err := s.journal.Record(ctx, runID, results); err != nil {
		return fmt.Errorf("%w: %w", ErrRecordingJournal, err)
	}
	return nil
}

// buildDocumentForm keeps metadata that is set: non-empty strings and
// non-zero ids.
func buildDocumentForm(item models.UploadItem, binary models.BinaryData) models.DocumentForm {
	fields := make(map[string]string)
	if item.Title != "" {
		fields["title"] = item.Title
	}
	if item.Correspondent != 0 {
		fields["correspondent"] = strconv.FormatInt(item.Correspondent, 10)
	}
	if item.DocumentType != 0 {
		fields["document_type"] = strconv.FormatInt(item.DocumentType, 10)
	}
	if item.StoragePath != 0 {
		fields["storage_path"] = strconv.FormatInt(item.StoragePath, 10)
	}
	if item.ArchiveSerialNumber != "" {
		fields["archive_serial_number"] = item.ArchiveSerialNumber
	}

	return models.DocumentForm{Fields: fields, Document: binary}
}
