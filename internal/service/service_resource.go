// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-paperless/internal/adapter"
	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/MKhiriev/go-paperless/internal/mapper"
	"github.com/MKhiriev/go-paperless/internal/validators"
	"github.com/MKhiriev/go-paperless/models"
)

type resourceService struct {
	adapter adapter.PaperlessAdapter
	mapper  *mapper.Mapper

	logger *logger.Logger
}

func NewResourceService(paperless adapter.PaperlessAdapter, logger *logger.Logger) ResourceService {
	return &resourceService{
		adapter: paperless,
		mapper:  mapper.New(validators.NewParamsValidator()),
		logger:  logger,
	}
}

func (s *resourceService) Execute(ctx context.Context, resource models.Resource, op models.Operation, params models.Parameters) (models.OperationResult, error) {
	log := s.logger.With().Str("resource", string(resource)).Str("operation", string(op)).Logger()

	if !Supports(resource, op) {
		return models.OperationResult{}, fmt.Errorf("%w: %s %s", ErrUnsupportedOperation, op, resource)
	}

	payload, err := s.mapper.Build(ctx, resource, op, params)
	if err != nil {
		log.Err(err).Str("func", "*resourceService.Execute").Msg("invalid parameters")
		return models.OperationResult{}, err
	}

	req, err := Route(resource, op, payload)
	if err != nil {
		return models.OperationResult{}, err
	}
	log.Debug().Str("method", req.Method).Str("path", req.Path).Msg("sending request")

	if req.Binary {
		file, err := s.adapter.Download(ctx, req.Path)
		if err != nil {
			log.Err(err).Str("func", "*resourceService.Execute").Msg("download failed")
			return models.OperationResult{}, err
		}
		return models.OperationResult{Binary: &file}, nil
	}

	body, err := s.adapter.Do(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*resourceService.Execute").Msg("request failed")
		return models.OperationResult{}, err
	}

	return models.OperationResult{JSON: body}, nil
}
