// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/MKhiriev/go-paperless/internal/mapper"
	"github.com/MKhiriev/go-paperless/models"
)

var (
	crudOperations = []models.Operation{
		models.OpCreate,
		models.OpList,
		models.OpGetByID,
		models.OpUpdate,
		models.OpPartialUpdate,
		models.OpDelete,
	}
	readOperations = []models.Operation{models.OpList, models.OpGetByID}

	supportedOperations = map[models.Resource][]models.Operation{
		models.Correspondent: crudOperations,
		models.DocumentType:  crudOperations,
		models.Tag:           crudOperations,
		models.StoragePath:   crudOperations,
		models.CustomField:   crudOperations,
		models.Document:      {models.OpList, models.OpGetByID, models.OpDelete, models.OpDownload},
		models.User:          readOperations,
		models.Group:         readOperations,
	}

	operationMethods = map[models.Operation]string{
		models.OpCreate:        http.MethodPost,
		models.OpList:          http.MethodGet,
		models.OpGetByID:       http.MethodGet,
		models.OpUpdate:        http.MethodPut,
		models.OpPartialUpdate: http.MethodPatch,
		models.OpDelete:        http.MethodDelete,
		models.OpDownload:      http.MethodGet,
	}
)

// SupportedOperations lists the operations available for a resource.
func SupportedOperations(r models.Resource) []models.Operation {
	return slices.Clone(supportedOperations[r])
}

// Supports reports whether op can be run against r.
func Supports(r models.Resource, op models.Operation) bool {
	return slices.Contains(supportedOperations[r], op)
}

// Route resolves an operation and its payload into a request relative to
// {instanceUrl}/api.
func Route(r models.Resource, op models.Operation, payload mapper.Payload) (models.APIRequest, error) {
	if !Supports(r, op) {
		return models.APIRequest{}, fmt.Errorf("%w: %s %s", ErrUnsupportedOperation, op, r)
	}

	req := models.APIRequest{Method: operationMethods[op]}
	collection := "/" + r.Collection() + "/"

	switch {
	case op == models.OpList:
		req.Path = collection
		req.Query = payload.Query
	case op == models.OpCreate:
		req.Path = collection
		req.Body = payload.Body
	case op == models.OpDownload:
		req.Path = fmt.Sprintf("%s%d/download/", collection, payload.ID)
		req.Binary = true
	default:
		req.Path = fmt.Sprintf("%s%d/", collection, payload.ID)
		if op.HasBody() {
			req.Body = payload.Body
		}
	}

	return req, nil
}
