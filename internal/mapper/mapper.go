// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"context"
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/MKhiriev/go-paperless/internal/validators"
	"github.com/MKhiriev/go-paperless/models"
)

// Payload is the request material built for one resource operation.
type Payload struct {
	// ID is the addressed object for single-object operations, 0 otherwise.
	ID int64

	// Body is the JSON body of create and update operations.
	Body map[string]any

	// Query is the query string of list operations.
	Query map[string]string
}

// Mapper builds payloads, validating the decoded parameters first when it
// has a validator.
type Mapper struct {
	validator validators.Validator
}

// New returns a Mapper. A nil validator skips rule validation; decoding and
// JSON checks still apply.
func New(v validators.Validator) *Mapper {
	return &Mapper{validator: v}
}

var plain = New(nil)

// Build builds the payload of an operation without rule validation.
func Build(resource models.Resource, op models.Operation, params models.Parameters) (Payload, error) {
	return plain.Build(context.Background(), resource, op, params)
}

// Build decodes params for the resource, validates them for the operation
// and returns the filtered body and query.
func (m *Mapper) Build(ctx context.Context, resource models.Resource, op models.Operation, params models.Parameters) (Payload, error) {
	spec, ok := SpecFor(resource)
	if !ok {
		return Payload{}, fmt.Errorf("%w: %q", models.ErrUnknownResource, resource)
	}

	switch {
	case op == models.OpList:
		return m.buildList(ctx, resource, spec, params)
	case op.HasBody() && resource == models.CustomField:
		return m.buildCustomField(ctx, op, spec, params)
	case op.HasBody():
		return m.buildObject(ctx, resource, op, spec, params)
	default:
		return m.buildByID(ctx, resource, params)
	}
}

func (m *Mapper) validate(ctx context.Context, v any, fields ...string) error {
	if m.validator == nil {
		return nil
	}
	return m.validator.Validate(ctx, v, fields...)
}

func (m *Mapper) buildObject(ctx context.Context, resource models.Resource, op models.Operation, spec FieldSpec, params models.Parameters) (Payload, error) {
	var p models.ObjectParams
	if err := Decode(params, &p); err != nil {
		return Payload{}, err
	}

	fields := []string{validators.FieldMatchingAlgorithm, validators.FieldColor, validators.FieldOwner}
	if op != models.OpPartialUpdate {
		fields = append(fields, validators.FieldName)
	}
	if op.NeedsID() {
		fields = append(fields, validators.FieldID)
	}
	if err := m.validate(ctx, p, fields...); err != nil {
		return Payload{}, err
	}

	perms, err := ParsePermissions(p.SetPermissions)
	if err != nil {
		return Payload{}, &FieldError{Resource: resource, Field: "setPermissions", Err: err}
	}

	body := filterBody(spec.Body, map[string]any{
		"name":               p.Name,
		"match":              p.Match,
		"matching_algorithm": p.MatchingAlgorithm,
		"is_insensitive":     p.IsInsensitive,
		"is_inbox_tag":       p.IsInboxTag,
		"color":              p.Color,
		"path":               p.Path,
		"owner":              p.Owner,
		"set_permissions":    perms,
	})

	return Payload{ID: idFor(op, p.ID), Body: body}, nil
}

func (m *Mapper) buildCustomField(ctx context.Context, op models.Operation, spec FieldSpec, params models.Parameters) (Payload, error) {
	var p models.CustomFieldParams
	if err := Decode(params, &p); err != nil {
		return Payload{}, err
	}

	fields := []string{validators.FieldOwner}
	if op == models.OpPartialUpdate {
		fields = append(fields, validators.FieldDataTypeIfSet)
	} else {
		fields = append(fields, validators.FieldName, validators.FieldDataType)
	}
	if op.NeedsID() {
		fields = append(fields, validators.FieldID)
	}
	if err := m.validate(ctx, p, fields...); err != nil {
		return Payload{}, err
	}

	extra, err := BuildExtraData(p.DataType, p.SelectOptions, p.ExtraData)
	if err != nil {
		return Payload{}, &FieldError{Resource: models.CustomField, Field: "extraData", Err: err}
	}

	perms, err := ParsePermissions(p.SetPermissions)
	if err != nil {
		return Payload{}, &FieldError{Resource: models.CustomField, Field: "setPermissions", Err: err}
	}

	candidates := map[string]any{
		"name":            p.Name,
		"data_type":       p.DataType,
		"owner":           p.Owner,
		"set_permissions": perms,
	}
	if extra != nil {
		candidates["extra_data"] = extra
	}

	return Payload{ID: idFor(op, p.ID), Body: filterBody(spec.Body, candidates)}, nil
}

func (m *Mapper) buildByID(ctx context.Context, resource models.Resource, params models.Parameters) (Payload, error) {
	var p models.ListParams
	if err := Decode(params, &p); err != nil {
		return Payload{}, err
	}
	if err := m.validate(ctx, p, validators.FieldID); err != nil {
		return Payload{}, err
	}
	return Payload{ID: p.ID}, nil
}

func (m *Mapper) buildList(ctx context.Context, resource models.Resource, spec FieldSpec, params models.Parameters) (Payload, error) {
	var p models.ListParams
	if err := Decode(params, &p); err != nil {
		return Payload{}, err
	}
	if err := m.validate(ctx, p, validators.FieldPagination); err != nil {
		return Payload{}, err
	}

	query, err := BuildQuery(resource, spec, p)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Query: query}, nil
}

// BuildQuery projects list parameters onto the query keys enabled by spec.
// The same falsy filter applies to every resource.
func BuildQuery(resource models.Resource, spec FieldSpec, p models.ListParams) (map[string]string, error) {
	candidates := map[string]any{
		"page_size": p.PageSize,
		"page":      p.Page,
		"ordering":  p.SortBy,
	}

	if spec.Permissions {
		candidates["full_perms"] = p.FullPerms
	}
	if spec.IDFiltering {
		candidates["id"] = p.ID
		candidates["id__in"] = p.FilterIDIn
	}
	if spec.NameFiltering {
		candidates["name__icontains"] = p.NameContains
		candidates["name__iendswith"] = p.NameEndsWith
		candidates["name__iexact"] = p.NameExact
		candidates["name__istartswith"] = p.NameStartsWith
	}
	if spec.PathFiltering {
		candidates["path__icontains"] = p.PathContains
		candidates["path__iendswith"] = p.PathEndsWith
		candidates["path__iexact"] = p.PathExact
		candidates["path__istartswith"] = p.PathStartsWith
	}
	if spec.UsernameFiltering {
		candidates["username__icontains"] = p.UsernameContains
		candidates["username__iendswith"] = p.UsernameEndsWith
		candidates["username__iexact"] = p.UsernameExact
		candidates["username__istartswith"] = p.UsernameStartsWith
	}
	if spec.DocumentFiltering {
		candidates["title__icontains"] = p.TitleContains
		candidates["content__icontains"] = p.ContentContains
		candidates["tags__id__in"] = p.TagsIn
		candidates["document_type__id"] = p.DocumentTypeID
		candidates["correspondent__id"] = p.CorrespondentID
		candidates["storage_path__id"] = p.StoragePathID
		candidates["archive_serial_number__icontains"] = p.ASNContains

		dates := []struct {
			key, field, value string
		}{
			{"created__date__gte", "createdAfter", p.CreatedAfter},
			{"created__date__lte", "createdBefore", p.CreatedBefore},
			{"modified__date__gte", "modifiedAfter", p.ModifiedAfter},
			{"modified__date__lte", "modifiedBefore", p.ModifiedBefore},
		}
		for _, d := range dates {
			day, err := normalizeDate(d.value)
			if err != nil {
				return nil, &FieldError{Resource: resource, Field: d.field, Err: err}
			}
			candidates[d.key] = day
		}
	}

	return filterQuery(candidates), nil
}

// normalizeDate renders any date dateparse understands as YYYY-MM-DD.
func normalizeDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t.Format(time.DateOnly), nil
}

func idFor(op models.Operation, id int64) int64 {
	if op.NeedsID() {
		return id
	}
	return 0
}
