// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-paperless/models"
)

// Field name constants select which rules Validate applies. Passing no
// field runs every rule defined for the value's type.
const (
	// FieldID requires a positive object id.
	FieldID = "id"

	// FieldName requires a non-empty name of at most 128 characters.
	FieldName = "name"

	// FieldMatchingAlgorithm checks the algorithm, when given, is 0..6.
	FieldMatchingAlgorithm = "matching_algorithm"

	// FieldColor checks a tag color, when given, is a #rrggbb hex string.
	FieldColor = "color"

	// FieldDataType requires a known custom field data type.
	FieldDataType = "data_type"

	// FieldDataTypeIfSet checks the data type only when one was given.
	FieldDataTypeIfSet = "data_type_if_set"

	// FieldOwner checks the owner id, when given, is not negative.
	FieldOwner = "owner"

	// FieldPagination checks page and page size are not negative.
	FieldPagination = "pagination"

	// FieldUploadIDs checks upload metadata ids are not negative.
	FieldUploadIDs = "upload_ids"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func dataTypes() []any {
	out := make([]any, 0, len(models.CustomFieldDataTypes))
	for _, t := range models.CustomFieldDataTypes {
		out = append(out, t)
	}
	return out
}

// ParamsValidator validates decoded resource parameters and upload items
// with ozzo-validation rules.
type ParamsValidator struct{}

// NewParamsValidator returns a [Validator] for [models.ObjectParams],
// [models.CustomFieldParams], [models.ListParams] and [models.UploadItem].
func NewParamsValidator() Validator {
	return &ParamsValidator{}
}

func (v *ParamsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ObjectParams:
		return v.validateObjectParams(ctx, value, fields...)
	case *models.ObjectParams:
		return v.validateObjectParams(ctx, *value, fields...)

	case models.CustomFieldParams:
		return v.validateCustomFieldParams(ctx, value, fields...)
	case *models.CustomFieldParams:
		return v.validateCustomFieldParams(ctx, *value, fields...)

	case models.ListParams:
		return v.validateListParams(ctx, value, fields...)
	case *models.ListParams:
		return v.validateListParams(ctx, *value, fields...)

	case models.UploadItem:
		return v.validateUploadItem(ctx, value, fields...)
	case *models.UploadItem:
		return v.validateUploadItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ParamsValidator) validateObjectParams(ctx context.Context, p models.ObjectParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldMatchingAlgorithm, FieldColor, FieldOwner}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			err = validateID(p.ID)
		case FieldName:
			err = validateName(p.Name)
		case FieldMatchingAlgorithm:
			if p.MatchingAlgorithm != nil {
				if e := validation.Validate(*p.MatchingAlgorithm,
					validation.Min(models.MatchNone), validation.Max(models.MatchAuto)); e != nil {
					err = fmt.Errorf("%w: %v", ErrInvalidMatchingAlgorithm, e)
				}
			}
		case FieldColor:
			if e := validation.Validate(p.Color, validation.Match(colorPattern)); e != nil {
				err = fmt.Errorf("%w: %v", ErrInvalidColor, e)
			}
		case FieldOwner:
			err = validateOwner(p.Owner)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ParamsValidator) validateCustomFieldParams(ctx context.Context, p models.CustomFieldParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldDataType, FieldOwner}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			err = validateID(p.ID)
		case FieldName:
			err = validateName(p.Name)
		case FieldDataType:
			if e := validation.Validate(p.DataType, validation.Required, validation.In(dataTypes()...)); e != nil {
				err = fmt.Errorf("%w: %v", ErrInvalidDataType, e)
			}
		case FieldDataTypeIfSet:
			if e := validation.Validate(p.DataType, validation.In(dataTypes()...)); e != nil {
				err = fmt.Errorf("%w: %v", ErrInvalidDataType, e)
			}
		case FieldOwner:
			err = validateOwner(p.Owner)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ParamsValidator) validateListParams(ctx context.Context, p models.ListParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPagination}
	}

	for _, f := range fields {
		switch f {
		case FieldPagination:
			err := validation.ValidateStruct(&p,
				validation.Field(&p.Page, validation.Min(int64(0))),
				validation.Field(&p.PageSize, validation.Min(int64(0))),
				validation.Field(&p.ID, validation.Min(int64(0))),
			)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidPagination, err)
			}
		case FieldID:
			if err := validateID(p.ID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ParamsValidator) validateUploadItem(ctx context.Context, item models.UploadItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUploadIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldUploadIDs:
			err := validation.ValidateStruct(&item,
				validation.Field(&item.Correspondent, validation.Min(int64(0))),
				validation.Field(&item.DocumentType, validation.Min(int64(0))),
				validation.Field(&item.StoragePath, validation.Min(int64(0))),
			)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidUploadMetadata, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateID(id int64) error {
	if err := validation.Validate(id, validation.Required, validation.Min(int64(1))); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return nil
}

func validateName(name *string) error {
	if err := validation.Validate(name, validation.Required, validation.RuneLength(1, 128)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return nil
}

func validateOwner(owner *int64) error {
	if owner == nil {
		return nil
	}
	if err := validation.Validate(*owner, validation.Min(int64(0))); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOwner, err)
	}
	return nil
}
