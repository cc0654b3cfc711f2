// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-paperless/models"
)

func ptr[T any](v T) *T { return &v }

func TestNewParamsValidator(t *testing.T) {
	require.NotNil(t, NewParamsValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewParamsValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("ObjectParams pointer", func(t *testing.T) {
		p := models.ObjectParams{ID: 1, Name: ptr("Inbox")}
		require.NoError(t, v.Validate(ctx, &p))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, models.ObjectParams{}, FieldDataType)
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestValidate_ObjectParams(t *testing.T) {
	v := NewParamsValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		params models.ObjectParams
		fields []string
		want   error
	}{
		{"valid create", models.ObjectParams{Name: ptr("ACME")}, []string{FieldName, FieldMatchingAlgorithm}, nil},
		{"missing name", models.ObjectParams{}, []string{FieldName}, ErrInvalidName},
		{"empty name", models.ObjectParams{Name: ptr("")}, []string{FieldName}, ErrInvalidName},
		{"zero id", models.ObjectParams{}, []string{FieldID}, ErrInvalidID},
		{"negative id", models.ObjectParams{ID: -3}, []string{FieldID}, ErrInvalidID},
		{"algorithm none is valid", models.ObjectParams{MatchingAlgorithm: ptr(models.MatchNone)}, []string{FieldMatchingAlgorithm}, nil},
		{"algorithm out of range", models.ObjectParams{MatchingAlgorithm: ptr(models.MatchingAlgorithm(7))}, []string{FieldMatchingAlgorithm}, ErrInvalidMatchingAlgorithm},
		{"valid color", models.ObjectParams{Color: ptr("#a6cee3")}, []string{FieldColor}, nil},
		{"bad color", models.ObjectParams{Color: ptr("blue")}, []string{FieldColor}, ErrInvalidColor},
		{"negative owner", models.ObjectParams{Owner: ptr(int64(-1))}, []string{FieldOwner}, ErrInvalidOwner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.params, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_CustomFieldParams(t *testing.T) {
	v := NewParamsValidator()
	ctx := context.Background()

	dt := func(s string) *models.CustomFieldDataType {
		d := models.CustomFieldDataType(s)
		return &d
	}

	assert.NoError(t, v.Validate(ctx, models.CustomFieldParams{Name: ptr("Amount"), DataType: dt("monetary")}, FieldName, FieldDataType))
	assert.ErrorIs(t, v.Validate(ctx, models.CustomFieldParams{Name: ptr("Amount")}, FieldDataType), ErrInvalidDataType)
	assert.ErrorIs(t, v.Validate(ctx, models.CustomFieldParams{DataType: dt("blob")}, FieldDataType), ErrInvalidDataType)
	assert.NoError(t, v.Validate(ctx, models.CustomFieldParams{}, FieldDataTypeIfSet))
	assert.ErrorIs(t, v.Validate(ctx, models.CustomFieldParams{DataType: dt("blob")}, FieldDataTypeIfSet), ErrInvalidDataType)
}

func TestValidate_ListParams(t *testing.T) {
	v := NewParamsValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ListParams{Page: 2, PageSize: 25}))
	assert.ErrorIs(t, v.Validate(ctx, models.ListParams{Page: -1}), ErrInvalidPagination)
	assert.ErrorIs(t, v.Validate(ctx, models.ListParams{PageSize: -10}), ErrInvalidPagination)
}

func TestValidate_UploadItem(t *testing.T) {
	v := NewParamsValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UploadItem{DocumentType: 5}))
	assert.ErrorIs(t, v.Validate(ctx, &models.UploadItem{Correspondent: -2}), ErrInvalidUploadMetadata)
}
