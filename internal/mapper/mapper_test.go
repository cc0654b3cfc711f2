// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-paperless/internal/validators"
	"github.com/MKhiriev/go-paperless/models"
)

func bodyJSON(t *testing.T, body map[string]any) string {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	return string(b)
}

// ── Omission filter ──────────────────────────────────────────────────────────

func TestBuild_BodyNeverCarriesEmptyValues(t *testing.T) {
	params := models.Parameters{
		"name":              "ACME",
		"match":             "",
		"matchingAlgorithm": nil,
		"isInsensitive":     false,
		"color":             "",
		"path":              "",
		"setPermissions":    "   ",
	}

	for _, r := range []models.Resource{models.Correspondent, models.DocumentType, models.Tag, models.StoragePath, models.CustomField} {
		t.Run(string(r), func(t *testing.T) {
			p, err := Build(r, models.OpCreate, params)
			require.NoError(t, err)

			for k, v := range p.Body {
				assert.False(t, isEmpty(v), "key %q carries an empty value", k)
			}
			assert.NotContains(t, p.Body, "match")
			assert.NotContains(t, p.Body, "set_permissions")
			assert.Equal(t, "ACME", p.Body["name"])
		})
	}
}

func TestBuild_BodyKeepsZeroAndFalse(t *testing.T) {
	p, err := Build(models.Tag, models.OpCreate, models.Parameters{
		"name":              "inbox",
		"matchingAlgorithm": 0,
		"isInsensitive":     false,
		"isInboxTag":        "true",
		"owner":             "3",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"inbox","matching_algorithm":0,"is_insensitive":false,"is_inbox_tag":true,"owner":3}`,
		bodyJSON(t, p.Body))
}

func TestBuild_BodyOnlyHasResourceKeys(t *testing.T) {
	params := models.Parameters{"name": "n", "color": "#ffffff", "path": "{created_year}/{title}", "isInboxTag": true}

	p, err := Build(models.Correspondent, models.OpCreate, params)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "n"}, p.Body)

	p, err = Build(models.StoragePath, models.OpCreate, params)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "n", "path": "{created_year}/{title}"}, p.Body)

	p, err = Build(models.Tag, models.OpCreate, params)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "n", "color": "#ffffff", "is_inbox_tag": true}, p.Body)
}

// ── Permissions ──────────────────────────────────────────────────────────────

func TestBuild_Permissions(t *testing.T) {
	t.Run("parsed into the body", func(t *testing.T) {
		p, err := Build(models.Correspondent, models.OpCreate, models.Parameters{
			"name":           "ACME",
			"setPermissions": `{"view":{"users":[1],"groups":[]},"change":{"users":[],"groups":[]}}`,
		})
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"name":"ACME","set_permissions":{"view":{"users":[1],"groups":[]},"change":{"users":[],"groups":[]}}}`,
			bodyJSON(t, p.Body))
	})

	t.Run("empty string is absent", func(t *testing.T) {
		p, err := Build(models.Correspondent, models.OpCreate, models.Parameters{"name": "ACME", "setPermissions": ""})
		require.NoError(t, err)
		assert.NotContains(t, p.Body, "set_permissions")
	})

	t.Run("malformed JSON is attributable", func(t *testing.T) {
		_, err := Build(models.DocumentType, models.OpUpdate, models.Parameters{"id": 4, "name": "Invoice", "setPermissions": "{bad"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPermissions)

		var fe *FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, models.DocumentType, fe.Resource)
		assert.Equal(t, "setPermissions", fe.Field)
	})

	t.Run("object given directly", func(t *testing.T) {
		p, err := Build(models.Tag, models.OpPartialUpdate, models.Parameters{
			"id":             9,
			"setPermissions": map[string]any{"view": map[string]any{"users": []any{2}}},
		})
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"set_permissions":{"view":{"users":[2],"groups":[]},"change":{"users":[],"groups":[]}}}`,
			bodyJSON(t, p.Body))
	})
}

func TestParsePermissions(t *testing.T) {
	p, err := ParsePermissions("")
	require.NoError(t, err)
	assert.Nil(t, p)

	for _, bad := range []string{"{bad", "[1,2]", `"x"`, `{"view":{}}{}`, `{"edit":{}}`} {
		_, err = ParsePermissions(bad)
		assert.ErrorIs(t, err, ErrInvalidPermissions, bad)
	}
}

// ── Custom field extra data ──────────────────────────────────────────────────

func TestBuild_CustomFieldSelectOverridesExtraData(t *testing.T) {
	p, err := Build(models.CustomField, models.OpCreate, models.Parameters{
		"name":          "Priority",
		"dataType":      "select",
		"selectOptions": map[string]any{"values": []any{map[string]any{"label": "High"}, map[string]any{"label": "Low"}}},
		"extraData":     `{"default_currency":"EUR"}`,
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"name":"Priority","data_type":"select","extra_data":{"select_options":[{"label":"High"},{"label":"Low"}]}}`,
		bodyJSON(t, p.Body))
}

func TestBuild_CustomFieldSelectWithoutOptions(t *testing.T) {
	p, err := Build(models.CustomField, models.OpCreate, models.Parameters{
		"name":      "Priority",
		"dataType":  "select",
		"extraData": `{"default_currency":"EUR"}`,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Priority","data_type":"select","extra_data":{"select_options":[]}}`, bodyJSON(t, p.Body))
}

func TestBuild_CustomFieldSelectOptionsAsJSONString(t *testing.T) {
	p, err := Build(models.CustomField, models.OpCreate, models.Parameters{
		"name":          "Priority",
		"dataType":      "select",
		"selectOptions": `[{"label":"A"}]`,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Priority","data_type":"select","extra_data":{"select_options":[{"label":"A"}]}}`, bodyJSON(t, p.Body))
}

func TestBuild_CustomFieldRawExtraData(t *testing.T) {
	p, err := Build(models.CustomField, models.OpCreate, models.Parameters{
		"name":      "Amount",
		"dataType":  "monetary",
		"extraData": `{"default_currency":"EUR"}`,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Amount","data_type":"monetary","extra_data":{"default_currency":"EUR"}}`, bodyJSON(t, p.Body))

	p, err = Build(models.CustomField, models.OpCreate, models.Parameters{"name": "Note", "dataType": "string"})
	require.NoError(t, err)
	assert.NotContains(t, p.Body, "extra_data")

	_, err = Build(models.CustomField, models.OpCreate, models.Parameters{"name": "Amount", "dataType": "monetary", "extraData": "{nope"})
	assert.ErrorIs(t, err, ErrInvalidExtraData)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "extraData", fe.Field)
}

func TestBuild_CustomFieldEmptyExtraDataOmitted(t *testing.T) {
	tests := []struct {
		name      string
		extraData any
	}{
		{"empty array string", "[]"},
		{"empty array string with spaces", "  []  "},
		{"empty slice", []any{}},
		{"null string", "null"},
		{"raw null", json.RawMessage("null")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Build(models.CustomField, models.OpCreate, models.Parameters{
				"name":      "f",
				"dataType":  "string",
				"extraData": tt.extraData,
			})
			require.NoError(t, err)
			assert.JSONEq(t, `{"name":"f","data_type":"string"}`, bodyJSON(t, p.Body))
		})
	}
}

// ── Queries ──────────────────────────────────────────────────────────────────

func TestBuild_QueryDropsFalsyValues(t *testing.T) {
	p, err := Build(models.Tag, models.OpList, models.Parameters{
		"page":         0,
		"pageSize":     "25",
		"sortBy":       "",
		"fullPerms":    false,
		"id":           0,
		"filterIdIn":   []any{1, 2, 3},
		"nameContains": "inv",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"page_size":       "25",
		"id__in":          "1,2,3",
		"name__icontains": "inv",
	}, p.Query)
	assert.Nil(t, p.Body)
}

func TestBuild_QueryFlagsPerResource(t *testing.T) {
	params := models.Parameters{
		"fullPerms":        true,
		"id":               7,
		"nameExact":        "x",
		"pathContains":     "archive",
		"usernameContains": "adm",
		"titleContains":    "bill",
	}

	tests := []struct {
		resource models.Resource
		want     map[string]string
	}{
		{models.Correspondent, map[string]string{"full_perms": "true", "id": "7", "name__iexact": "x"}},
		{models.StoragePath, map[string]string{"full_perms": "true", "id": "7", "name__iexact": "x", "path__icontains": "archive"}},
		{models.CustomField, map[string]string{"id": "7", "name__iexact": "x"}},
		{models.Document, map[string]string{"full_perms": "true", "id": "7", "title__icontains": "bill"}},
		{models.User, map[string]string{"username__icontains": "adm"}},
		{models.Group, map[string]string{"name__iexact": "x"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.resource), func(t *testing.T) {
			p, err := Build(tt.resource, models.OpList, params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Query)
		})
	}
}

func TestBuild_QueryFilterIsConsistentAcrossResources(t *testing.T) {
	params := models.Parameters{"page": 2, "pageSize": 0, "sortBy": "-created", "nameContains": ""}
	var first map[string]string
	for i, r := range models.Resources {
		p, err := Build(r, models.OpList, params)
		require.NoError(t, err)
		if i == 0 {
			first = p.Query
			continue
		}
		assert.Equal(t, first, p.Query, string(r))
	}
	assert.Equal(t, map[string]string{"page": "2", "ordering": "-created"}, first)
}

func TestBuild_DocumentDateFilters(t *testing.T) {
	p, err := Build(models.Document, models.OpList, models.Parameters{
		"createdAfter":    "2024-01-05",
		"createdBefore":   "2024-02-01T10:00:00Z",
		"modifiedAfter":   "2024-03-03 14:30:00",
		"documentTypeId":  5,
		"correspondentId": 0,
		"tagsIn":          []any{"1", "4"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"created__date__gte":  "2024-01-05",
		"created__date__lte":  "2024-02-01",
		"modified__date__gte": "2024-03-03",
		"document_type__id":   "5",
		"tags__id__in":        "1,4",
	}, p.Query)

	_, err = Build(models.Document, models.OpList, models.Parameters{"modifiedBefore": "not a date"})
	assert.ErrorIs(t, err, ErrInvalidDate)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "modifiedBefore", fe.Field)
}

// ── Operations and validation ────────────────────────────────────────────────

func TestBuild_ByIDOperations(t *testing.T) {
	p, err := Build(models.Document, models.OpDownload, models.Parameters{"id": "12"})
	require.NoError(t, err)
	assert.Equal(t, int64(12), p.ID)
	assert.Nil(t, p.Body)
	assert.Nil(t, p.Query)

	p, err = Build(models.Tag, models.OpCreate, models.Parameters{"id": 3, "name": "t"})
	require.NoError(t, err)
	assert.Zero(t, p.ID)
}

func TestMapper_Validation(t *testing.T) {
	m := New(validators.NewParamsValidator())
	ctx := context.Background()

	_, err := m.Build(ctx, models.Tag, models.OpCreate, models.Parameters{"color": "#ffffff"})
	assert.ErrorIs(t, err, validators.ErrInvalidName)

	_, err = m.Build(ctx, models.Tag, models.OpPartialUpdate, models.Parameters{"color": "#ffffff"})
	assert.ErrorIs(t, err, validators.ErrInvalidID)

	p, err := m.Build(ctx, models.Tag, models.OpPartialUpdate, models.Parameters{"id": 2, "color": "#ffffff"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)

	_, err = m.Build(ctx, models.Correspondent, models.OpGetByID, models.Parameters{"id": 0})
	assert.ErrorIs(t, err, validators.ErrInvalidID)

	_, err = m.Build(ctx, models.CustomField, models.OpCreate, models.Parameters{"name": "x", "dataType": "blob"})
	assert.ErrorIs(t, err, validators.ErrInvalidDataType)

	_, err = m.Build(ctx, models.Group, models.OpList, models.Parameters{"page": -1})
	assert.ErrorIs(t, err, validators.ErrInvalidPagination)
}

func TestBuild_DecodeErrors(t *testing.T) {
	_, err := Build(models.Tag, models.OpCreate, models.Parameters{"matchingAlgorithm": "often"})
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = Build(models.Resource("workflow"), models.OpList, nil)
	assert.ErrorIs(t, err, models.ErrUnknownResource)
}

func TestBuild_IsDeterministic(t *testing.T) {
	params := models.Parameters{"name": "n", "matchingAlgorithm": 2, "setPermissions": `{"view":{"users":[1]}}`}
	a, err := Build(models.DocumentType, models.OpCreate, params)
	require.NoError(t, err)
	b, err := Build(models.DocumentType, models.OpCreate, params)
	require.NoError(t, err)
	assert.Equal(t, bodyJSON(t, a.Body), bodyJSON(t, b.Body))
}
