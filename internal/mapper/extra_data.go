// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-paperless/models"
)

// BuildExtraData resolves the extra_data of a custom field.
//
// For the select data type the option list always wins, whatever extraData
// holds; no option list yields an empty one. For every other type extraData
// is passed through when it is valid JSON, and nil when it is absent.
func BuildExtraData(dataType *models.CustomFieldDataType, options *models.SelectOptionsParam, extraData any) (models.ExtraData, error) {
	if dataType != nil && *dataType == models.DataTypeSelect {
		var values []models.SelectOption
		if options != nil {
			values = options.Values
		}
		return models.SelectExtraData{SelectOptions: values}, nil
	}

	switch v := extraData.(type) {
	case nil:
		return nil, nil
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, nil
		}
		if !json.Valid([]byte(v)) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidExtraData, v)
		}
		return rawExtraData([]byte(v))
	case json.RawMessage:
		if len(v) == 0 {
			return nil, nil
		}
		if !json.Valid(v) {
			return nil, ErrInvalidExtraData
		}
		return rawExtraData(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidExtraData, err)
		}
		return rawExtraData(b)
	}
}

// rawExtraData wraps valid JSON, dropping null and empty arrays so they
// never reach the body.
func rawExtraData(b []byte) (models.ExtraData, error) {
	var decoded any
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtraData, err)
	}
	if isEmpty(decoded) {
		return nil, nil
	}
	return models.RawExtraData(bytes.TrimSpace(b)), nil
}
