// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// CustomFieldDataType is the value type of a custom field.
type CustomFieldDataType string

const (
	DataTypeBoolean      CustomFieldDataType = "boolean"
	DataTypeDate         CustomFieldDataType = "date"
	DataTypeDocumentLink CustomFieldDataType = "documentlink"
	DataTypeFloat        CustomFieldDataType = "float"
	DataTypeInteger      CustomFieldDataType = "integer"
	DataTypeMonetary     CustomFieldDataType = "monetary"
	DataTypeSelect       CustomFieldDataType = "select"
	DataTypeString       CustomFieldDataType = "string"
	DataTypeURL          CustomFieldDataType = "url"
)

// CustomFieldDataTypes lists every data type accepted by Paperless-NGX.
var CustomFieldDataTypes = []CustomFieldDataType{
	DataTypeBoolean,
	DataTypeDate,
	DataTypeDocumentLink,
	DataTypeFloat,
	DataTypeInteger,
	DataTypeMonetary,
	DataTypeSelect,
	DataTypeString,
	DataTypeURL,
}

// ExtraData is the extra_data value of a custom field. It is either
// [SelectExtraData] for select fields or [RawExtraData] for every other type.
type ExtraData interface {
	json.Marshaler
	isExtraData()
}

// SelectExtraData carries the option list of a select field.
type SelectExtraData struct {
	SelectOptions []SelectOption
}

func (SelectExtraData) isExtraData() {}

// MarshalJSON renders {"select_options":[...]}, with an empty list rather
// than null when no option was given.
func (s SelectExtraData) MarshalJSON() ([]byte, error) {
	opts := s.SelectOptions
	if opts == nil {
		opts = []SelectOption{}
	}
	return json.Marshal(struct {
		SelectOptions []SelectOption `json:"select_options"`
	}{opts})
}

// RawExtraData is an already validated JSON document passed to Paperless
// verbatim.
type RawExtraData json.RawMessage

func (RawExtraData) isExtraData() {}

func (r RawExtraData) MarshalJSON() ([]byte, error) {
	return json.RawMessage(r).MarshalJSON()
}
