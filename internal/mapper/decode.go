// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/MKhiriev/go-paperless/models"
)

// Decode copies a raw parameter set into a typed params struct.
//
// Input is weakly typed: "5" decodes into an int64 and "true" into a bool.
// Lists decode into comma separated strings, JSON objects into JSON strings,
// and an empty string into a nil pointer.
func Decode(params models.Parameters, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			emptyStringToNilHook,
			selectOptionsHook,
			listToStringHook,
			objectToJSONStringHook,
		),
	})
	if err != nil {
		return err
	}

	if err = dec.Decode(map[string]any(params)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

func emptyStringToNilHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.String && to.Kind() == reflect.Ptr {
		if s, ok := data.(string); ok && strings.TrimSpace(s) == "" {
			return nil, nil
		}
	}
	return data, nil
}

var selectOptionsType = reflect.TypeOf(models.SelectOptionsParam{})

// selectOptionsHook accepts the option collection as {"values":[...]}, as a
// bare list of options, or as either of those encoded in a JSON string.
func selectOptionsHook(from, to reflect.Type, data any) (any, error) {
	if to != selectOptionsType && to != reflect.PointerTo(selectOptionsType) {
		return data, nil
	}

	if s, ok := data.(string); ok {
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, fmt.Errorf("select options: %w", err)
		}
		data = decoded
	}

	if v := reflect.ValueOf(data); v.Kind() == reflect.Slice {
		return map[string]any{"values": data}, nil
	}
	return data, nil
}

func listToStringHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String || (from.Kind() != reflect.Slice && from.Kind() != reflect.Array) {
		return data, nil
	}

	v := reflect.ValueOf(data)
	parts := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		parts = append(parts, fmt.Sprint(v.Index(i).Interface()))
	}
	return strings.Join(parts, ","), nil
}

func objectToJSONStringHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String || from.Kind() != reflect.Map {
		return data, nil
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
