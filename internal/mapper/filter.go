// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"reflect"
	"strconv"
)

// isEmpty reports whether a value is left out of every body and query:
// nil, a nil pointer/map/interface, "" or an empty slice/array.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isEmpty(rv.Elem().Interface())
	case reflect.Map:
		return rv.IsNil()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Slice, reflect.Array:
		return rv.Len() == 0
	default:
		return false
	}
}

// isFalsy extends isEmpty with 0 and false, which query strings never carry.
func isFalsy(v any) bool {
	if isEmpty(v) {
		return true
	}

	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	default:
		return false
	}
}

// filterBody keeps the listed keys of candidates that are not empty.
// Pointers are dereferenced so the body holds plain values.
func filterBody(keys []string, candidates map[string]any) map[string]any {
	body := make(map[string]any, len(keys))
	for _, k := range keys {
		v, ok := candidates[k]
		if !ok || isEmpty(v) {
			continue
		}
		body[k] = deref(v)
	}
	return body
}

// filterQuery stringifies the candidates that are not falsy.
func filterQuery(candidates map[string]any) map[string]string {
	query := make(map[string]string, len(candidates))
	for k, v := range candidates {
		if isFalsy(v) {
			continue
		}
		query[k] = stringify(deref(v))
	}
	return query
}

func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	return rv.Interface()
}

func stringify(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	default:
		return ""
	}
}
