// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mapper turns the raw parameter set of a resource operation into
// the JSON body and query string sent to Paperless-NGX.
//
// Parameters are decoded once into typed structs, validated, and then
// projected onto the static field list of the resource. Every body and query
// passes through the same omission filter: a key is never present with a
// nil value, a nil pointer, an empty string or an empty list. Query values
// additionally drop 0 and false.
//
// Building a payload is a pure function of its input.
package mapper
