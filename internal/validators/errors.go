// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID                = errors.New("invalid id")
	ErrInvalidName              = errors.New("invalid name")
	ErrInvalidMatchingAlgorithm = errors.New("invalid matching algorithm")
	ErrInvalidColor             = errors.New("invalid color")
	ErrInvalidDataType          = errors.New("invalid custom field data type")
	ErrInvalidOwner             = errors.New("invalid owner")
	ErrInvalidPagination        = errors.New("invalid pagination")
	ErrInvalidUploadMetadata    = errors.New("invalid upload metadata")
)
