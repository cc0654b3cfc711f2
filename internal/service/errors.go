// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrUnsupportedOperation = errors.New("operation is not supported for resource")
	ErrBinaryNotFound       = errors.New("binary field not found on item")

	ErrJournalDisabled  = errors.New("upload journal is not configured")
	ErrRecordingJournal = errors.New("error recording upload results")

	ErrVersionIsNotSpecified = errors.New("build version is not specified")
)
