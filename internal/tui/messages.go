// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-paperless/models"

type itemUploadedMsg struct {
	result models.UploadResult
}

type uploadFinishedMsg struct {
	results []models.UploadResult
	err     error
}

type copiedMsg struct {
	count int
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
