// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so application defaults are set in one
// place while every resty method stays available.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client for baseURL with the given request timeout.
// Retries are disabled: a failed request is reported to the caller as is.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
