// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// NormalizeInstanceURL validates a Paperless-NGX instance URL and strips one
// trailing slash. A missing scheme defaults to http.
func NormalizeInstanceURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimSuffix(u.String(), "/"), nil
}

// APIBaseURL returns the REST API root of an instance: {instanceUrl}/api.
func APIBaseURL(instanceURL string) (string, error) {
	base, err := NormalizeInstanceURL(instanceURL)
	if err != nil {
		return "", err
	}
	return base + "/api", nil
}
