// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the paperless command-line application.
//
// Each subcommand loads configuration from flags, environment and an
// optional JSON file, wires the Paperless adapter, the optional upload
// journal and the services, then prints its result as JSON on stdout.
// Logs go to stderr.
package client
