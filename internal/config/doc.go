// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads and validates the CLI configuration.
//
// Values come from several sources. For every field the first source that
// sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path from -config or CONFIG)
//  4. Built-in defaults
//
// Sources are merged with mergo. [Load] is the entry point.
package config
