// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MatchingAlgorithm is the strategy Paperless-NGX uses to auto-assign a
// correspondent, document type, tag or storage path to new documents.
type MatchingAlgorithm int

const (
	MatchNone MatchingAlgorithm = iota
	MatchAny
	MatchAll
	MatchLiteral
	MatchRegex
	MatchFuzzy
	MatchAuto
)

var matchingAlgorithmNames = map[MatchingAlgorithm]string{
	MatchNone:    "none",
	MatchAny:     "any",
	MatchAll:     "all",
	MatchLiteral: "literal",
	MatchRegex:   "regex",
	MatchFuzzy:   "fuzzy",
	MatchAuto:    "auto",
}

// Valid reports whether m is one of the algorithms Paperless knows.
func (m MatchingAlgorithm) Valid() bool {
	return m >= MatchNone && m <= MatchAuto
}

func (m MatchingAlgorithm) String() string {
	if name, ok := matchingAlgorithmNames[m]; ok {
		return name
	}
	return "unknown"
}
