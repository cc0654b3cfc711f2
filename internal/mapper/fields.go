// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import "github.com/MKhiriev/go-paperless/models"

// FieldSpec is the static description of what a resource sends: the keys of
// its request body and which groups of list filters apply to it.
type FieldSpec struct {
	Body []string

	Permissions       bool
	IDFiltering       bool
	NameFiltering     bool
	PathFiltering     bool
	UsernameFiltering bool
	DocumentFiltering bool
}

var (
	matchedBody = []string{"name", "match", "matching_algorithm", "is_insensitive", "owner", "set_permissions"}

	specs = map[models.Resource]FieldSpec{
		models.Correspondent: {
			Body:          matchedBody,
			Permissions:   true,
			IDFiltering:   true,
			NameFiltering: true,
		},
		models.DocumentType: {
			Body:          matchedBody,
			Permissions:   true,
			IDFiltering:   true,
			NameFiltering: true,
		},
		models.Tag: {
			Body:          []string{"name", "color", "match", "matching_algorithm", "is_insensitive", "is_inbox_tag", "owner", "set_permissions"},
			Permissions:   true,
			IDFiltering:   true,
			NameFiltering: true,
		},
		models.StoragePath: {
			Body:          []string{"name", "path", "match", "matching_algorithm", "is_insensitive", "owner", "set_permissions"},
			Permissions:   true,
			IDFiltering:   true,
			NameFiltering: true,
			PathFiltering: true,
		},
		models.CustomField: {
			Body:          []string{"name", "data_type", "extra_data", "owner", "set_permissions"},
			IDFiltering:   true,
			NameFiltering: true,
		},
		models.Document: {
			Permissions:       true,
			IDFiltering:       true,
			DocumentFiltering: true,
		},
		models.User: {
			UsernameFiltering: true,
		},
		models.Group: {
			NameFiltering: true,
		},
	}
)

// SpecFor returns the field spec of a resource.
func SpecFor(r models.Resource) (FieldSpec, bool) {
	spec, ok := specs[r]
	return spec, ok
}
