// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Resource identifies a Paperless-NGX entity type exposed by the REST API.
type Resource string

const (
	// Correspondent is a person or organisation documents are exchanged with.
	Correspondent Resource = "correspondent"

	// DocumentType classifies documents (invoice, letter, contract, ...).
	DocumentType Resource = "documentType"

	// Tag is a free-form label that can be attached to documents.
	Tag Resource = "tag"

	// StoragePath defines where the archived file of a document is placed.
	StoragePath Resource = "storagePath"

	// CustomField is a typed user-defined field attached to documents.
	CustomField Resource = "customField"

	// Document is an archived document.
	Document Resource = "document"

	// User is a Paperless-NGX user account. Read-only in this client.
	User Resource = "user"

	// Group is a Paperless-NGX permission group. Read-only in this client.
	Group Resource = "group"
)

// Resources lists every resource in the order they are documented.
var Resources = []Resource{
	Correspondent,
	DocumentType,
	Tag,
	StoragePath,
	CustomField,
	Document,
	User,
	Group,
}

var collections = map[Resource]string{
	Correspondent: "correspondents",
	DocumentType:  "document_types",
	Tag:           "tags",
	StoragePath:   "storage_paths",
	CustomField:   "custom_fields",
	Document:      "documents",
	User:          "users",
	Group:         "groups",
}

// Collection returns the REST collection segment of the resource
// (e.g. "document_types"), or an empty string for an unknown resource.
func (r Resource) Collection() string {
	return collections[r]
}

// Valid reports whether r is a known resource.
func (r Resource) Valid() bool {
	_, ok := collections[r]
	return ok
}

// title returns the resource name with the first letter upper-cased,
// as used in operation aliases like "createDocumentType".
func (r Resource) title() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// ParseResource accepts the camelCase resource name as well as its
// snake_case and collection spellings ("document_type", "document_types").
func ParseResource(s string) (Resource, error) {
	s = strings.TrimSpace(s)
	for _, r := range Resources {
		if strings.EqualFold(s, string(r)) ||
			strings.EqualFold(s, r.Collection()) ||
			strings.EqualFold(strings.ReplaceAll(s, "_", ""), string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResource, s)
}

// Operation is a CRUD-style action against a resource.
type Operation string

const (
	// OpCreate creates a new object (POST on the collection).
	OpCreate Operation = "create"

	// OpList lists objects of a collection with pagination and filters.
	OpList Operation = "get"

	// OpGetByID fetches one object by its id.
	OpGetByID Operation = "getById"

	// OpUpdate replaces an object (PUT).
	OpUpdate Operation = "update"

	// OpPartialUpdate modifies selected fields of an object (PATCH).
	OpPartialUpdate Operation = "partialUpdate"

	// OpDelete removes an object.
	OpDelete Operation = "delete"

	// OpDownload fetches the original file of a document.
	OpDownload Operation = "download"
)

// Operations lists every operation known to the client.
var Operations = []Operation{OpCreate, OpList, OpGetByID, OpUpdate, OpPartialUpdate, OpDelete, OpDownload}

// HasBody reports whether the operation sends a JSON request body.
func (o Operation) HasBody() bool {
	return o == OpCreate || o == OpUpdate || o == OpPartialUpdate
}

// NeedsID reports whether the operation addresses a single object by id.
func (o Operation) NeedsID() bool {
	switch o {
	case OpGetByID, OpUpdate, OpPartialUpdate, OpDelete, OpDownload:
		return true
	default:
		return false
	}
}

// ParseOperation accepts the short operation names ("create", "getById")
// and the resource-qualified aliases ("createCorrespondent",
// "getCorrespondentById", "partialUpdateTag", "downloadDocument").
func ParseOperation(r Resource, s string) (Operation, error) {
	s = strings.TrimSpace(s)
	title := r.title()

	for _, op := range Operations {
		if strings.EqualFold(s, string(op)) {
			return op, nil
		}
	}

	aliases := map[string]Operation{
		"create" + title:         OpCreate,
		"get" + title + "ById":   OpGetByID,
		"update" + title:         OpUpdate,
		"partialUpdate" + title:  OpPartialUpdate,
		"delete" + title:         OpDelete,
		"download" + title:       OpDownload,
		"list":                   OpList,
		"list" + title:           OpList,
		"partial_update":         OpPartialUpdate,
		"get_by_id":              OpGetByID,
	}
	for alias, op := range aliases {
		if strings.EqualFold(s, alias) {
			return op, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}
