// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Parameters is a raw parameter set of one resource operation, keyed by
// the camelCase parameter names ("name", "matchingAlgorithm", "pageSize").
//
// Values may be strings, numbers, booleans or nested maps as they come from
// a JSON parameters file or -p key=value flags. They are decoded once into
// [ObjectParams], [CustomFieldParams] or [ListParams] before use.
type Parameters map[string]any

// ObjectParams holds the writable fields of correspondents, document types,
// tags and storage paths, plus the id used by single-object operations.
//
// Optional scalar fields are pointers: nil means "not provided" and is never
// sent. A provided zero value (matching algorithm 0, is_insensitive=false)
// is kept.
type ObjectParams struct {
	// ID addresses the object for get/update/delete. 0 means unset.
	ID int64 `mapstructure:"id"`

	Name              *string            `mapstructure:"name"`
	Match             *string            `mapstructure:"match"`
	MatchingAlgorithm *MatchingAlgorithm `mapstructure:"matchingAlgorithm"`
	IsInsensitive     *bool              `mapstructure:"isInsensitive"`

	// IsInboxTag applies to tags only.
	IsInboxTag *bool `mapstructure:"isInboxTag"`

	// Color applies to tags only, as a hex string like "#a6cee3".
	Color *string `mapstructure:"color"`

	// Path applies to storage paths only.
	Path *string `mapstructure:"path"`

	// Owner is the numeric user id set as owner of the object.
	Owner *int64 `mapstructure:"owner"`

	// SetPermissions is the permissions descriptor as a JSON string.
	// It is parsed only when the trimmed string is non-empty.
	SetPermissions string `mapstructure:"setPermissions"`
}

// SelectOption is one choice of a select-type custom field.
type SelectOption struct {
	Label string `mapstructure:"label" json:"label"`
}

// SelectOptionsParam is the fixed collection wrapper the option list is
// submitted in: {"values": [{"label": "..."}]}.
type SelectOptionsParam struct {
	Values []SelectOption `mapstructure:"values"`
}

// CustomFieldParams holds the writable fields of a custom field.
type CustomFieldParams struct {
	ID       int64                `mapstructure:"id"`
	Name     *string              `mapstructure:"name"`
	DataType *CustomFieldDataType `mapstructure:"dataType"`

	// SelectOptions is used only when DataType is "select".
	SelectOptions *SelectOptionsParam `mapstructure:"selectOptions"`

	// ExtraData is the free-form extra data for non-select data types,
	// either a JSON string or an already decoded JSON value.
	ExtraData any `mapstructure:"extraData"`

	Owner          *int64 `mapstructure:"owner"`
	SetPermissions string `mapstructure:"setPermissions"`
}

// ListParams holds pagination, ordering and filter parameters of list
// operations. Every filter is optional; zero values are not sent.
type ListParams struct {
	ID int64 `mapstructure:"id"`

	// Pagination and ordering.
	Page     int64  `mapstructure:"page"`
	PageSize int64  `mapstructure:"pageSize"`
	SortBy   string `mapstructure:"sortBy"`

	// FullPerms asks Paperless to include full permission objects.
	FullPerms bool `mapstructure:"fullPerms"`

	// FilterIDIn is a comma separated id list. Arrays are joined on decode.
	FilterIDIn string `mapstructure:"filterIdIn"`

	NameContains   string `mapstructure:"nameContains"`
	NameEndsWith   string `mapstructure:"nameEndsWith"`
	NameExact      string `mapstructure:"nameExact"`
	NameStartsWith string `mapstructure:"nameStartsWith"`

	PathContains   string `mapstructure:"pathContains"`
	PathEndsWith   string `mapstructure:"pathEndsWith"`
	PathExact      string `mapstructure:"pathExact"`
	PathStartsWith string `mapstructure:"pathStartsWith"`

	UsernameContains   string `mapstructure:"usernameContains"`
	UsernameEndsWith   string `mapstructure:"usernameEndsWith"`
	UsernameExact      string `mapstructure:"usernameExact"`
	UsernameStartsWith string `mapstructure:"usernameStartsWith"`

	// Document filters.
	TitleContains   string `mapstructure:"titleContains"`
	ContentContains string `mapstructure:"contentContains"`
	TagsIn          string `mapstructure:"tagsIn"`
	DocumentTypeID  int64  `mapstructure:"documentTypeId"`
	CorrespondentID int64  `mapstructure:"correspondentId"`
	StoragePathID   int64  `mapstructure:"storagePathId"`
	ASNContains     string `mapstructure:"asnContains"`

	// Dates accept any format dateparse understands and are sent as
	// YYYY-MM-DD.
	CreatedAfter   string `mapstructure:"createdAfter"`
	CreatedBefore  string `mapstructure:"createdBefore"`
	ModifiedAfter  string `mapstructure:"modifiedAfter"`
	ModifiedBefore string `mapstructure:"modifiedBefore"`
}
