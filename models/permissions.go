// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Permissions is the set_permissions object accepted by Paperless-NGX when
// creating or updating an owned object.
type Permissions struct {
	View   PermissionSet `json:"view"`
	Change PermissionSet `json:"change"`
}

// PermissionSet lists the user and group ids granted one permission.
type PermissionSet struct {
	Users  []int64 `json:"users"`
	Groups []int64 `json:"groups"`
}

// Normalize replaces missing id lists with empty ones so that the object is
// always sent as {"users":[],"groups":[]} rather than with nulls.
func (p *Permissions) Normalize() {
	for _, set := range []*PermissionSet{&p.View, &p.Change} {
		if set.Users == nil {
			set.Users = []int64{}
		}
		if set.Groups == nil {
			set.Groups = []int64{}
		}
	}
}
