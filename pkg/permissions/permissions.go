// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package permissions derives semantic permission sets from the coarse
// capability flags carried on role records.
package permissions

import (
	"sort"

	"github.com/canonical/portal-service/internal/types"
)

type Permission string

const (
	ManageUsers      Permission = "manage_users"
	ManagePayments   Permission = "manage_payments"
	ManageProperties Permission = "manage_properties"
	ManageTenants    Permission = "manage_tenants"
	ViewAnalytics    Permission = "view_analytics"
	ManageRoles      Permission = "manage_roles"
	SystemSettings   Permission = "system_settings"
	ViewDashboard    Permission = "view_dashboard"
	ManageTickets    Permission = "manage_tickets"
	ManageNotices    Permission = "manage_notices"
)

// Role types recognised by the role directory.
const (
	RoleTypeOwner = "owner"
	RoleTypeAdmin = "admin"
	RoleTypeGuest = "guest"
)

// PermissionSet is an unordered set of permission tags. Callers must not
// depend on any iteration order.
type PermissionSet map[Permission]struct{}

func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// List returns the permissions sorted lexicographically, for logs and wire
// responses.
func (s PermissionSet) List() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, string(p))
	}
	sort.Strings(out)
	return out
}

func (s PermissionSet) Equal(other PermissionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

// Derive maps a capability record to its permission set. It is pure and
// deterministic; identical inputs always yield equal sets.
func Derive(caps types.RoleCapabilities) PermissionSet {
	set := PermissionSet{}

	if caps.CanManageUsers {
		set[ManageUsers] = struct{}{}
	}
	if caps.CanManageBilling {
		set[ManagePayments] = struct{}{}
	}
	if caps.CanManageProperties {
		set[ManageProperties] = struct{}{}
	}
	if caps.CanManageTenants {
		set[ManageTenants] = struct{}{}
	}
	if caps.CanViewReports {
		set[ViewAnalytics] = struct{}{}
	}

	if caps.RoleType == RoleTypeOwner || caps.RoleType == RoleTypeAdmin {
		set[ManageRoles] = struct{}{}
		set[SystemSettings] = struct{}{}
	}

	if caps.RoleType != RoleTypeGuest {
		set[ViewDashboard] = struct{}{}
		set[ManageTickets] = struct{}{}
		set[ManageNotices] = struct{}{}
	}

	return set
}
