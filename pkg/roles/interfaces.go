// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"

	"github.com/canonical/portal-service/internal/types"
	"github.com/canonical/portal-service/pkg/permissions"
)

type ServiceInterface interface {
	GetPermissions(ctx context.Context, roleID string) (permissions.PermissionSet, *types.RoleCapabilities, error)
	AssignRole(ctx context.Context, organizationID, userID, roleID string) (*types.Membership, error)
	UpdateMembership(ctx context.Context, organizationID, membershipID, roleID string) (*types.Membership, error)
}

// DirectoryInterface is the role/membership directory subset this package
// consumes. Capability records are read-only here; the two writes are the
// sole role-assignment paths.
type DirectoryInterface interface {
	GetRoleCapabilities(ctx context.Context, roleID string) (*types.RoleCapabilities, error)
	AssignRole(ctx context.Context, organizationID, userID, roleID string) (*types.Membership, error)
	UpdateMembership(ctx context.Context, organizationID, membershipID, roleID string) (*types.Membership, error)
}
