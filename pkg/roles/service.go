// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/portal-service/internal/logging"
	"github.com/canonical/portal-service/internal/monitoring"
	"github.com/canonical/portal-service/internal/tracing"
	"github.com/canonical/portal-service/internal/types"
	"github.com/canonical/portal-service/pkg/permissions"
)

// ErrMissingOrganization rejects role writes that do not carry an explicit
// organization scope. There is no ambient current-organization fallback.
var ErrMissingOrganization = errors.New("organization id must be supplied explicitly")

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	directory DirectoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(directory DirectoryInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		directory: directory,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// GetPermissions fetches the role's capability record and derives its
// permission set. The derivation is pure; the same record always yields the
// same set.
func (s *Service) GetPermissions(ctx context.Context, roleID string) (permissions.PermissionSet, *types.RoleCapabilities, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.GetPermissions")
	defer span.End()

	caps, err := s.directory.GetRoleCapabilities(ctx, roleID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch role capabilities: %w", err)
	}

	return permissions.Derive(*caps), caps, nil
}

func (s *Service) AssignRole(ctx context.Context, organizationID, userID, roleID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.AssignRole")
	defer span.End()

	if organizationID == "" {
		return nil, ErrMissingOrganization
	}

	membership, err := s.directory.AssignRole(ctx, organizationID, userID, roleID)
	if err != nil {
		s.logger.Errorf("failed to assign role %s to user %s in org %s: %v", roleID, userID, organizationID, err)
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	s.logger.Infof("assigned role %s to user %s in org %s", roleID, userID, organizationID)

	return membership, nil
}

func (s *Service) UpdateMembership(ctx context.Context, organizationID, membershipID, roleID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.UpdateMembership")
	defer span.End()

	if organizationID == "" {
		return nil, ErrMissingOrganization
	}

	membership, err := s.directory.UpdateMembership(ctx, organizationID, membershipID, roleID)
	if err != nil {
		s.logger.Errorf("failed to update membership %s in org %s: %v", membershipID, organizationID, err)
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}

	return membership, nil
}
