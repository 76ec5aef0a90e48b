// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package portal

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/portal-service/internal/directory"
	"github.com/canonical/portal-service/internal/logging"
	"github.com/canonical/portal-service/internal/monitoring"
	"github.com/canonical/portal-service/internal/tracing"
	"github.com/canonical/portal-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	directory    DirectoryInterface
	historyLimit int64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	directory DirectoryInterface,
	historyLimit int64,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		directory:    directory,
		historyLimit: historyLimit,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}

// ResolveBinding maps a credential to its unit/property binding. The lookup
// is the only fatal collaborator call in portal resolution.
func (s *Service) ResolveBinding(ctx context.Context, cred Credential) (*directory.Binding, error) {
	ctx, span := s.tracer.Start(ctx, "portal.Service.ResolveBinding")
	defer span.End()

	if err := cred.Validate(); err != nil {
		return nil, err
	}

	var (
		binding *directory.Binding
		err     error
	)
	if cred.QRToken != "" {
		binding, err = s.directory.GetUnitByQRToken(ctx, cred.QRToken)
	} else {
		binding, err = s.directory.GetUnitByAccessCode(ctx, cred.AccessCode)
	}

	switch {
	case errors.Is(err, directory.ErrNotFound):
		s.logger.Infof("credential rejected (%s): never valid", cred.Kind())
		return nil, ErrCredentialNotFound
	case errors.Is(err, directory.ErrGone):
		s.logger.Infof("credential rejected (%s): was valid, now expired", cred.Kind())
		return nil, ErrCredentialExpired
	case err != nil:
		return nil, fmt.Errorf("failed to resolve credential binding: %w", err)
	}

	if binding.Revoked {
		s.logger.Infof("credential rejected (%s): binding revoked", cred.Kind())
		return nil, ErrCredentialExpired
	}

	return binding, nil
}

// Resolve assembles the read-only portal snapshot for a credential bearer.
// The four downstream sections are fetched concurrently and independently; a
// failing collaborator degrades its section to empty rather than failing the
// whole resolution, so the portal stays usable for payment and ticketing.
func (s *Service) Resolve(ctx context.Context, cred Credential) (*types.PortalSnapshot, error) {
	ctx, span := s.tracer.Start(ctx, "portal.Service.Resolve")
	defer span.End()

	binding, err := s.ResolveBinding(ctx, cred)
	if err != nil {
		return nil, err
	}

	snapshot := &types.PortalSnapshot{
		Unit:           binding.Unit,
		Property:       binding.Property,
		PaymentHistory: []*types.PaymentRecord{},
		Tickets:        []*types.Ticket{},
		Notices:        []*types.Notice{},
	}

	unitID := binding.Unit.ID
	propertyID := binding.Property.ID

	var g errgroup.Group

	g.Go(func() error {
		tenant, err := s.directory.GetTenant(ctx, unitID)
		if err != nil {
			s.degraded("tenant", err)
			return nil
		}
		snapshot.Tenant = tenant
		return nil
	})

	g.Go(func() error {
		due, err := s.directory.GetPendingDue(ctx, unitID)
		switch {
		case errors.Is(err, directory.ErrNotFound):
			// nothing outstanding
		case err != nil:
			s.degraded("billing due", err)
		default:
			snapshot.PendingPayment = due
		}

		history, err := s.directory.ListPaymentHistory(ctx, unitID, s.historyLimit)
		if err != nil {
			s.degraded("payment history", err)
			return nil
		}
		if history != nil {
			snapshot.PaymentHistory = history
		}
		return nil
	})

	g.Go(func() error {
		tickets, err := s.directory.ListTickets(ctx, unitID)
		if err != nil {
			s.degraded("tickets", err)
			return nil
		}
		if tickets != nil {
			snapshot.Tickets = tickets
		}
		return nil
	})

	g.Go(func() error {
		notices, err := s.directory.ListNotices(ctx, propertyID)
		if err != nil {
			s.degraded("notices", err)
			return nil
		}
		if notices != nil {
			snapshot.Notices = notices
		}
		return nil
	})

	// section closures swallow their own errors
	_ = g.Wait()

	return snapshot, nil
}

func (s *Service) CreateTicket(ctx context.Context, cred Credential, payload *directory.TicketPayload) (*types.Ticket, error) {
	ctx, span := s.tracer.Start(ctx, "portal.Service.CreateTicket")
	defer span.End()

	binding, err := s.ResolveBinding(ctx, cred)
	if err != nil {
		return nil, err
	}

	ticket, err := s.directory.CreateTicket(ctx, binding.Unit.ID, payload)
	if err != nil {
		s.logger.Errorf("failed to create ticket for unit %s: %v", binding.Unit.ID, err)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	return ticket, nil
}

func (s *Service) UpdateContact(ctx context.Context, cred Credential, payload *directory.ContactPayload) error {
	ctx, span := s.tracer.Start(ctx, "portal.Service.UpdateContact")
	defer span.End()

	binding, err := s.ResolveBinding(ctx, cred)
	if err != nil {
		return err
	}

	if err := s.directory.UpdateTenantContact(ctx, binding.Unit.ID, payload); err != nil {
		s.logger.Errorf("failed to update contact info for unit %s: %v", binding.Unit.ID, err)
		return fmt.Errorf("failed to update contact info: %w", err)
	}

	return nil
}

func (s *Service) degraded(section string, err error) {
	s.logger.Warnf("portal snapshot section %q degraded: %v", section, err)
}
