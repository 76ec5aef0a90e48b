// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package portal

import (
	"context"

	"github.com/canonical/portal-service/internal/directory"
	"github.com/canonical/portal-service/internal/types"
)

type ServiceInterface interface {
	Resolve(ctx context.Context, cred Credential) (*types.PortalSnapshot, error)
	ResolveBinding(ctx context.Context, cred Credential) (*directory.Binding, error)
	CreateTicket(ctx context.Context, cred Credential, payload *directory.TicketPayload) (*types.Ticket, error)
	UpdateContact(ctx context.Context, cred Credential, payload *directory.ContactPayload) error
}

// DirectoryInterface is the subset of the directory client the portal needs.
type DirectoryInterface interface {
	GetUnitByQRToken(ctx context.Context, token string) (*directory.Binding, error)
	GetUnitByAccessCode(ctx context.Context, code string) (*directory.Binding, error)
	GetTenant(ctx context.Context, unitID string) (*types.Tenant, error)
	GetPendingDue(ctx context.Context, unitID string) (*types.PaymentDue, error)
	ListPaymentHistory(ctx context.Context, unitID string, limit int64) ([]*types.PaymentRecord, error)
	ListTickets(ctx context.Context, unitID string) ([]*types.Ticket, error)
	ListNotices(ctx context.Context, propertyID string) ([]*types.Notice, error)
	CreateTicket(ctx context.Context, unitID string, payload *directory.TicketPayload) (*types.Ticket, error)
	UpdateTenantContact(ctx context.Context, unitID string, payload *directory.ContactPayload) error
}
