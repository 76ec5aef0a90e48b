// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"

	"github.com/canonical/portal-service/internal/types"
)

// Binding is the unit/property record a credential resolves to.
type Binding struct {
	Unit     *types.Unit     `json:"unit"`
	Property *types.Property `json:"property"`
	Revoked  bool            `json:"revoked"`
}

type TicketPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

type ContactPayload struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	ReceiveNotifications bool   `json:"receive_notifications"`
}

type ClientInterface interface {
	GetUnitByQRToken(ctx context.Context, token string) (*Binding, error)
	GetUnitByAccessCode(ctx context.Context, code string) (*Binding, error)
	GetTenant(ctx context.Context, unitID string) (*types.Tenant, error)
	GetPendingDue(ctx context.Context, unitID string) (*types.PaymentDue, error)
	ListPaymentHistory(ctx context.Context, unitID string, limit int64) ([]*types.PaymentRecord, error)
	ListTickets(ctx context.Context, unitID string) ([]*types.Ticket, error)
	ListNotices(ctx context.Context, propertyID string) ([]*types.Notice, error)
	CreateTicket(ctx context.Context, unitID string, payload *TicketPayload) (*types.Ticket, error)
	UpdateTenantContact(ctx context.Context, unitID string, payload *ContactPayload) error
	ResendNoticeSMS(ctx context.Context, noticeID string) error
	GetRoleCapabilities(ctx context.Context, roleID string) (*types.RoleCapabilities, error)
	AssignRole(ctx context.Context, organizationID, userID, roleID string) (*types.Membership, error)
	UpdateMembership(ctx context.Context, organizationID, membershipID, roleID string) (*types.Membership, error)
}
