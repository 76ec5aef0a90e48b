// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Money is an amount of Kenyan shillings expressed in cents. The gateway is
// charged in whole shillings; Shillings truncates toward zero.
type Money int64

func (m Money) Shillings() int64 {
	return int64(m) / 100
}

type Unit struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	UnitNumber string `json:"unit_number"`
	Bedrooms   int    `json:"bedrooms"`
	RentCents  Money  `json:"rent_cents"`
	Occupied   bool   `json:"occupied"`
}

type Property struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type Tenant struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	ReceiveNotifications bool   `json:"receive_notifications"`
}

// PaymentDue is the single outstanding billing item for a unit, produced by
// the billing directory.
type PaymentDue struct {
	AmountCents Money     `json:"amount_cents"`
	DueDate     time.Time `json:"due_date"`
	Reference   string    `json:"reference"`
}

type PaymentRecord struct {
	ID          string    `json:"id"`
	AmountCents Money     `json:"amount_cents"`
	Method      string    `json:"method"`
	Reference   string    `json:"reference"`
	PaidAt      time.Time `json:"paid_at"`
}

type Ticket struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type Notice struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Scope      string    `json:"scope"`
	PropertyID string    `json:"property_id,omitempty"`
	PostedAt   time.Time `json:"posted_at"`
}

// PortalSnapshot is the read-only aggregate served to a credential bearer.
// It is recomputed on every resolution and never cached.
type PortalSnapshot struct {
	Unit           *Unit            `json:"unit"`
	Property       *Property        `json:"property"`
	Tenant         *Tenant          `json:"tenant"`
	PendingPayment *PaymentDue      `json:"pending_payment,omitempty"`
	PaymentHistory []*PaymentRecord `json:"payment_history"`
	Tickets        []*Ticket        `json:"tickets"`
	Notices        []*Notice        `json:"notices"`
}

// AttemptState is the reconciliation state of a payment attempt. Transitions
// are monotonic; terminal states are absorbing.
type AttemptState string

const (
	AttemptStateCreated        AttemptState = "created"
	AttemptStateInitiating     AttemptState = "initiating"
	AttemptStateAwaitingAction AttemptState = "awaiting_customer_action"
	AttemptStatePolling        AttemptState = "polling"
	AttemptStateCompleted      AttemptState = "completed"
	AttemptStateFailed         AttemptState = "failed"
	AttemptStateTimedOut       AttemptState = "timed_out"
)

// Terminal reports whether no further transition may leave the state.
func (s AttemptState) Terminal() bool {
	switch s {
	case AttemptStateCompleted, AttemptStateFailed, AttemptStateTimedOut:
		return true
	}
	return false
}

// TerminalResult carries the provider outcome of a finished attempt. Code is
// the provider result code verbatim; Message is human readable.
type TerminalResult struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PaymentAttempt is the core's own entity, owned by the reconciler for its
// whole lifetime.
type PaymentAttempt struct {
	ID            string          `db:"id" json:"id"`
	UnitID        string          `db:"unit_id" json:"unit_id"`
	Phone         string          `db:"phone" json:"phone"`
	AmountCents   Money           `db:"amount_cents" json:"amount_cents"`
	Reference     string          `db:"reference" json:"reference"`
	CorrelationID string          `db:"correlation_id" json:"correlation_id,omitempty"`
	State         AttemptState    `db:"state" json:"state"`
	Polls         int             `db:"polls" json:"polls"`
	AttemptedAt   time.Time       `db:"attempted_at" json:"attempted_at"`
	LastPolledAt  *time.Time      `db:"last_polled_at" json:"last_polled_at,omitempty"`
	Result        *TerminalResult `db:"-" json:"result,omitempty"`
}

// RoleCapabilities is the role directory's capability record; this service
// only reads it.
type RoleCapabilities struct {
	RoleID              string `json:"role_id"`
	RoleType            string `json:"role_type"`
	CanManageUsers      bool   `json:"can_manage_users"`
	CanManageBilling    bool   `json:"can_manage_billing"`
	CanManageProperties bool   `json:"can_manage_properties"`
	CanManageTenants    bool   `json:"can_manage_tenants"`
	CanViewReports      bool   `json:"can_view_reports"`
}

type Membership struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	UserID         string    `json:"user_id"`
	RoleID         string    `json:"role_id"`
	CreatedAt      time.Time `json:"created_at"`
}
