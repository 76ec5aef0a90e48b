// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"time"

	"github.com/canonical/portal-service/internal/directory"
	"github.com/canonical/portal-service/internal/mpesa"
	"github.com/canonical/portal-service/internal/types"
	"github.com/canonical/portal-service/pkg/portal"
)

type ServiceInterface interface {
	Submit(ctx context.Context, cred portal.Credential, req *SubmitRequest) (*types.PaymentAttempt, error)
	Poll(ctx context.Context, attemptID string) (*types.PaymentAttempt, error)
	GetAttempt(ctx context.Context, attemptID string) (*types.PaymentAttempt, error)
	ListAttempts(ctx context.Context, unitID string, page, size int64) ([]*types.PaymentAttempt, error)
}

// GatewayInterface is the mobile-money gateway surface the reconciler
// drives. Initiate triggers a real customer prompt and must be called at
// most once per attempt; QueryStatus is safe to repeat.
type GatewayInterface interface {
	Initiate(ctx context.Context, phone string, amountShillings int64, reference string) (string, error)
	QueryStatus(ctx context.Context, correlationID string) (*mpesa.StatusResult, error)
}

type StorageInterface interface {
	CreateAttempt(ctx context.Context, a *types.PaymentAttempt) (*types.PaymentAttempt, error)
	GetAttemptByID(ctx context.Context, id string) (*types.PaymentAttempt, error)
	ListAttemptsByUnitID(ctx context.Context, unitID string, page, size int64) ([]*types.PaymentAttempt, error)
	SetAttemptState(ctx context.Context, id string, state types.AttemptState) error
	RecordCorrelation(ctx context.Context, id, correlationID string, state types.AttemptState) error
	RecordPoll(ctx context.Context, id string, state types.AttemptState, polls int, polledAt time.Time) error
	RecordResult(ctx context.Context, id string, state types.AttemptState, result *types.TerminalResult) error
}

// ResolverInterface maps a portal credential to its unit binding; payments
// are only ever submitted against the unit bound to the presented
// credential.
type ResolverInterface interface {
	ResolveBinding(ctx context.Context, cred portal.Credential) (*directory.Binding, error)
}
