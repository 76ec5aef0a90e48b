// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/portal-service/internal/types"
)

type StorageInterface interface {
	CreateAttempt(ctx context.Context, a *types.PaymentAttempt) (*types.PaymentAttempt, error)
	GetAttemptByID(ctx context.Context, id string) (*types.PaymentAttempt, error)
	ListAttemptsByUnitID(ctx context.Context, unitID string, page, size int64) ([]*types.PaymentAttempt, error)
	SetAttemptState(ctx context.Context, id string, state types.AttemptState) error
	RecordCorrelation(ctx context.Context, id, correlationID string, state types.AttemptState) error
	RecordPoll(ctx context.Context, id string, state types.AttemptState, polls int, polledAt time.Time) error
	RecordResult(ctx context.Context, id string, state types.AttemptState, result *types.TerminalResult) error
	SettleByCorrelationID(ctx context.Context, correlationID string, state types.AttemptState, result *types.TerminalResult) error
}
