// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/portal-service/internal/types"
)

// StorageInterface is the subset of the attempt store the callback path
// needs.
type StorageInterface interface {
	SettleByCorrelationID(ctx context.Context, correlationID string, state types.AttemptState, result *types.TerminalResult) error
}

type ServiceInterface interface {
	HandlePaymentResult(ctx context.Context, correlationID string, result *types.TerminalResult) error
}
