// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package webhooks receives the mobile-money gateway's asynchronous payment
// callbacks. The caller-driven polling loop stays the source of truth for
// the portal; callbacks settle attempts that are still open so a result
// arriving between polls is not lost.
package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/portal-service/internal/logging"
	"github.com/canonical/portal-service/internal/monitoring"
	"github.com/canonical/portal-service/internal/storage"
	"github.com/canonical/portal-service/internal/tracing"
	"github.com/canonical/portal-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandlePaymentResult settles the open attempt holding correlationID.
// Unknown or already-settled correlation ids are absorbed: callbacks may
// arrive late, twice, or after the polling loop already recorded the
// outcome, and none of those should trigger provider-side retries.
func (s *Service) HandlePaymentResult(ctx context.Context, correlationID string, result *types.TerminalResult) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandlePaymentResult")
	defer span.End()

	state := types.AttemptStateFailed
	if result.Code == "0" {
		state = types.AttemptStateCompleted
	}

	err := s.storage.SettleByCorrelationID(ctx, correlationID, state, result)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Infof("no open attempt for correlation %s, callback ignored", correlationID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to settle attempt from callback: %w", err)
	}

	s.logger.Infof("callback settled attempt with correlation %s as %s", correlationID, state)

	return nil
}
