// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package notices exposes the staff-side notice operations this service
// fronts for the directory. Delivery itself belongs to the SMS provider
// behind the directory; this surface only re-triggers it.
package notices

import (
	"context"
	"fmt"

	"github.com/canonical/portal-service/internal/logging"
	"github.com/canonical/portal-service/internal/monitoring"
	"github.com/canonical/portal-service/internal/tracing"
)

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

func (s *Service) ResendSMS(ctx context.Context, noticeID string) error {
	ctx, span := s.tracer.Start(ctx, "notices.Service.ResendSMS")
	defer span.End()

	if err := s.directory.ResendNoticeSMS(ctx, noticeID); err != nil {
		s.logger.Errorf("failed to resend SMS for notice %s: %v", noticeID, err)
		return fmt.Errorf("failed to resend notice SMS: %w", err)
	}

	s.logger.Infof("requested SMS resend for notice %s", noticeID)

	return nil
}
