// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/portal-service/internal/logging"
	"github.com/canonical/portal-service/internal/monitoring"
	"github.com/canonical/portal-service/internal/mpesa"
	"github.com/canonical/portal-service/internal/storage"
	"github.com/canonical/portal-service/internal/tracing"
	"github.com/canonical/portal-service/internal/types"
	"github.com/canonical/portal-service/pkg/portal"
)

var _ ServiceInterface = (*Service)(nil)

type SubmitRequest struct {
	Phone       string      `json:"phone" validate:"required,msisdn_ke"`
	AmountCents types.Money `json:"amount_cents" validate:"required,gt=0"`
	Reference   string      `json:"reference" validate:"required,max=64"`
}

// PollPolicy bounds the reconciliation loop for one attempt. Exhausting
// either limit yields a timed_out terminal state; the attempt is never
// resumed afterwards.
type PollPolicy struct {
	MaxPolls int
	MaxWait  time.Duration
}

type Service struct {
	storage  StorageInterface
	gateway  GatewayInterface
	resolver ResolverInterface

	validate *validator.Validate
	inflight *inflightRegistry

	initiateTimeout time.Duration
	queryTimeout    time.Duration
	policy          PollPolicy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	gateway GatewayInterface,
	resolver ResolverInterface,
	initiateTimeout, queryTimeout time.Duration,
	policy PollPolicy,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("msisdn_ke", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &Service{
		storage:  storage,
		gateway:  gateway,
		resolver: resolver,

		validate: validate,
		inflight: newInflightRegistry(),

		initiateTimeout: initiateTimeout,
		queryTimeout:    queryTimeout,
		policy:          policy,

		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Submit creates a payment attempt for the unit bound to cred and drives it
// through initiation. Initiate is called at most once per attempt: a
// successful call is the idempotency boundary, and an ambiguous outcome
// leaves the attempt parked in the initiating state rather than retrying.
func (s *Service) Submit(ctx context.Context, cred portal.Credential, req *SubmitRequest) (*types.PaymentAttempt, error) {
	ctx, span := s.tracer.Start(ctx, "payments.Service.Submit")
	defer span.End()

	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, validationErrs)
		}
		return nil, err
	}

	binding, err := s.resolver.ResolveBinding(ctx, cred)
	if err != nil {
		return nil, err
	}

	attempt, err := s.storage.CreateAttempt(ctx, &types.PaymentAttempt{
		UnitID:      binding.Unit.ID,
		Phone:       phone,
		AmountCents: req.AmountCents,
		Reference:   req.Reference,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment attempt: %w", err)
	}

	// The id was just minted, so the acquire itself cannot conflict; it
	// registers the attempt so a concurrent Poll on it gets ErrConflict
	// until initiation finishes.
	if !s.inflight.acquire(attempt.ID) {
		return nil, ErrConflict
	}
	defer s.inflight.release(attempt.ID)

	if err := s.storage.SetAttemptState(ctx, attempt.ID, types.AttemptStateInitiating); err != nil {
		return nil, fmt.Errorf("failed to mark attempt initiating: %w", err)
	}
	attempt.State = types.AttemptStateInitiating

	initiateCtx, cancel := context.WithTimeout(ctx, s.initiateTimeout)
	defer cancel()

	correlationID, err := s.gateway.Initiate(initiateCtx, phone, req.AmountCents.Shillings(), req.Reference)
	if err != nil {
		return s.settleInitiateFailure(ctx, attempt, err)
	}

	if err := s.storage.RecordCorrelation(ctx, attempt.ID, correlationID, types.AttemptStateAwaitingAction); err != nil {
		return nil, fmt.Errorf("failed to record correlation id: %w", err)
	}
	attempt.CorrelationID = correlationID
	attempt.State = types.AttemptStateAwaitingAction

	s.logger.Infof("payment attempt %s awaiting customer action (correlation %s)", attempt.ID, correlationID)

	return attempt, nil
}

// settleInitiateFailure distinguishes a provider rejection (terminal
// failed, message surfaced verbatim) from an unknown outcome. The latter is
// never a confirmed failure: the customer may still receive a prompt, so
// the attempt stays in initiating and the caller must confirm explicitly
// before paying again.
func (s *Service) settleInitiateFailure(ctx context.Context, attempt *types.PaymentAttempt, initiateErr error) (*types.PaymentAttempt, error) {
	var gwErr *mpesa.Error
	if errors.As(initiateErr, &gwErr) && gwErr.Kind == mpesa.ErrorKindBusiness {
		result := &types.TerminalResult{Code: gwErr.Code, Message: gwErr.Message}
		if result.Message == "" {
			result.Message = "payment initiation rejected by the provider"
		}

		if err := s.storage.RecordResult(ctx, attempt.ID, types.AttemptStateFailed, result); err != nil {
			return nil, fmt.Errorf("failed to record initiation rejection: %w", err)
		}
		attempt.State = types.AttemptStateFailed
		attempt.Result = result

		s.logger.Infof("payment attempt %s rejected at initiation: %s", attempt.ID, result.Message)
		return attempt, nil
	}

	s.logger.Warnf("payment attempt %s initiation outcome unknown: %v", attempt.ID, initiateErr)
	return attempt, fmt.Errorf("%w: %v", ErrAmbiguousInitiation, initiateErr)
}

// Poll queries the gateway for the attempt's outcome and applies at most
// one forward transition. A provider result code of "0" is the sole
// completion criterion; any other code is terminal failed with the
// provider's code and message surfaced verbatim; a pending response leaves
// the state unchanged. Gateway network errors are absorbed, the poll still
// counts against the budget and the caller may poll again.
func (s *Service) Poll(ctx context.Context, attemptID string) (*types.PaymentAttempt, error) {
	ctx, span := s.tracer.Start(ctx, "payments.Service.Poll")
	defer span.End()

	if !s.inflight.acquire(attemptID) {
		return nil, ErrConflict
	}
	defer s.inflight.release(attemptID)

	attempt, err := s.getAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	if attempt.State.Terminal() {
		return attempt, nil
	}

	switch attempt.State {
	case types.AttemptStateAwaitingAction, types.AttemptStatePolling:
	case types.AttemptStateInitiating:
		return attempt, ErrAmbiguousInitiation
	default:
		return attempt, fmt.Errorf("%w: state %s", ErrNotPollable, attempt.State)
	}

	now := time.Now().UTC()
	if attempt.Polls >= s.policy.MaxPolls || now.Sub(attempt.AttemptedAt) > s.policy.MaxWait {
		return s.settle(ctx, attempt, types.AttemptStateTimedOut, &types.TerminalResult{
			Message: "no confirmation received within the polling window",
		})
	}

	polls := attempt.Polls + 1
	if err := s.storage.RecordPoll(ctx, attempt.ID, types.AttemptStatePolling, polls, now); err != nil {
		if errors.Is(err, storage.ErrAlreadySettled) {
			return s.reloadSettled(ctx, attempt.ID)
		}
		return nil, fmt.Errorf("failed to record poll: %w", err)
	}
	attempt.State = types.AttemptStatePolling
	attempt.Polls = polls
	attempt.LastPolledAt = &now

	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	status, err := s.gateway.QueryStatus(queryCtx, attempt.CorrelationID)
	if err != nil {
		var gwErr *mpesa.Error
		if errors.As(err, &gwErr) && gwErr.Kind == mpesa.ErrorKindBusiness {
			result := &types.TerminalResult{Code: gwErr.Code, Message: gwErr.Message}
			return s.settle(ctx, attempt, types.AttemptStateFailed, result)
		}

		// retryable within the remaining budget
		s.logger.Warnf("status query for attempt %s failed: %v", attempt.ID, err)
		return attempt, nil
	}

	switch {
	case status.Pending:
		return attempt, nil
	case status.ResultCode == "0":
		result := &types.TerminalResult{Code: status.ResultCode, Message: status.ResultDesc}
		if result.Message == "" {
			result.Message = "payment completed"
		}
		return s.settle(ctx, attempt, types.AttemptStateCompleted, result)
	default:
		result := &types.TerminalResult{Code: status.ResultCode, Message: status.ResultDesc}
		if result.Message == "" {
			result.Message = fmt.Sprintf("payment not completed (code %s)", status.ResultCode)
		}
		return s.settle(ctx, attempt, types.AttemptStateFailed, result)
	}
}

func (s *Service) GetAttempt(ctx context.Context, attemptID string) (*types.PaymentAttempt, error) {
	ctx, span := s.tracer.Start(ctx, "payments.Service.GetAttempt")
	defer span.End()

	return s.getAttempt(ctx, attemptID)
}

func (s *Service) ListAttempts(ctx context.Context, unitID string, page, size int64) ([]*types.PaymentAttempt, error) {
	ctx, span := s.tracer.Start(ctx, "payments.Service.ListAttempts")
	defer span.End()

	attempts, err := s.storage.ListAttemptsByUnitID(ctx, unitID, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment attempts: %w", err)
	}

	return attempts, nil
}

func (s *Service) getAttempt(ctx context.Context, attemptID string) (*types.PaymentAttempt, error) {
	attempt, err := s.storage.GetAttemptByID(ctx, attemptID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load payment attempt: %w", err)
	}

	return attempt, nil
}

func (s *Service) settle(ctx context.Context, attempt *types.PaymentAttempt, state types.AttemptState, result *types.TerminalResult) (*types.PaymentAttempt, error) {
	if err := s.storage.RecordResult(ctx, attempt.ID, state, result); err != nil {
		if errors.Is(err, storage.ErrAlreadySettled) {
			return s.reloadSettled(ctx, attempt.ID)
		}
		return nil, fmt.Errorf("failed to record terminal result: %w", err)
	}
	attempt.State = state
	attempt.Result = result

	s.logger.Infof("payment attempt %s settled as %s: %s", attempt.ID, state, result.Message)

	return attempt, nil
}

// reloadSettled returns the stored attempt after a write lost the race
// against a concurrent settlement, typically the gateway callback. The
// stored outcome stands; the poll's own transition is discarded.
func (s *Service) reloadSettled(ctx context.Context, attemptID string) (*types.PaymentAttempt, error) {
	attempt, err := s.getAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("payment attempt %s was settled concurrently as %s", attemptID, attempt.State)

	return attempt, nil
}
