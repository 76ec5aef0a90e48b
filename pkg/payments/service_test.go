// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/portal-service/internal/directory"
	"github.com/canonical/portal-service/internal/mpesa"
	"github.com/canonical/portal-service/internal/storage"
	"github.com/canonical/portal-service/internal/types"
	"github.com/canonical/portal-service/pkg/portal"
)

//go:generate mockgen -build_flags=--mod=mod -package payments -destination ./mock_payments.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package payments -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package payments -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package payments -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	testInitiateTimeout = 5 * time.Second
	testQueryTimeout    = 2 * time.Second
)

var testPolicy = PollPolicy{MaxPolls: 3, MaxWait: time.Minute}

type serviceFixture struct {
	storage  *MockStorageInterface
	gateway  *MockGatewayInterface
	resolver *MockResolverInterface
	tracer   *MockTracingInterface
	logger   *MockLoggerInterface
	service  *Service
}

func setupServiceTest(t *testing.T) *serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &serviceFixture{
		storage:  NewMockStorageInterface(ctrl),
		gateway:  NewMockGatewayInterface(ctrl),
		resolver: NewMockResolverInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
	}
	f.service = NewService(
		f.storage, f.gateway, f.resolver,
		testInitiateTimeout, testQueryTimeout, testPolicy,
		f.tracer, NewMockMonitorInterface(ctrl), f.logger,
	)

	f.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
	f.logger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	return f
}

func paymentBinding() *directory.Binding {
	return &directory.Binding{
		Unit:     &types.Unit{ID: "unit-1", PropertyID: "prop-1"},
		Property: &types.Property{ID: "prop-1"},
	}
}

func validSubmit() *SubmitRequest {
	return &SubmitRequest{Phone: "0712345678", AmountCents: 50000, Reference: "RENT-APR"}
}

func createdAttempt(id string) *types.PaymentAttempt {
	return &types.PaymentAttempt{
		ID:          id,
		UnitID:      "unit-1",
		Phone:       "254712345678",
		AmountCents: 50000,
		Reference:   "RENT-APR",
		State:       types.AttemptStateCreated,
		AttemptedAt: time.Now().UTC(),
	}
}

func TestService_Submit(t *testing.T) {
	cred := portal.Credential{QRToken: "qr-abc"}

	t.Run("success", func(t *testing.T) {
		f := setupServiceTest(t)

		f.resolver.EXPECT().ResolveBinding(gomock.Any(), cred).Return(paymentBinding(), nil)
		f.storage.EXPECT().CreateAttempt(gomock.Any(), gomock.Any()).Return(createdAttempt("attempt-1"), nil)
		f.storage.EXPECT().SetAttemptState(gomock.Any(), "attempt-1", types.AttemptStateInitiating).Return(nil)
		f.gateway.EXPECT().Initiate(gomock.Any(), "254712345678", int64(500), "RENT-APR").Return("ws_1", nil)
		f.storage.EXPECT().RecordCorrelation(gomock.Any(), "attempt-1", "ws_1", types.AttemptStateAwaitingAction).Return(nil)

		attempt, err := f.service.Submit(context.Background(), cred, validSubmit())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempt.State != types.AttemptStateAwaitingAction {
			t.Errorf("expected state %s, got %s", types.AttemptStateAwaitingAction, attempt.State)
		}
		if attempt.CorrelationID != "ws_1" {
			t.Errorf("expected correlation id ws_1, got %s", attempt.CorrelationID)
		}
	})

	t.Run("invalid phone rejected before any call", func(t *testing.T) {
		f := setupServiceTest(t)

		req := validSubmit()
		req.Phone = "12345"
		_, err := f.service.Submit(context.Background(), cred, req)

		if !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("expected ErrInvalidPhone, got %v", err)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		f := setupServiceTest(t)

		req := validSubmit()
		req.AmountCents = 0
		_, err := f.service.Submit(context.Background(), cred, req)

		if !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("credential rejected", func(t *testing.T) {
		f := setupServiceTest(t)

		f.resolver.EXPECT().ResolveBinding(gomock.Any(), cred).Return(nil, portal.ErrCredentialNotFound)

		_, err := f.service.Submit(context.Background(), cred, validSubmit())

		if !errors.Is(err, portal.ErrCredentialNotFound) {
			t.Errorf("expected credential error, got %v", err)
		}
	})

	t.Run("provider rejects initiation", func(t *testing.T) {
		f := setupServiceTest(t)

		f.resolver.EXPECT().ResolveBinding(gomock.Any(), cred).Return(paymentBinding(), nil)
		f.storage.EXPECT().CreateAttempt(gomock.Any(), gomock.Any()).Return(createdAttempt("attempt-1"), nil)
		f.storage.EXPECT().SetAttemptState(gomock.Any(), "attempt-1", types.AttemptStateInitiating).Return(nil)
		f.gateway.EXPECT().Initiate(gomock.Any(), "254712345678", int64(500), "RENT-APR").
			Return("", &mpesa.Error{Kind: mpesa.ErrorKindBusiness, Code: "400.002.02", Message: "Invalid PhoneNumber"})
		f.storage.EXPECT().RecordResult(gomock.Any(), "attempt-1", types.AttemptStateFailed,
			&types.TerminalResult{Code: "400.002.02", Message: "Invalid PhoneNumber"}).Return(nil)

		attempt, err := f.service.Submit(context.Background(), cred, validSubmit())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempt.State != types.AttemptStateFailed {
			t.Errorf("expected state %s, got %s", types.AttemptStateFailed, attempt.State)
		}
		if attempt.Result == nil || attempt.Result.Message != "Invalid PhoneNumber" {
			t.Errorf("expected provider message surfaced, got %+v", attempt.Result)
		}
	})

	t.Run("ambiguous initiation stays initiating", func(t *testing.T) {
		f := setupServiceTest(t)

		f.resolver.EXPECT().ResolveBinding(gomock.Any(), cred).Return(paymentBinding(), nil)
		f.storage.EXPECT().CreateAttempt(gomock.Any(), gomock.Any()).Return(createdAttempt("attempt-1"), nil)
		f.storage.EXPECT().SetAttemptState(gomock.Any(), "attempt-1", types.AttemptStateInitiating).Return(nil)
		f.gateway.EXPECT().Initiate(gomock.Any(), "254712345678", int64(500), "RENT-APR").
			Return("", &mpesa.Error{Kind: mpesa.ErrorKindNetwork, Message: "request timed out"})

		attempt, err := f.service.Submit(context.Background(), cred, validSubmit())

		if !errors.Is(err, ErrAmbiguousInitiation) {
			t.Errorf("expected ErrAmbiguousInitiation, got %v", err)
		}
		if attempt == nil || attempt.State != types.AttemptStateInitiating {
			t.Errorf("expected attempt left in initiating, got %+v", attempt)
		}
	})
}

func TestService_Poll(t *testing.T) {
	awaiting := func() *types.PaymentAttempt {
		a := createdAttempt("attempt-1")
		a.State = types.AttemptStateAwaitingAction
		a.CorrelationID = "ws_1"
		return a
	}

	t.Run("pending leaves state at polling", func(t *testing.T) {
		f := setupServiceTest(t)

		f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(awaiting(), nil)
		f.storage.EXPECT().RecordPoll(gomock.Any(), "attempt-1", types.AttemptStatePolling, 1, gomock.Any()).Return(nil)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), "ws_1").Return(&mpesa.StatusResult{Pending: true}, nil)

		attempt, err := f.service.Poll(context.Background(), "attempt-1")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempt.State != types.AttemptStatePolling || attempt.Polls != 1 {
			t.Errorf("expected polling with 1 poll, got %s/%d", attempt.State, attempt.Polls)
		}
	})

	t.Run("result code 0 completes", func(t *testing.T) {
		f := setupServiceTest(t)

		f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(awaiting(), nil)
		f.storage.EXPECT().RecordPoll(gomock.Any(), "attempt-1", types.AttemptStatePolling, 1, gomock.Any()).Return(nil)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), "ws_1").
			Return(&mpesa.StatusResult{ResultCode: "0", ResultDesc: "The service request is processed successfully."}, nil)
		f.storage.EXPECT().RecordResult(gomock.Any(), "attempt-1", types.AttemptStateCompleted, gomock.Any()).Return(nil)

		attempt, err := f.service.Poll(context.Background(), "attempt-1")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempt.State != types.AttemptStateCompleted {
			t.Errorf("expected completed, got %s", attempt.State)
		}
	})

	t.Run("non-zero code fails with code surfaced verbatim", func(t *testing.T) {
		f := setupServiceTest(t)

		f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(awaiting(), nil)
		f.storage.EXPECT().RecordPoll(gomock.Any(), "attempt-1", types.AttemptStatePolling, 1, gomock.Any()).Return(nil)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), "ws_1").
			Return(&mpesa.StatusResult{ResultCode: "1032", ResultDesc: "Request cancelled by user"}, nil)
		f.storage.EXPECT().RecordResult(gomock.Any(), "attempt-1", types.AttemptStateFailed,
			&types.TerminalResult{Code: "1032", Message: "Request cancelled by user"}).Return(nil)

		attempt, err := f.service.Poll(context.Background(), "attempt-1")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempt.State != types.AttemptStateFailed {
			t.Errorf("expected failed, got %s", attempt.State)
		}
		if attempt.Result == nil || attempt.Result.Code != "1032" {
			t.Errorf("expected code 1032 surfaced, got %+v", attempt.Result)
		}
	})

	t.Run("network error is absorbed and retryable", func(t *testing.T) {
		f := setupServiceTest(t)

		f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(awaiting(), nil)
		f.storage.EXPECT().RecordPoll(gomock.Any(), "attempt-1", types.AttemptStatePolling, 1, gomock.Any()).Return(nil)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), "ws_1").
			Return(nil, &mpesa.Error{Kind: mpesa.ErrorKindNetwork, Message: "connection reset"})

		attempt, err := f.service.Poll(context.Background(), "attempt-1")

		if err != nil {
			t.Fatalf("expected error to be absorbed, got %v", err)
		}
		if attempt.State != types.AttemptStatePolling {
			t.Errorf("expected polling, got %s", attempt.State)
		}
	})

	t.Run("callback settling before the poll write wins", func(t *testing.T) {
		f := setupServiceTest(t)

		settled := awaiting()
		settled.State = types.AttemptStateCompleted
		settled.Result = &types.TerminalResult{Code: "0", Message: "The service request is processed successfully."}

		// The callback commits between the poll's read and its write; the
		// guarded update refuses the transition and the stored outcome is
		// returned. No gateway query is expected.
		gomock.InOrder(
			f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(awaiting(), nil),
			f.storage.EXPECT().RecordPoll(gomock.Any(), "attempt-1", types.AttemptStatePolling, 1, gomock.Any()).Return(storage.ErrAlreadySettled),
			f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(settled, nil),
		)

		attempt, err := f.service.Poll(context.Background(), "attempt-1")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempt.State != types.AttemptStateCompleted {
			t.Errorf("expected the callback's completed outcome, got %s", attempt.State)
		}
		if attempt.Result == nil || attempt.Result.Code != "0" {
			t.Errorf("expected the stored result to stand, got %+v", attempt.Result)
		}
	})

	t.Run("callback settlement is not overwritten by the poll's own result", func(t *testing.T) {
		f := setupServiceTest(t)

		settled := awaiting()
		settled.State = types.AttemptStateCompleted
		settled.Result = &types.TerminalResult{Code: "0", Message: "The service request is processed successfully."}

		gomock.InOrder(
			f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(awaiting(), nil),
			f.storage.EXPECT().RecordPoll(gomock.Any(), "attempt-1", types.AttemptStatePolling, 1, gomock.Any()).Return(nil),
			f.storage.EXPECT().RecordResult(gomock.Any(), "attempt-1", types.AttemptStateFailed, gomock.Any()).Return(storage.ErrAlreadySettled),
			f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(settled, nil),
		)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), "ws_1").
			Return(&mpesa.StatusResult{ResultCode: "1032", ResultDesc: "Request cancelled by user"}, nil)

		attempt, err := f.service.Poll(context.Background(), "attempt-1")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempt.State != types.AttemptStateCompleted {
			t.Errorf("expected the callback's completed outcome to stand, got %s", attempt.State)
		}
	})

	t.Run("terminal attempt returned unchanged without gateway call", func(t *testing.T) {
		f := setupServiceTest(t)

		done := awaiting()
		done.State = types.AttemptStateCompleted
		f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(done, nil)

		attempt, err := f.service.Poll(context.Background(), "attempt-1")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempt.State != types.AttemptStateCompleted {
			t.Errorf("expected completed, got %s", attempt.State)
		}
	})

	t.Run("poll budget exhausted times out", func(t *testing.T) {
		f := setupServiceTest(t)

		exhausted := awaiting()
		exhausted.State = types.AttemptStatePolling
		exhausted.Polls = testPolicy.MaxPolls
		f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(exhausted, nil)
		f.storage.EXPECT().RecordResult(gomock.Any(), "attempt-1", types.AttemptStateTimedOut, gomock.Any()).Return(nil)

		attempt, err := f.service.Poll(context.Background(), "attempt-1")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempt.State != types.AttemptStateTimedOut {
			t.Errorf("expected timed_out, got %s", attempt.State)
		}
		if attempt.Result == nil || attempt.Result.Message == "" {
			t.Error("expected human-readable timeout reason")
		}
	})

	t.Run("max wait exceeded times out", func(t *testing.T) {
		f := setupServiceTest(t)

		stale := awaiting()
		stale.State = types.AttemptStatePolling
		stale.AttemptedAt = time.Now().UTC().Add(-2 * testPolicy.MaxWait)
		f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(stale, nil)
		f.storage.EXPECT().RecordResult(gomock.Any(), "attempt-1", types.AttemptStateTimedOut, gomock.Any()).Return(nil)

		attempt, err := f.service.Poll(context.Background(), "attempt-1")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempt.State != types.AttemptStateTimedOut {
			t.Errorf("expected timed_out, got %s", attempt.State)
		}
	})

	t.Run("attempt stuck in initiating is ambiguous", func(t *testing.T) {
		f := setupServiceTest(t)

		stuck := createdAttempt("attempt-1")
		stuck.State = types.AttemptStateInitiating
		f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(stuck, nil)

		_, err := f.service.Poll(context.Background(), "attempt-1")

		if !errors.Is(err, ErrAmbiguousInitiation) {
			t.Errorf("expected ErrAmbiguousInitiation, got %v", err)
		}
	})

	t.Run("unknown attempt", func(t *testing.T) {
		f := setupServiceTest(t)

		f.storage.EXPECT().GetAttemptByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

		_, err := f.service.Poll(context.Background(), "missing")

		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

// A second operation on the same attempt while one is in flight must be
// rejected, never queued; attempts with different ids stay independent.
func TestService_Poll_ConflictWhileInFlight(t *testing.T) {
	f := setupServiceTest(t)

	entered := make(chan struct{})
	release := make(chan struct{})

	inflight := createdAttempt("attempt-1")
	inflight.State = types.AttemptStateAwaitingAction
	inflight.CorrelationID = "ws_1"
	f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(inflight, nil)
	f.storage.EXPECT().RecordPoll(gomock.Any(), "attempt-1", types.AttemptStatePolling, 1, gomock.Any()).Return(nil)
	f.gateway.EXPECT().QueryStatus(gomock.Any(), "ws_1").
		DoAndReturn(func(ctx context.Context, correlationID string) (*mpesa.StatusResult, error) {
			close(entered)
			<-release
			return &mpesa.StatusResult{Pending: true}, nil
		})

	firstDone := make(chan error, 1)
	go func() {
		_, err := f.service.Poll(context.Background(), "attempt-1")
		firstDone <- err
	}()

	<-entered
	_, err := f.service.Poll(context.Background(), "attempt-1")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict for concurrent poll, got %v", err)
	}
	close(release)

	if err := <-firstDone; err != nil {
		t.Errorf("unexpected error from first poll: %v", err)
	}
}

// Scenario: a submission is initiated, the customer cancels the prompt, the
// failure code is surfaced verbatim, and a fresh attempt with the same
// inputs proceeds independently.
func TestService_SubmitAndPoll_EndToEnd(t *testing.T) {
	f := setupServiceTest(t)
	cred := portal.Credential{QRToken: "qr-abc"}

	f.resolver.EXPECT().ResolveBinding(gomock.Any(), cred).Return(paymentBinding(), nil).Times(2)
	f.storage.EXPECT().CreateAttempt(gomock.Any(), gomock.Any()).Return(createdAttempt("attempt-1"), nil)
	f.storage.EXPECT().SetAttemptState(gomock.Any(), "attempt-1", types.AttemptStateInitiating).Return(nil)
	f.gateway.EXPECT().Initiate(gomock.Any(), "254712345678", int64(500), "RENT-APR").Return("ws_1", nil)
	f.storage.EXPECT().RecordCorrelation(gomock.Any(), "attempt-1", "ws_1", types.AttemptStateAwaitingAction).Return(nil)

	first, err := f.service.Submit(context.Background(), cred, validSubmit())
	if err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	if first.State != types.AttemptStateAwaitingAction {
		t.Fatalf("expected awaiting_customer_action, got %s", first.State)
	}

	polled := createdAttempt("attempt-1")
	polled.State = types.AttemptStateAwaitingAction
	polled.CorrelationID = "ws_1"
	f.storage.EXPECT().GetAttemptByID(gomock.Any(), "attempt-1").Return(polled, nil)
	f.storage.EXPECT().RecordPoll(gomock.Any(), "attempt-1", types.AttemptStatePolling, 1, gomock.Any()).Return(nil)
	f.gateway.EXPECT().QueryStatus(gomock.Any(), "ws_1").
		Return(&mpesa.StatusResult{ResultCode: "1032", ResultDesc: "Request cancelled by user"}, nil)
	f.storage.EXPECT().RecordResult(gomock.Any(), "attempt-1", types.AttemptStateFailed,
		&types.TerminalResult{Code: "1032", Message: "Request cancelled by user"}).Return(nil)

	failed, err := f.service.Poll(context.Background(), "attempt-1")
	if err != nil {
		t.Fatalf("unexpected poll error: %v", err)
	}
	if failed.State != types.AttemptStateFailed || failed.Result.Code != "1032" {
		t.Fatalf("expected failed with code 1032, got %s/%+v", failed.State, failed.Result)
	}

	// a fresh attempt with the same inputs is permitted and independent
	f.storage.EXPECT().CreateAttempt(gomock.Any(), gomock.Any()).Return(createdAttempt("attempt-2"), nil)
	f.storage.EXPECT().SetAttemptState(gomock.Any(), "attempt-2", types.AttemptStateInitiating).Return(nil)
	f.gateway.EXPECT().Initiate(gomock.Any(), "254712345678", int64(500), "RENT-APR").Return("ws_2", nil)
	f.storage.EXPECT().RecordCorrelation(gomock.Any(), "attempt-2", "ws_2", types.AttemptStateAwaitingAction).Return(nil)

	second, err := f.service.Submit(context.Background(), cred, validSubmit())
	if err != nil {
		t.Fatalf("unexpected second submit error: %v", err)
	}
	if second.ID != "attempt-2" || second.CorrelationID != "ws_2" {
		t.Errorf("expected independent second attempt, got %+v", second)
	}
}
