// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package portal

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/portal-service/internal/directory"
	"github.com/canonical/portal-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package portal -destination ./mock_portal.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package portal -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package portal -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package portal -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const testHistoryLimit = int64(24)

func testBinding() *directory.Binding {
	return &directory.Binding{
		Unit:     &types.Unit{ID: "unit-1", PropertyID: "prop-1", UnitNumber: "A3", RentCents: 1500000},
		Property: &types.Property{ID: "prop-1", Name: "Sunrise Court", City: "Nairobi"},
	}
}

func TestService_ResolveBinding(t *testing.T) {
	networkErr := directory.ErrUnavailable

	testCases := []struct {
		name        string
		cred        Credential
		setupMocks  func(*MockDirectoryInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "qr token success",
			cred: Credential{QRToken: "qr-abc"},
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetUnitByQRToken(gomock.Any(), "qr-abc").Return(testBinding(), nil)
			},
			expectedErr: nil,
		},
		{
			name: "access code success",
			cred: Credential{AccessCode: "ACC123"},
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetUnitByAccessCode(gomock.Any(), "ACC123").Return(testBinding(), nil)
			},
			expectedErr: nil,
		},
		{
			name:        "missing credential",
			cred:        Credential{},
			setupMocks:  func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {},
			expectedErr: ErrMissingCredential,
		},
		{
			name: "credential never valid",
			cred: Credential{QRToken: "qr-bogus"},
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetUnitByQRToken(gomock.Any(), "qr-bogus").Return(nil, directory.ErrNotFound)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedErr: ErrCredentialNotFound,
		},
		{
			name: "credential expired",
			cred: Credential{AccessCode: "OLD123"},
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetUnitByAccessCode(gomock.Any(), "OLD123").Return(nil, directory.ErrGone)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedErr: ErrCredentialExpired,
		},
		{
			name: "binding revoked",
			cred: Credential{QRToken: "qr-revoked"},
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				binding := testBinding()
				binding.Revoked = true
				mockDirectory.EXPECT().GetUnitByQRToken(gomock.Any(), "qr-revoked").Return(binding, nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedErr: ErrCredentialExpired,
		},
		{
			name: "directory unavailable",
			cred: Credential{QRToken: "qr-abc"},
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetUnitByQRToken(gomock.Any(), "qr-abc").Return(nil, networkErr)
			},
			expectedErr: directory.ErrUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockDirectory, testHistoryLimit, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "portal.Service.ResolveBinding").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockDirectory, mockLogger)

			binding, err := s.ResolveBinding(context.Background(), tc.cred)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if binding == nil || binding.Unit.ID != "unit-1" {
				t.Errorf("unexpected binding: %+v", binding)
			}
		})
	}
}

func TestService_Resolve(t *testing.T) {
	tenant := &types.Tenant{ID: "tenant-1", Name: "Jane Tenant", Phone: "254712345678"}
	due := &types.PaymentDue{AmountCents: 1500000, Reference: "ws_1", DueDate: time.Now()}
	history := []*types.PaymentRecord{{ID: "pay-1", AmountCents: 1500000, Method: "mpesa"}}
	tickets := []*types.Ticket{{ID: "ticket-1", Title: "Leaking tap"}}
	notices := []*types.Notice{{ID: "notice-1", Title: "Water outage"}}
	collaboratorErr := errors.New("upstream error")

	testCases := []struct {
		name       string
		setupMocks func(*MockDirectoryInterface, *MockLoggerInterface)
		assert     func(*testing.T, *types.PortalSnapshot)
	}{
		{
			name: "all sections populated",
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetTenant(gomock.Any(), "unit-1").Return(tenant, nil)
				mockDirectory.EXPECT().GetPendingDue(gomock.Any(), "unit-1").Return(due, nil)
				mockDirectory.EXPECT().ListPaymentHistory(gomock.Any(), "unit-1", testHistoryLimit).Return(history, nil)
				mockDirectory.EXPECT().ListTickets(gomock.Any(), "unit-1").Return(tickets, nil)
				mockDirectory.EXPECT().ListNotices(gomock.Any(), "prop-1").Return(notices, nil)
			},
			assert: func(t *testing.T, snapshot *types.PortalSnapshot) {
				if snapshot.Tenant == nil || snapshot.Tenant.ID != "tenant-1" {
					t.Errorf("expected tenant section, got %+v", snapshot.Tenant)
				}
				if snapshot.PendingPayment == nil || snapshot.PendingPayment.Reference != "ws_1" {
					t.Errorf("expected pending payment, got %+v", snapshot.PendingPayment)
				}
				if len(snapshot.PaymentHistory) != 1 {
					t.Errorf("expected 1 history record, got %d", len(snapshot.PaymentHistory))
				}
				if len(snapshot.Tickets) != 1 || len(snapshot.Notices) != 1 {
					t.Errorf("expected tickets and notices, got %d/%d", len(snapshot.Tickets), len(snapshot.Notices))
				}
			},
		},
		{
			name: "no pending due",
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetTenant(gomock.Any(), "unit-1").Return(tenant, nil)
				mockDirectory.EXPECT().GetPendingDue(gomock.Any(), "unit-1").Return(nil, directory.ErrNotFound)
				mockDirectory.EXPECT().ListPaymentHistory(gomock.Any(), "unit-1", testHistoryLimit).Return(history, nil)
				mockDirectory.EXPECT().ListTickets(gomock.Any(), "unit-1").Return(tickets, nil)
				mockDirectory.EXPECT().ListNotices(gomock.Any(), "prop-1").Return(notices, nil)
			},
			assert: func(t *testing.T, snapshot *types.PortalSnapshot) {
				if snapshot.PendingPayment != nil {
					t.Errorf("expected no pending payment, got %+v", snapshot.PendingPayment)
				}
				if len(snapshot.PaymentHistory) != 1 {
					t.Errorf("expected 1 history record, got %d", len(snapshot.PaymentHistory))
				}
			},
		},
		{
			name: "failing sections degrade to empty",
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetTenant(gomock.Any(), "unit-1").Return(nil, collaboratorErr)
				mockDirectory.EXPECT().GetPendingDue(gomock.Any(), "unit-1").Return(nil, collaboratorErr)
				mockDirectory.EXPECT().ListPaymentHistory(gomock.Any(), "unit-1", testHistoryLimit).Return(nil, collaboratorErr)
				mockDirectory.EXPECT().ListTickets(gomock.Any(), "unit-1").Return(nil, collaboratorErr)
				mockDirectory.EXPECT().ListNotices(gomock.Any(), "prop-1").Return(nil, collaboratorErr)
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any()).Times(5)
			},
			assert: func(t *testing.T, snapshot *types.PortalSnapshot) {
				if snapshot.Tenant != nil || snapshot.PendingPayment != nil {
					t.Error("expected degraded sections to stay empty")
				}
				if snapshot.PaymentHistory == nil || snapshot.Tickets == nil || snapshot.Notices == nil {
					t.Error("expected empty slices, not nil, for degraded list sections")
				}
				if snapshot.Unit == nil || snapshot.Unit.ID != "unit-1" {
					t.Errorf("expected unit to survive degradation, got %+v", snapshot.Unit)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockDirectory, testHistoryLimit, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "portal.Service.Resolve").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockTracer.EXPECT().Start(gomock.Any(), "portal.Service.ResolveBinding").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockDirectory.EXPECT().GetUnitByQRToken(gomock.Any(), "qr-abc").Return(testBinding(), nil)
			tc.setupMocks(mockDirectory, mockLogger)

			snapshot, err := s.Resolve(context.Background(), Credential{QRToken: "qr-abc"})

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.assert(t, snapshot)
		})
	}
}

func TestService_Resolve_BindingFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockDirectory, testHistoryLimit, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)
	mockDirectory.EXPECT().GetUnitByQRToken(gomock.Any(), "qr-bogus").Return(nil, directory.ErrNotFound)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())

	snapshot, err := s.Resolve(context.Background(), Credential{QRToken: "qr-bogus"})

	if !errors.Is(err, ErrCredentialNotFound) {
		t.Errorf("expected ErrCredentialNotFound, got %v", err)
	}
	if snapshot != nil {
		t.Errorf("expected nil snapshot, got %+v", snapshot)
	}
}

func TestService_CreateTicket(t *testing.T) {
	payload := &directory.TicketPayload{Title: "Leaking tap", Description: "Kitchen tap drips", Category: "plumbing", Priority: "medium"}
	created := &types.Ticket{ID: "ticket-1", Title: "Leaking tap", Status: "open"}
	upstreamErr := errors.New("upstream error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockDirectoryInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetUnitByQRToken(gomock.Any(), "qr-abc").Return(testBinding(), nil)
				mockDirectory.EXPECT().CreateTicket(gomock.Any(), "unit-1", payload).Return(created, nil)
			},
			expectedErr: nil,
		},
		{
			name: "credential rejected",
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetUnitByQRToken(gomock.Any(), "qr-abc").Return(nil, directory.ErrNotFound)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedErr: ErrCredentialNotFound,
		},
		{
			name: "directory error",
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetUnitByQRToken(gomock.Any(), "qr-abc").Return(testBinding(), nil)
				mockDirectory.EXPECT().CreateTicket(gomock.Any(), "unit-1", payload).Return(nil, upstreamErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: upstreamErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockDirectory, testHistoryLimit, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "portal.Service.CreateTicket").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockTracer.EXPECT().Start(gomock.Any(), "portal.Service.ResolveBinding").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockDirectory, mockLogger)

			ticket, err := s.CreateTicket(context.Background(), Credential{QRToken: "qr-abc"}, payload)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ticket == nil || ticket.ID != "ticket-1" {
				t.Errorf("unexpected ticket: %+v", ticket)
			}
		})
	}
}

func TestService_UpdateContact(t *testing.T) {
	payload := &directory.ContactPayload{Phone: "254712345678", Email: "jane@example.com"}
	upstreamErr := errors.New("upstream error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockDirectoryInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetUnitByAccessCode(gomock.Any(), "ACC123").Return(testBinding(), nil)
				mockDirectory.EXPECT().UpdateTenantContact(gomock.Any(), "unit-1", payload).Return(nil)
			},
			expectedErr: nil,
		},
		{
			name: "credential expired",
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetUnitByAccessCode(gomock.Any(), "ACC123").Return(nil, directory.ErrGone)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedErr: ErrCredentialExpired,
		},
		{
			name: "directory error",
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().GetUnitByAccessCode(gomock.Any(), "ACC123").Return(testBinding(), nil)
				mockDirectory.EXPECT().UpdateTenantContact(gomock.Any(), "unit-1", payload).Return(upstreamErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: upstreamErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDirectory := NewMockDirectoryInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockDirectory, testHistoryLimit, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "portal.Service.UpdateContact").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockTracer.EXPECT().Start(gomock.Any(), "portal.Service.ResolveBinding").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockDirectory, mockLogger)

			err := s.UpdateContact(context.Background(), Credential{AccessCode: "ACC123"}, payload)

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
