// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"
	trace "go.opentelemetry.io/otel/trace"

	"github.com/canonical/portal-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_tracing.go -source=../tracing/interfaces.go

func newDirectoryClient(t *testing.T, ctrl *gomock.Controller, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()
	mockMonitor.EXPECT().SetDependencyAvailability(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	return NewClient(server.URL, "directory-token", 2*time.Second, mockTracer, mockMonitor, mockLogger)
}

func TestClient_GetUnitByQRToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := newDirectoryClient(t, ctrl, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer directory-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/units/by-qr/qr-123" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(Binding{
			Unit:     &types.Unit{ID: "unit-1", UnitNumber: "A-12"},
			Property: &types.Property{ID: "prop-1", Name: "Sunrise Court"},
		})
	}))

	binding, err := client.GetUnitByQRToken(context.Background(), "qr-123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if binding.Unit.ID != "unit-1" || binding.Property.ID != "prop-1" {
		t.Fatalf("unexpected binding %+v", binding)
	}
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "missing record", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "revoked record", status: http.StatusGone, wantErr: ErrGone},
		{name: "directory outage", status: http.StatusBadGateway, wantErr: ErrUnavailable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := newDirectoryClient(t, ctrl, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
			}))

			_, err := client.GetUnitByAccessCode(context.Background(), "AC-99")
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestClient_ConnectionFailureIsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Build a client against a listener that is already closed.
	client := newDirectoryClient(t, ctrl, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client.baseURL = server.URL

	_, err := client.GetTenant(context.Background(), "unit-1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_ListPaymentHistoryPassesLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := newDirectoryClient(t, ctrl, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/billing/units/unit-1/payments" || r.URL.Query().Get("limit") != "24" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode([]*types.PaymentRecord{{ID: "pay-1"}, {ID: "pay-2"}})
	}))

	records, err := client.ListPaymentHistory(context.Background(), "unit-1", 24)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestClient_CreateTicket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := newDirectoryClient(t, ctrl, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/units/unit-1/tickets" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var payload TicketPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(types.Ticket{ID: "tick-1", Title: payload.Title, Status: "open"})
	}))

	ticket, err := client.CreateTicket(context.Background(), "unit-1", &TicketPayload{Title: "Leaking tap", Category: "plumbing"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ticket.ID != "tick-1" || ticket.Status != "open" {
		t.Fatalf("unexpected ticket %+v", ticket)
	}
}

func TestClient_UpdateTenantContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := newDirectoryClient(t, ctrl, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/units/unit-1/tenant/contact" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.UpdateTenantContact(context.Background(), "unit-1", &ContactPayload{Name: "Jane", Phone: "254712345678"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
