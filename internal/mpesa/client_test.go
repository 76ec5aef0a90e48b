// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mpesa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	gomock "go.uber.org/mock/gomock"
	trace "go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -build_flags=--mod=mod -package mpesa -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package mpesa -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package mpesa -destination ./mock_tracing.go -source=../tracing/interfaces.go

type gatewayFixture struct {
	client *Client
	server *httptest.Server

	tokenCalls atomic.Int64
}

// newGatewayFixture stands up a fake Daraja endpoint. push and query decide
// the responses for the STK push and query paths.
func newGatewayFixture(t *testing.T, ctrl *gomock.Controller, push, query http.HandlerFunc) *gatewayFixture {
	t.Helper()

	f := &gatewayFixture{}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v1/generate", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)

		user, pass, ok := r.BasicAuth()
		if !ok || user != "key" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "tok-1", ExpiresIn: "3599"})
	})
	if push != nil {
		mux.HandleFunc(stkPushPath, push)
	}
	if query != nil {
		mux.HandleFunc(stkQueryPath, query)
	}

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

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

	f.client = NewClient(
		Config{
			BaseURL:        f.server.URL,
			ConsumerKey:    "key",
			ConsumerSecret: "secret",
			ShortCode:      "174379",
			Passkey:        "passkey",
			CallbackURL:    "https://portal.example.com/api/v0/webhooks/mpesa",
		},
		mockTracer, mockMonitor, mockLogger,
	)

	return f
}

func TestClient_Initiate(t *testing.T) {
	t.Run("returns the checkout request id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var got stkPushRequest
		f := newGatewayFixture(t, ctrl, func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer tok-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewDecoder(r.Body).Decode(&got)
			_ = json.NewEncoder(w).Encode(stkPushResponse{
				CheckoutRequestID: "ws_CO_1202",
				ResponseCode:      "0",
			})
		}, nil)

		id, err := f.client.Initiate(context.Background(), "254712345678", 500, "RENT-APR")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if id != "ws_CO_1202" {
			t.Fatalf("expected checkout id ws_CO_1202, got %q", id)
		}

		if got.PhoneNumber != "254712345678" || got.PartyA != "254712345678" {
			t.Fatalf("expected phone on both PartyA and PhoneNumber, got %+v", got)
		}
		if got.Amount != 500 {
			t.Fatalf("expected amount 500, got %d", got.Amount)
		}
		if got.TransactionType != "CustomerPayBillOnline" {
			t.Fatalf("unexpected transaction type %q", got.TransactionType)
		}
		if got.AccountReference != "RENT-APR" {
			t.Fatalf("unexpected account reference %q", got.AccountReference)
		}
	})

	t.Run("provider rejection is a business error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGatewayFixture(t, ctrl, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(apiError{ErrorCode: "400.002.02", ErrorMessage: "Bad Request - Invalid PhoneNumber"})
		}, nil)

		_, err := f.client.Initiate(context.Background(), "254712345678", 500, "RENT-APR")
		if !IsBusinessError(err) {
			t.Fatalf("expected business error, got %v", err)
		}
	})

	t.Run("gateway outage is a network error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGatewayFixture(t, ctrl, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}, nil)

		_, err := f.client.Initiate(context.Background(), "254712345678", 500, "RENT-APR")
		if !IsNetworkError(err) {
			t.Fatalf("expected network error, got %v", err)
		}
	})

	t.Run("accepted response without a correlation id is a network error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGatewayFixture(t, ctrl, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(stkPushResponse{ResponseCode: "0"})
		}, nil)

		_, err := f.client.Initiate(context.Background(), "254712345678", 500, "RENT-APR")
		if !IsNetworkError(err) {
			t.Fatalf("expected network error, got %v", err)
		}
	})
}

func TestClient_QueryStatus(t *testing.T) {
	t.Run("returns the provider result verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGatewayFixture(t, ctrl, nil, func(w http.ResponseWriter, r *http.Request) {
			var req stkQueryRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.CheckoutRequestID != "ws_CO_1202" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			_ = json.NewEncoder(w).Encode(stkQueryResponse{ResultCode: "1032", ResultDesc: "Request cancelled by user"})
		})

		result, err := f.client.QueryStatus(context.Background(), "ws_CO_1202")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.Pending {
			t.Fatal("expected a resolved result")
		}
		if result.ResultCode != "1032" || result.ResultDesc != "Request cancelled by user" {
			t.Fatalf("unexpected result %+v", result)
		}
	})

	t.Run("processing marker maps to a pending result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGatewayFixture(t, ctrl, nil, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(apiError{ErrorCode: "500.001.1001", ErrorMessage: "The transaction is being processed"})
		})

		result, err := f.client.QueryStatus(context.Background(), "ws_CO_1202")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !result.Pending {
			t.Fatalf("expected pending result, got %+v", result)
		}
	})

	t.Run("outage surfaces a network error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGatewayFixture(t, ctrl, nil, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := f.client.QueryStatus(context.Background(), "ws_CO_1202")
		if !IsNetworkError(err) {
			t.Fatalf("expected network error, got %v", err)
		}
	})
}

func TestClient_TokenIsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGatewayFixture(t, ctrl, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(stkPushResponse{CheckoutRequestID: "ws_CO_1202", ResponseCode: "0"})
	}, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(stkQueryResponse{ResultCode: "0", ResultDesc: "ok"})
	})

	if _, err := f.client.Initiate(context.Background(), "254712345678", 500, "RENT-APR"); err != nil {
		t.Fatalf("initiate failed: %v", err)
	}
	if _, err := f.client.QueryStatus(context.Background(), "ws_CO_1202"); err != nil {
		t.Fatalf("query failed: %v", err)
	}

	if calls := f.tokenCalls.Load(); calls != 1 {
		t.Fatalf("expected a single token fetch, got %d", calls)
	}
}
