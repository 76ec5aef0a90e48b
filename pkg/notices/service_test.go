// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notices

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/portal-service/internal/directory"
)

//go:generate mockgen -build_flags=--mod=mod -package notices -destination ./mock_notices.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notices -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notices -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notices -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_ResendSMS(t *testing.T) {
	upstreamErr := errors.New("upstream error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockDirectoryInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().ResendNoticeSMS(gomock.Any(), "notice-1").Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "directory error",
			setupMocks: func(mockDirectory *MockDirectoryInterface, mockLogger *MockLoggerInterface) {
				mockDirectory.EXPECT().ResendNoticeSMS(gomock.Any(), "notice-1").Return(upstreamErr)
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

			s := NewService(mockDirectory, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "notices.Service.ResendSMS").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockDirectory, mockLogger)

			err := s.ResendSMS(context.Background(), "notice-1")

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestAPI_ResendSMS(t *testing.T) {
	testCases := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().ResendSMS(gomock.Any(), "notice-1").Return(nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name: "notice not found",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().ResendSMS(gomock.Any(), "notice-1").Return(directory.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "directory unavailable",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().ResendSMS(gomock.Any(), "notice-1").Return(directory.ErrUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "notices.API.resendSMS").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v0/notices/notice-1/resend-sms", nil)
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}
