// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/portal-service/internal/directory"
	"github.com/canonical/portal-service/internal/types"
	"github.com/canonical/portal-service/pkg/permissions"
)

//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_roles.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func setupAPITest(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	mux := chi.NewMux()
	NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	return mux, mockService
}

func TestAPI_GetPermissions(t *testing.T) {
	caps := &types.RoleCapabilities{RoleID: "role-1", RoleType: "admin", CanManageUsers: true}
	set := permissions.Derive(*caps)

	mux, mockService := setupAPITest(t)
	mockService.EXPECT().GetPermissions(gomock.Any(), "role-1").Return(set, caps, nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/roles/role-1/permissions", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp permissionsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.RoleType != "admin" || len(resp.Permissions) != len(set.List()) {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestAPI_AssignRole(t *testing.T) {
	membership := &types.Membership{ID: "membership-1", OrganizationID: "org-1"}

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"user_id":"user-1","role_id":"role-1"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().AssignRole(gomock.Any(), "org-1", "user-1", "role-1").Return(membership, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing user_id",
			body:           `{"role_id":"role-1"}`,
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "role not found",
			body: `{"user_id":"user-1","role_id":"role-9"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().AssignRole(gomock.Any(), "org-1", "user-1", "role-9").Return(nil, directory.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux, mockService := setupAPITest(t)
			tc.setupMocks(mockService)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v0/organizations/org-1/roles", strings.NewReader(tc.body))
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_UpdateMembership(t *testing.T) {
	mux, mockService := setupAPITest(t)

	membership := &types.Membership{ID: "membership-1", OrganizationID: "org-1", RoleID: "role-2"}
	mockService.EXPECT().UpdateMembership(gomock.Any(), "org-1", "membership-1", "role-2").Return(membership, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v0/organizations/org-1/memberships/membership-1", strings.NewReader(`{"role_id":"role-2"}`))
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}
