// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/portal-service/internal/directory"
	"github.com/canonical/portal-service/internal/logging"
	"github.com/canonical/portal-service/internal/monitoring"
	"github.com/canonical/portal-service/internal/tracing"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/roles/{id}/permissions", a.getPermissions)
	mux.Post("/api/v0/organizations/{id}/roles", a.assignRole)
	mux.Put("/api/v0/organizations/{id}/memberships/{membershipID}", a.updateMembership)
}

type permissionsResponse struct {
	RoleID      string   `json:"role_id"`
	RoleType    string   `json:"role_type"`
	Permissions []string `json:"permissions"`
}

func (a *API) getPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.getPermissions")
	defer span.End()

	set, caps, err := a.service.GetPermissions(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, permissionsResponse{
		RoleID:      caps.RoleID,
		RoleType:    caps.RoleType,
		Permissions: set.List(),
	})
}

type assignRoleRequest struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
}

func (a *API) assignRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.assignRole")
	defer span.End()

	var req assignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.RoleID == "" {
		writeJSONError(w, http.StatusBadRequest, "user_id and role_id are required")
		return
	}

	membership, err := a.service.AssignRole(ctx, chi.URLParam(r, "id"), req.UserID, req.RoleID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, membership)
}

type updateMembershipRequest struct {
	RoleID string `json:"role_id"`
}

func (a *API) updateMembership(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.updateMembership")
	defer span.End()

	var req updateMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RoleID == "" {
		writeJSONError(w, http.StatusBadRequest, "role_id is required")
		return
	}

	membership, err := a.service.UpdateMembership(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "membershipID"), req.RoleID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, membership)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMissingOrganization):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, directory.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "role or membership not found")
	case errors.Is(err, directory.ErrUnavailable):
		writeJSONError(w, http.StatusServiceUnavailable, "the role directory is unavailable, try again shortly")
	default:
		a.logger.Errorf("role request failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
