// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package portal

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
	mux.Get("/api/v0/portal/qr/{token}", a.resolveQR)
	mux.Get("/api/v0/portal/access/{code}", a.resolveAccessCode)
	mux.Post("/api/v0/portal/tickets", a.createTicket)
	mux.Put("/api/v0/portal/contact-info", a.updateContact)
}

func (a *API) resolveQR(w http.ResponseWriter, r *http.Request) {
	a.resolve(w, r, Credential{QRToken: chi.URLParam(r, "token")})
}

func (a *API) resolveAccessCode(w http.ResponseWriter, r *http.Request) {
	a.resolve(w, r, Credential{AccessCode: chi.URLParam(r, "code")})
}

func (a *API) resolve(w http.ResponseWriter, r *http.Request, cred Credential) {
	ctx, span := a.tracer.Start(r.Context(), "portal.API.resolve")
	defer span.End()

	snapshot, err := a.service.Resolve(ctx, cred)
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

type ticketRequest struct {
	Credential
	directory.TicketPayload
}

func (a *API) createTicket(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "portal.API.createTicket")
	defer span.End()

	var req ticketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" || req.Description == "" {
		writeJSONError(w, http.StatusBadRequest, "title and description are required")
		return
	}

	ticket, err := a.service.CreateTicket(ctx, req.Credential, &req.TicketPayload)
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ticket)
}

type contactRequest struct {
	Credential
	directory.ContactPayload
}

func (a *API) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "portal.API.updateContact")
	defer span.End()

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.service.UpdateContact(ctx, req.Credential, &req.ContactPayload); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeError maps domain errors to HTTP statuses. The not-found/expired
// distinction is intentionally collapsed here; the resolver already logged
// which variant occurred.
func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMissingCredential):
		writeJSONError(w, http.StatusBadRequest, ErrMissingCredential.Error())
	case errors.Is(err, ErrCredential):
		writeJSONError(w, http.StatusNotFound, "the access code may be invalid or expired")
	case errors.Is(err, directory.ErrUnavailable):
		writeJSONError(w, http.StatusServiceUnavailable, "a required backing service is unavailable, try again shortly")
	default:
		a.logger.Errorf("portal request failed: %v", err)
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
