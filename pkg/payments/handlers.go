// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/portal-service/internal/directory"
	"github.com/canonical/portal-service/internal/logging"
	"github.com/canonical/portal-service/internal/monitoring"
	"github.com/canonical/portal-service/internal/tracing"
	"github.com/canonical/portal-service/internal/types"
	"github.com/canonical/portal-service/pkg/portal"
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
	mux.Post("/api/v0/portal/payments", a.submit)
	mux.Post("/api/v0/portal/payments/{id}/poll", a.poll)
	mux.Get("/api/v0/portal/payments/{id}", a.getAttempt)
	mux.Get("/api/v0/units/{id}/payment-attempts", a.listAttempts)
}

type submitRequest struct {
	portal.Credential
	SubmitRequest
}

// attemptResponse is returned by every payment endpoint so the caller can
// track the attempt's state after each call. Message is set for ambiguous
// outcomes that are neither success nor failure.
type attemptResponse struct {
	Attempt *types.PaymentAttempt `json:"attempt"`
	Message string                `json:"message,omitempty"`
}

func (a *API) submit(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "payments.API.submit")
	defer span.End()

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	attempt, err := a.service.Submit(ctx, req.Credential, &req.SubmitRequest)
	if errors.Is(err, ErrAmbiguousInitiation) {
		writeJSON(w, http.StatusAccepted, attemptResponse{
			Attempt: attempt,
			Message: "the payment prompt may still reach the customer; confirm before paying again",
		})
		return
	}
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, attemptResponse{Attempt: attempt})
}

func (a *API) poll(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "payments.API.poll")
	defer span.End()

	attempt, err := a.service.Poll(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, ErrAmbiguousInitiation) {
		writeJSON(w, http.StatusAccepted, attemptResponse{
			Attempt: attempt,
			Message: "initiation outcome is still unknown; this attempt cannot be polled",
		})
		return
	}
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, attemptResponse{Attempt: attempt})
}

func (a *API) getAttempt(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "payments.API.getAttempt")
	defer span.End()

	attempt, err := a.service.GetAttempt(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, attemptResponse{Attempt: attempt})
}

func (a *API) listAttempts(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "payments.API.listAttempts")
	defer span.End()

	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	attempts, err := a.service.ListAttempts(ctx, chi.URLParam(r, "id"), page, size)
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"attempts": attempts})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidPhone), errors.Is(err, ErrInvalidRequest), errors.Is(err, portal.ErrMissingCredential):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, portal.ErrCredential):
		writeJSONError(w, http.StatusNotFound, "the access code may be invalid or expired")
	case errors.Is(err, ErrNotFound):
		writeJSONError(w, http.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, ErrConflict), errors.Is(err, ErrNotPollable):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, directory.ErrUnavailable):
		writeJSONError(w, http.StatusServiceUnavailable, "a required backing service is unavailable, try again shortly")
	default:
		a.logger.Errorf("payment request failed: %v", err)
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
