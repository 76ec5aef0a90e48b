// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notices

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
	mux.Post("/api/v0/notices/{id}/resend-sms", a.resendSMS)
}

func (a *API) resendSMS(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notices.API.resendSMS")
	defer span.End()

	err := a.service.ResendSMS(ctx, chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, directory.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "notice not found")
	case errors.Is(err, directory.ErrUnavailable):
		writeJSONError(w, http.StatusServiceUnavailable, "the notice directory is unavailable, try again shortly")
	case err != nil:
		a.logger.Errorf("notice SMS resend failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
	default:
		w.WriteHeader(http.StatusAccepted)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
