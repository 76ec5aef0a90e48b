// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/portal-service/internal/logging"
	"github.com/canonical/portal-service/internal/tracing"
	"github.com/canonical/portal-service/internal/types"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/mpesa", a.paymentCallback)
}

func (a *API) paymentCallback(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.paymentCallback")
	defer span.End()

	var envelope stkCallbackEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		http.Error(w, "invalid callback body", http.StatusBadRequest)
		return
	}

	cb := envelope.Body.StkCallback
	if cb.CheckoutRequestID == "" {
		http.Error(w, "missing CheckoutRequestID", http.StatusBadRequest)
		return
	}

	result := &types.TerminalResult{
		Code:    strconv.Itoa(cb.ResultCode),
		Message: cb.ResultDesc,
	}

	if err := a.service.HandlePaymentResult(ctx, cb.CheckoutRequestID, result); err != nil {
		a.logger.Errorf("payment callback processing failed: %v", err)
		// the gateway retries on non-2xx; a storage hiccup should be retried
		http.Error(w, "callback processing failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(callbackAck{ResultCode: 0, ResultDesc: "Accepted"})
}
