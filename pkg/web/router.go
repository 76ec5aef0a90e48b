// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/portal-service/internal/config"
	"github.com/canonical/portal-service/internal/db"
	"github.com/canonical/portal-service/internal/directory"
	"github.com/canonical/portal-service/internal/logging"
	"github.com/canonical/portal-service/internal/monitoring"
	"github.com/canonical/portal-service/internal/storage"
	"github.com/canonical/portal-service/internal/tracing"
	"github.com/canonical/portal-service/pkg/metrics"
	"github.com/canonical/portal-service/pkg/notices"
	"github.com/canonical/portal-service/pkg/payments"
	"github.com/canonical/portal-service/pkg/portal"
	"github.com/canonical/portal-service/pkg/roles"
	"github.com/canonical/portal-service/pkg/status"
	"github.com/canonical/portal-service/pkg/webhooks"
)

func NewRouter(
	specs *config.EnvSpec,
	store storage.StorageInterface,
	dbClient db.DBClientInterface,
	dir *directory.Client,
	gateway payments.GatewayInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	portalService := portal.NewService(dir, specs.PaymentHistoryLimit, tracer, monitor, logger)
	paymentsService := payments.NewService(
		store,
		gateway,
		portalService,
		specs.MpesaInitiateTimeout,
		specs.MpesaQueryTimeout,
		payments.PollPolicy{MaxPolls: specs.PaymentMaxPolls, MaxWait: specs.PaymentMaxWait},
		tracer, monitor, logger,
	)
	rolesService := roles.NewService(dir, tracer, monitor, logger)
	noticesService := notices.NewService(dir, tracer, monitor, logger)
	webhooksService := webhooks.NewService(store, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	portal.NewAPI(portalService, tracer, monitor, logger).RegisterEndpoints(router)
	payments.NewAPI(paymentsService, tracer, monitor, logger).RegisterEndpoints(router)
	roles.NewAPI(rolesService, tracer, monitor, logger).RegisterEndpoints(router)
	notices.NewAPI(noticesService, tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(webhooksService, tracer, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
