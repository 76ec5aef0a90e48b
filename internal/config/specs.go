// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// Property/billing/ticket/notice/role directories.
	DirectoryURL     string        `envconfig:"directory_url" required:"true"`
	DirectoryToken   string        `envconfig:"directory_api_token"`
	DirectoryTimeout time.Duration `envconfig:"directory_timeout" default:"5s"`

	// Bounded page size for the portal payment history section.
	PaymentHistoryLimit int64 `envconfig:"payment_history_limit" default:"24"`

	// Mobile money gateway (Daraja style STK push).
	MpesaBaseURL         string        `envconfig:"mpesa_base_url" required:"true"`
	MpesaConsumerKey     string        `envconfig:"mpesa_consumer_key" required:"true"`
	MpesaConsumerSecret  string        `envconfig:"mpesa_consumer_secret" required:"true"`
	MpesaShortCode       string        `envconfig:"mpesa_short_code" required:"true"`
	MpesaPasskey         string        `envconfig:"mpesa_passkey" required:"true"`
	MpesaCallbackURL     string        `envconfig:"mpesa_callback_url"`
	MpesaInitiateTimeout time.Duration `envconfig:"mpesa_initiate_timeout" default:"30s"`
	MpesaQueryTimeout    time.Duration `envconfig:"mpesa_query_timeout" default:"10s"`

	// Reconciliation polling budget; exhausting either bound times the
	// attempt out.
	PaymentMaxPolls int           `envconfig:"payment_max_polls" default:"12"`
	PaymentMaxWait  time.Duration `envconfig:"payment_max_wait" default:"3m"`
}
