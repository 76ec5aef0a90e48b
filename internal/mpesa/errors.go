// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mpesa

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// ErrorKindNetwork covers timeouts, connection failures, 5xx responses
	// and malformed payloads; retryable on status queries.
	ErrorKindNetwork ErrorKind = iota
	// ErrorKindBusiness covers provider-side rejections (bad credentials,
	// validation failures, declined transactions); never retried.
	ErrorKindBusiness
)

// Error is a tagged gateway failure carrying the provider code and message
// verbatim when available.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string

	wrapped error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("mpesa: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("mpesa: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.wrapped
}

func networkError(err error, message string) *Error {
	return &Error{Kind: ErrorKindNetwork, Message: message, wrapped: err}
}

func businessError(code, message string) *Error {
	return &Error{Kind: ErrorKindBusiness, Code: code, Message: message}
}

// IsNetworkError reports whether err is a gateway failure eligible for retry
// within a polling budget.
func IsNetworkError(err error) bool {
	var gwErr *Error
	return errors.As(err, &gwErr) && gwErr.Kind == ErrorKindNetwork
}

// IsBusinessError reports whether err is a provider rejection.
func IsBusinessError(err error) bool {
	var gwErr *Error
	return errors.As(err, &gwErr) && gwErr.Kind == ErrorKindBusiness
}
