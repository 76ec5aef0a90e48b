// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import "errors"

var (
	// ErrInvalidPhone rejects a submission before any gateway call.
	ErrInvalidPhone = errors.New("phone number is not a recognized Kenyan mobile number")

	// ErrInvalidRequest covers non-phone validation failures on submission.
	ErrInvalidRequest = errors.New("invalid payment request")

	// ErrConflict is returned when a second operation targets an attempt
	// that already has one in flight. The first operation is unaffected.
	ErrConflict = errors.New("another operation is already in flight for this payment attempt")

	// ErrAmbiguousInitiation marks an initiation whose outcome is unknown
	// (timeout or transport failure after the request may have been sent).
	// The customer may still receive a prompt, so the attempt is never
	// retried automatically; a fresh attempt requires explicit user action.
	ErrAmbiguousInitiation = errors.New("payment initiation outcome is unknown")

	// ErrNotPollable is returned for attempts that hold no correlation id.
	ErrNotPollable = errors.New("payment attempt cannot be polled in its current state")

	ErrNotFound = errors.New("payment attempt not found")
)
