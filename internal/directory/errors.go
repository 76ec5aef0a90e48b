// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import "errors"

var (
	// ErrNotFound means the directory has no record for the given key.
	ErrNotFound = errors.New("directory: not found")
	// ErrGone means the record existed but has been revoked or expired.
	ErrGone = errors.New("directory: gone")
	// ErrUnavailable covers network failures, timeouts and 5xx responses;
	// snapshot assembly absorbs it for non-critical sections.
	ErrUnavailable = errors.New("directory: unavailable")
)
