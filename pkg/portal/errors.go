// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package portal

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential is a caller error: neither or both credential
	// kinds were supplied.
	ErrMissingCredential = errors.New("exactly one of qr_token or access_code must be supplied")

	// ErrCredential is the common ancestor of every credential rejection.
	// The HTTP surface reports it uniformly; the variants below keep the
	// never-valid / was-valid distinction for logging.
	ErrCredential = errors.New("access credential rejected")

	ErrCredentialNotFound = fmt.Errorf("%w: no unit bound to credential", ErrCredential)
	ErrCredentialExpired  = fmt.Errorf("%w: credential revoked or expired", ErrCredential)
)
