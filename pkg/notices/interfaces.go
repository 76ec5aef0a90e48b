// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notices

import "context"

type ServiceInterface interface {
	ResendSMS(ctx context.Context, noticeID string) error
}

type DirectoryInterface interface {
	ResendNoticeSMS(ctx context.Context, noticeID string) error
}
