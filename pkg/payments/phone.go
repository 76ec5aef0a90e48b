// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"fmt"
	"regexp"
	"strings"
)

// phonePattern accepts the common renderings of a Kenyan mobile number:
// 0712345678, 712345678, 254712345678 and +254712345678.
var phonePattern = regexp.MustCompile(`^(?:\+?254|0)?(7[0-9]{8})$`)

// NormalizePhone canonicalizes a Kenyan mobile number to the international
// form the gateway requires (254XXXXXXXXX). Inputs not matching any
// recognized pattern are rejected with ErrInvalidPhone.
func NormalizePhone(phone string) (string, error) {
	m := phonePattern.FindStringSubmatch(strings.TrimSpace(phone))
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	return "254" + m[1], nil
}
