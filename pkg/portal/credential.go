// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package portal

// Credential is a bearer secret granting identity-less access to one unit's
// portal view. Exactly one of the two fields must be set: a QR token is
// permanently bound to a unit, an access code may be reissued.
type Credential struct {
	QRToken    string `json:"qr_token,omitempty"`
	AccessCode string `json:"access_code,omitempty"`
}

func (c Credential) Validate() error {
	if (c.QRToken == "") == (c.AccessCode == "") {
		return ErrMissingCredential
	}
	return nil
}

// Kind names the credential variant for logging; it assumes Validate passed.
func (c Credential) Kind() string {
	if c.QRToken != "" {
		return "qr_token"
	}
	return "access_code"
}
