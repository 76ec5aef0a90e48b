// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "local format", input: "0712345678", expected: "254712345678"},
		{name: "international format", input: "254712345678", expected: "254712345678"},
		{name: "international with plus", input: "+254712345678", expected: "254712345678"},
		{name: "bare subscriber number", input: "712345678", expected: "254712345678"},
		{name: "surrounding whitespace", input: " 0712345678 ", expected: "254712345678"},
		{name: "empty", input: "", wantErr: true},
		{name: "too short", input: "071234567", wantErr: true},
		{name: "too long", input: "07123456789", wantErr: true},
		{name: "landline prefix", input: "0202345678", wantErr: true},
		{name: "wrong country code", input: "255712345678", wantErr: true},
		{name: "letters", input: "07abc45678", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.input)

			if tc.wantErr {
				if !errors.Is(err, ErrInvalidPhone) {
					t.Errorf("expected ErrInvalidPhone, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}
