// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/danielhkuo/roompoll/models"
)

// codeAlphabet is the set of characters a poll code is drawn from
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePollCode creates a random models.CodeLength character poll code.
// Each character is drawn uniformly from A-Z0-9 using crypto/rand.
func GeneratePollCode() (string, error) {
	max := big.NewInt(int64(len(codeAlphabet)))

	b := make([]byte, models.CodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate poll code: %w", err)
		}
		b[i] = codeAlphabet[n.Int64()]
	}
	return string(b), nil
}

// IsValidPollCode reports whether s has the shape of a generated poll code
func IsValidPollCode(s string) bool {
	if len(s) != models.CodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(codeAlphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}

// Authorize checks that requester is the creator of a poll.
// Identities are opaque; surrounding whitespace is ignored on both sides.
func Authorize(creator, requester string) error {
	c := strings.TrimSpace(creator)
	if c == "" || c != strings.TrimSpace(requester) {
		return models.ErrForbidden
	}
	return nil
}
