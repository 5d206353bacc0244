// Package auth provides the bearer-token verifier used when no
// external identity provider fronts the service. Tokens are opaque
// strings configured per subject.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
)

// Verification errors. The strings are returned to callers verbatim.
var (
	ErrNoToken      = errors.New("No token provided")
	ErrInvalidToken = errors.New("Invalid token")
)

// StaticVerifier verifies bearer tokens against a fixed token→subject
// table loaded from configuration.
type StaticVerifier struct {
	subjects map[string]string
}

// NewStaticVerifier creates a verifier over the given token→subject
// table.
func NewStaticVerifier(subjects map[string]string) *StaticVerifier {
	table := make(map[string]string, len(subjects))
	for token, subject := range subjects {
		table[token] = subject
	}
	return &StaticVerifier{subjects: table}
}

// Verify returns the subject a token belongs to. Comparison is
// constant-time per candidate token.
func (v *StaticVerifier) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNoToken
	}
	for candidate, subject := range v.subjects {
		if len(candidate) == len(token) &&
			subtle.ConstantTimeCompare([]byte(candidate), []byte(token)) == 1 {
			return subject, nil
		}
	}
	return "", ErrInvalidToken
}
