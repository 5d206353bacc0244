package contracts

import "context"

// TokenVerifier is the token-verification capability. Implementations
// are external to this service; the transport layer only consumes the
// pass/fail contract.
type TokenVerifier interface {
	// Verify checks a bearer token and returns the subject it belongs
	// to, or an error when the token is missing, unknown or invalid.
	Verify(ctx context.Context, token string) (string, error)
}
