package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	// CodeTTL is how long a generated code stays valid.
	CodeTTL = 5 * time.Minute

	// MaxAttempts is the number of wrong codes allowed before the code is
	// invalidated and a fresh one must be requested.
	MaxAttempts = 3

	codeLength = 6
)

// Store holds pending verification codes keyed by email address.
// Implementations must expire entries after CodeTTL and discard them once
// MaxAttempts wrong codes have been submitted.
type Store interface {
	// Put stores a code for the key, replacing any previous one and
	// resetting the attempt counter.
	Put(ctx context.Context, key, code string) error

	// Verify checks the submitted code. A match consumes the entry. A
	// mismatch burns one attempt and reports the remaining count.
	Verify(ctx context.Context, key, code string) (VerifyResult, error)

	// Exists reports whether an unexpired code is pending for the key.
	Exists(ctx context.Context, key string) (bool, error)

	// Clear drops any pending code for the key.
	Clear(ctx context.Context, key string) error
}

type VerifyResult struct {
	Ok                bool `json:"ok"`
	Expired           bool `json:"expired"`
	AttemptsExhausted bool `json:"attempts_exhausted"`
	AttemptsLeft      int  `json:"attempts_left"`
}

// GenerateCode returns a random six digit numeric code.
func GenerateCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", codeLength, n.Int64()), nil
}
