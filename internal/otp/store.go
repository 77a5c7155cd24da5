// Package otp is the ledger of pending one-time codes. A code is bound
// to an opaque key (an email today, a phone number works too), survives
// failed verifications, and dies on the first successful one or when a
// reissue overwrites it. No expiry and no attempt cap.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

// Store maps identity keys to pending codes.
type Store interface {
	// Issue generates a fresh code and stores it under key, replacing
	// any pending code for that key.
	Issue(ctx context.Context, key string) (string, error)
	// Verify reports whether code matches the pending entry for key.
	// A match deletes the entry (single use); a mismatch leaves it
	// intact so a retry with the right code still works.
	Verify(ctx context.Context, key, code string) (bool, error)
	// Delete discards any pending code for key.
	Delete(ctx context.Context, key string) error
}

// generateCode draws a 6-digit code uniformly from 100000..999999.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("otp rand: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
