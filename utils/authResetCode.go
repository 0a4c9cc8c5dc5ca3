package utils

import (
	"MedCenter/cache"
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const resetCodeExpiry = 15 * time.Minute

// GenerateResetCode returns a random 6-digit reset code. Codes come from
// crypto/rand since they gate password changes.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// SetResetCode stores the reset code for an email with a 15 minute TTL.
func SetResetCode(ctx context.Context, email, code string) error {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return err
	}
	return cacheInstance.Set(ctx, resetCodeKey(email), code, resetCodeExpiry)
}

// GetResetCode returns the stored reset code for an email, or nil when no
// code is pending.
func GetResetCode(ctx context.Context, email string) (*string, error) {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return nil, err
	}
	code, err := cacheInstance.Get(ctx, resetCodeKey(email))
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, nil
	}
	return &code, nil
}

// DeleteResetCode removes the reset code after a successful password change.
func DeleteResetCode(ctx context.Context, email string) error {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return err
	}
	return cacheInstance.Delete(ctx, resetCodeKey(email))
}

func resetCodeKey(email string) string {
	return "reset_code:" + email
}
