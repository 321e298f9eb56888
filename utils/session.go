package utils

import (
	"context"
	"fmt"
	"time"
)

const revokedTokenPrefix = "revokedToken:"

// RevokeToken blacklists a JWT until it would have expired anyway.
func RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	client := GetAuthCacheClient()
	if err := client.Set(ctx, revokedTokenPrefix+token, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether a token was explicitly logged out.
func IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	client := GetAuthCacheClient()
	n, err := client.Exists(ctx, revokedTokenPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
