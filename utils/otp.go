package utils

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	otpKeyPrefix  = "otp:"
	otpCodeLength = 4
	// OTPTTL is how long a verification code stays valid.
	OTPTTL = 5 * time.Minute
	// OTPMaxAttempts is the failed-verification cap before the code is discarded.
	OTPMaxAttempts = 10
)

var (
	ErrOTPNotFound    = errors.New("verification code not found or expired")
	ErrOTPMismatch    = errors.New("invalid verification code")
	ErrOTPMaxAttempts = errors.New("max verification attempts reached")
)

// OTPRecord is the verification state kept in Redis per phone number.
// The Redis TTL enforces expiry; IssuedAt is retained for auditing.
type OTPRecord struct {
	Code     string    `json:"code"`
	Attempts int       `json:"attempts"`
	IssuedAt time.Time `json:"issuedAt"`
}

// GenerateOTPCode returns a random numeric code.
func GenerateOTPCode() (string, error) {
	code := make([]byte, otpCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate verification code: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}

// SaveOTPRecord stores a fresh verification code for the phone number,
// replacing any outstanding one.
func SaveOTPRecord(ctx context.Context, client *redis.Client, phone, code string) error {
	rec := OTPRecord{Code: code, Attempts: 0, IssuedAt: time.Now()}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP record: %w", err)
	}
	if err := client.Set(ctx, otpKeyPrefix+phone, data, OTPTTL).Err(); err != nil {
		return fmt.Errorf("failed to store OTP record: %w", err)
	}
	return nil
}

// VerifyOTPRecord checks the provided code against the stored record.
// A match consumes the record. A mismatch increments the attempt count,
// discarding the record once OTPMaxAttempts is reached.
func VerifyOTPRecord(ctx context.Context, client *redis.Client, phone, provided string) error {
	key := otpKeyPrefix + phone
	data, err := client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrOTPNotFound
		}
		return fmt.Errorf("failed to fetch OTP record: %w", err)
	}

	var rec OTPRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return fmt.Errorf("failed to unmarshal OTP record: %w", err)
	}

	if rec.Attempts >= OTPMaxAttempts {
		client.Del(ctx, key)
		return ErrOTPMaxAttempts
	}

	if rec.Code != provided {
		rec.Attempts++
		if rec.Attempts >= OTPMaxAttempts {
			client.Del(ctx, key)
			return ErrOTPMaxAttempts
		}
		updated, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal OTP record: %w", err)
		}
		// KeepTTL so retries never extend the code's lifetime.
		if err := client.Set(ctx, key, updated, redis.KeepTTL).Err(); err != nil {
			return fmt.Errorf("failed to update OTP record: %w", err)
		}
		return ErrOTPMismatch
	}

	if err := client.Del(ctx, key).Err(); err != nil {
		GetLogger().Sugar().Warnf("failed to delete OTP record for %s after verification: %v", phone, err)
	}
	return nil
}
