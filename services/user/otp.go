package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"barberbook/models"
	"barberbook/utils"
)

// SendCode generates a verification code, stores it in Redis and texts
// it to the customer. Registration sends require the phone to be free;
// recovery sends require an existing account.
func (s *DefaultUserService) SendCode(ctx context.Context, phone string, mustExist bool) error {
	exists, err := s.PhoneExists(ctx, phone)
	if err != nil {
		return err
	}
	if mustExist && !exists {
		return ErrNotFound
	}
	if !mustExist && exists {
		return ErrPhoneTaken
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}
	if err := utils.SaveOTPRecord(ctx, utils.GetOTPCacheClient(), phone, code); err != nil {
		return err
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		code, int(utils.OTPTTL.Minutes()))
	if err := s.Sender.Send(ctx, phone, body); err != nil {
		return fmt.Errorf("failed to send verification code: %w", err)
	}

	if err := s.Messages.LogMessage(ctx, &models.MessageLog{
		ID:     uuid.New().String(),
		Phone:  phone,
		Kind:   "otp",
		SentAt: time.Now(),
		Status: "sent",
	}); err != nil {
		utils.GetLogger().Warn("failed to log otp message",
			zap.String("phone", phone), zap.Error(err))
	}
	return nil
}

// VerifyCode checks a submitted code against the stored record.
func (s *DefaultUserService) VerifyCode(ctx context.Context, phone, code string) error {
	return utils.VerifyOTPRecord(ctx, utils.GetOTPCacheClient(), phone, code)
}

// RestorePassword sets a new password after verifying the recovery
// code. Verification consumes the code.
func (s *DefaultUserService) RestorePassword(ctx context.Context, phone, code, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password is required")
	}
	if err := s.VerifyCode(ctx, phone, code); err != nil {
		return err
	}

	u, err := s.Repo.GetByPhone(ctx, phone)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return ErrNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("failed to hash password", zap.Error(err))
		return fmt.Errorf("password reset failed, please try again")
	}
	if err := s.Repo.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
