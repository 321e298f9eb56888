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

// Register creates a customer account and returns a session token. The
// handler is expected to have verified the phone via OTP first.
func (s *DefaultUserService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Name == "" || req.Phone == "" || req.Password == "" {
		return nil, fmt.Errorf("name, phone and password are required")
	}

	existing, err := s.Repo.GetByPhone(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(u.Phone, "user", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Token: token, User: *u}, nil
}

// Login checks the password and returns a fresh session token.
func (s *DefaultUserService) Login(ctx context.Context, phone, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.Phone, "user", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Token: token, User: *u}, nil
}

// Logout revokes the token for its remaining lifetime. Already-expired
// tokens need no revocation.
func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	return utils.RevokeToken(ctx, token, utils.TokenRemainingTTL(token))
}

// GetByPhone returns the customer, ErrNotFound when none exists.
func (s *DefaultUserService) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	u, err := s.Repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// PhoneExists reports whether a customer account exists for the phone.
func (s *DefaultUserService) PhoneExists(ctx context.Context, phone string) (bool, error) {
	u, err := s.Repo.GetByPhone(ctx, phone)
	if err != nil {
		return false, fmt.Errorf("failed to check phone: %w", err)
	}
	return u != nil, nil
}
