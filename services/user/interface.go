package user

import (
	"context"
	"time"

	"barberbook/database/repository/user"
	"barberbook/models"
	"barberbook/services/sms"
)

// tokenTTL is the customer session length.
const tokenTTL = 72 * time.Hour

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterRequest is a new customer signup.
type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// UserService covers customer accounts: registration, login, phone
// verification codes and password recovery.
type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, phone, password string) (*AuthResponse, error)
	Logout(ctx context.Context, token string) error

	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)

	// SendCode issues a verification code to the phone. Registration
	// codes require the phone to be unregistered; recovery codes require
	// an existing account.
	SendCode(ctx context.Context, phone string, mustExist bool) error
	VerifyCode(ctx context.Context, phone, code string) error
	RestorePassword(ctx context.Context, phone, code, newPassword string) error
}

// MessageLogger records outbound verification messages.
type MessageLogger interface {
	LogMessage(ctx context.Context, log *models.MessageLog) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sender   sms.Sender
	Messages MessageLogger
}
