package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"barberbook/services/user"
	"barberbook/utils"
)

// RegisterHandler creates a customer account. The phone is expected to
// have been verified via the code endpoints first.
func (hb *HandlerBundle) RegisterHandler(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := hb.Users.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler authenticates a customer by phone and password.
func (hb *HandlerBundle) LoginHandler(c *gin.Context) {
	var req struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := hb.Users.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the current session token.
func (hb *HandlerBundle) LogoutHandler(c *gin.Context) {
	if err := hb.Users.Logout(c.Request.Context(), c.GetString("token")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// VerifyPhoneHandler sends a verification code. isUser selects the
// flow: true requires an existing account (password recovery), false
// requires a free phone (registration).
func (hb *HandlerBundle) VerifyPhoneHandler(c *gin.Context) {
	var req struct {
		Phone  string `json:"phone"`
		IsUser bool   `json:"isUser"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone is required"})
		return
	}

	if err := hb.Users.SendCode(c.Request.Context(), req.Phone, req.IsUser); err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no account for this phone"})
		case errors.Is(err, user.ErrPhoneTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send verification code"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
}

// VerifyCodeHandler checks a verification code.
func (hb *HandlerBundle) VerifyCodeHandler(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Phone == "" || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone and code are required"})
		return
	}

	if err := hb.Users.VerifyCode(c.Request.Context(), req.Phone, req.Code); err != nil {
		status, msg := otpErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "phone verified"})
}

// RestorePasswordHandler sets a new password after verifying the
// recovery code.
func (hb *HandlerBundle) RestorePasswordHandler(c *gin.Context) {
	var req struct {
		Phone       string `json:"phone"`
		Code        string `json:"code"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := hb.Users.RestorePassword(c.Request.Context(), req.Phone, req.Code, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no account for this phone"})
		case errors.Is(err, utils.ErrOTPNotFound),
			errors.Is(err, utils.ErrOTPMismatch),
			errors.Is(err, utils.ErrOTPMaxAttempts):
			status, msg := otpErrorResponse(err)
			c.JSON(status, gin.H{"error": msg})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// CheckPhoneHandler reports whether an account exists for the phone.
func (hb *HandlerBundle) CheckPhoneHandler(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone is required"})
		return
	}

	exists, err := hb.Users.PhoneExists(c.Request.Context(), req.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check phone"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// GetUserHandler returns the authenticated customer's profile.
func (hb *HandlerBundle) GetUserHandler(c *gin.Context) {
	phone := c.Param("phone")
	if phone != c.GetString("phone") {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot view another customer's profile"})
		return
	}

	u, err := hb.Users.GetByPhone(c.Request.Context(), phone)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, u)
}

func otpErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, utils.ErrOTPNotFound):
		return http.StatusBadRequest, "verification code not found or expired"
	case errors.Is(err, utils.ErrOTPMismatch):
		return http.StatusBadRequest, "invalid verification code"
	case errors.Is(err, utils.ErrOTPMaxAttempts):
		return http.StatusForbidden, "too many attempts, request a new code"
	default:
		return http.StatusInternalServerError, "verification failed"
	}
}
