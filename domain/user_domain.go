package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "profile retrieved successfully"
	MessageSuccessUpdateUser     = "profile updated successfully"
	MessageSuccessSendVerify     = "verification email sent"
	MessageSuccessVerifyEmail    = "email verified successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve profile"
	MessageFailedUpdateUser     = "failed to update profile"
	MessageFailedSendVerify     = "failed to send verification email"
	MessageFailedVerifyEmail    = "failed to verify email"
	MessageFailedForgotPassword = "failed to send password reset email"
	MessageFailedResetPassword  = "failed to reset password"

	ErrUsernameTaken      = errors.New("username is already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmailNotSet        = errors.New("no email address on profile")
	ErrAlreadyVerified    = errors.New("email already verified")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=30,alphanum"`
		Email    string `json:"email" validate:"omitempty,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email,omitempty"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token    string `json:"token"`
		Role     string `json:"role"`
		Username string `json:"username"`
	}

	UpdateUserRequest struct {
		Email    string                `json:"email" form:"email" validate:"omitempty,email"`
		Password string                `json:"password" form:"password" validate:"omitempty,min=8"`
		Avatar   *multipart.FileHeader `json:"avatar" form:"avatar"`
	}

	UserResponse struct {
		ID           string    `json:"id"`
		Username     string    `json:"username"`
		Email        string    `json:"email,omitempty"`
		Role         string    `json:"role"`
		Achievements string    `json:"achievements"`
		AvatarURL    string    `json:"avatar_url,omitempty"`
		IsVerified   bool      `json:"is_verified"`
		IsPremium    bool      `json:"is_premium"`
		CreatedAt    time.Time `json:"created_at"`
	}

	SendVerifyRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
)
