package domain

import "errors"

// Admin authentication errors
var (
	ErrInvalidCredential  = errors.New("invalid admin credential")
	ErrNoPendingChallenge = errors.New("no pending verification code")
	ErrChallengeExpired   = errors.New("verification code has expired")
	ErrInvalidCode        = errors.New("invalid verification code")
)

// User authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Marketplace errors
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrVerificationPending = errors.New("verification request already pending")
	ErrVerificationActive  = errors.New("verification already active")
)
