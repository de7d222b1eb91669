package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/LiteBots/VelorieMarket/domain"
)

// AdminAuthConfig configures the admin two-factor flow.
type AdminAuthConfig struct {
	// OTPTTL is how long an issued code stays valid.
	OTPTTL time.Duration
	// AlertChannelID is the fixed Discord channel security alerts go to.
	AlertChannelID string
}

// AdminAuthServiceImpl implements domain.AdminAuthService. It owns the
// in-memory table of outstanding codes; expired entries are only removed
// when a verify attempt touches them.
type AdminAuthServiceImpl struct {
	creds    domain.CredentialStore
	notifier domain.Notifier
	tokenSvc domain.TokenService
	logger   *slog.Logger
	config   AdminAuthConfig

	mu      sync.Mutex
	pending map[string]domain.PendingOTP
}

// NewAdminAuthService creates the admin OTP authenticator.
func NewAdminAuthService(creds domain.CredentialStore, notifier domain.Notifier, tokenSvc domain.TokenService, logger *slog.Logger, config AdminAuthConfig) *AdminAuthServiceImpl {
	return &AdminAuthServiceImpl{
		creds:    creds,
		notifier: notifier,
		tokenSvc: tokenSvc,
		logger:   logger,
		config:   config,
		pending:  make(map[string]domain.PendingOTP),
	}
}

// BeginLogin implements domain.AdminAuthService. A valid secret issues a
// fresh code for the mapped recipient, replacing any code still pending for
// them, and sends it as a Discord DM. A failed DM does not fail the login:
// the code is already active and the caller may retry delivery by logging
// in again.
func (s *AdminAuthServiceImpl) BeginLogin(ctx context.Context, secretPhrase string) (string, error) {
	recipientID, ok := s.creds.Resolve(ctx, secretPhrase)
	if !ok {
		s.emitAlert(ctx, domain.NewSecurityAlert(domain.AlertLoginFailed, "", "invalid credential"))
		return "", domain.ErrInvalidCredential
	}

	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}

	now := time.Now()
	otp := domain.PendingOTP{
		RecipientID: recipientID,
		Code:        code,
		IssuedAt:    now,
		ExpiresAt:   now.Add(s.config.OTPTTL),
	}

	s.mu.Lock()
	s.pending[recipientID] = otp
	s.mu.Unlock()

	message := fmt.Sprintf("🔐 Your admin verification code is: **%s**. Valid for %d minutes.", code, int(s.config.OTPTTL.Minutes()))
	if err := s.notifier.SendDirect(ctx, recipientID, message); err != nil {
		s.logger.Warn("failed to deliver OTP DM", "recipient_id", recipientID, "error", err)
	}

	return recipientID, nil
}

// VerifyCode implements domain.AdminAuthService. A wrong code leaves the
// pending entry intact so the admin can retry until it expires; an expired
// entry is deleted on sight.
func (s *AdminAuthServiceImpl) VerifyCode(ctx context.Context, recipientID, code string) (string, error) {
	s.mu.Lock()
	otp, exists := s.pending[recipientID]
	if exists && time.Now().After(otp.ExpiresAt) {
		delete(s.pending, recipientID)
		s.mu.Unlock()
		return "", domain.ErrChallengeExpired
	}
	if !exists {
		s.mu.Unlock()
		return "", domain.ErrNoPendingChallenge
	}
	if otp.Code != code {
		s.mu.Unlock()
		s.emitAlert(ctx, domain.NewSecurityAlert(domain.AlertLoginFailed, recipientID, "invalid code"))
		return "", domain.ErrInvalidCode
	}
	delete(s.pending, recipientID)
	s.mu.Unlock()

	s.emitAlert(ctx, domain.NewSecurityAlert(domain.AlertLoginSuccess, recipientID, ""))

	token, err := s.tokenSvc.GenerateAdminToken(recipientID)
	if err != nil {
		return "", fmt.Errorf("failed to generate admin token: %w", err)
	}

	return token, nil
}

// Logout implements domain.AdminAuthService. The token is not revoked; the
// only effect of a valid token is the logout alert. Invalid or expired
// tokens are ignored. Always returns nil.
func (s *AdminAuthServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := s.tokenSvc.ValidateAdminToken(token)
	if err != nil || claims.RecipientID == "" {
		return nil
	}
	s.emitAlert(ctx, domain.NewSecurityAlert(domain.AlertLogout, claims.RecipientID, ""))
	return nil
}

// emitAlert posts a security alert to the fixed alert channel. Delivery
// failures never propagate into the authentication flow.
func (s *AdminAuthServiceImpl) emitAlert(ctx context.Context, alert domain.SecurityAlert) {
	if err := s.notifier.SendToChannel(ctx, s.config.AlertChannelID, alert.Message()); err != nil {
		s.logger.Warn("failed to deliver security alert", "kind", string(alert.Kind), "error", err)
	}
}

// generateCode draws a 6-digit code uniformly from [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
