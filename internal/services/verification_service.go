package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LiteBots/VelorieMarket/domain"
)

// approvalValidity is how long an admin-approved badge lasts.
const approvalValidity = 30 * 24 * time.Hour

// VerificationServiceImpl implements domain.VerificationService. A purchase
// debits the wallet, records the ledger entry and parks the user in pending
// until an admin decides; the money is not refunded on revoke.
type VerificationServiceImpl struct {
	userRepo domain.UserRepository
	txRepo   domain.TransactionRepository
	logger   *slog.Logger
	price    int64
}

// NewVerificationService creates the profile-verification service. Price is
// in wallet hundredths.
func NewVerificationService(userRepo domain.UserRepository, txRepo domain.TransactionRepository, logger *slog.Logger, price int64) *VerificationServiceImpl {
	return &VerificationServiceImpl{
		userRepo: userRepo,
		txRepo:   txRepo,
		logger:   logger,
		price:    price,
	}
}

// Buy implements domain.VerificationService. The status checks run before
// the debit so a pending or active user is never charged twice.
func (s *VerificationServiceImpl) Buy(ctx context.Context, userID uint) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	switch user.VerificationStatus {
	case domain.VerificationPending:
		return domain.ErrVerificationPending
	case domain.VerificationActive:
		return domain.ErrVerificationActive
	}
	if user.Balance < s.price {
		return domain.ErrInsufficientBalance
	}

	if _, err := s.userRepo.AdjustBalance(ctx, userID, -s.price); err != nil {
		return fmt.Errorf("failed to debit wallet: %w", err)
	}
	if err := s.userRepo.SetVerification(ctx, userID, domain.VerificationState{
		Status: domain.VerificationPending,
	}); err != nil {
		return fmt.Errorf("failed to mark verification pending: %w", err)
	}

	tx := &domain.Transaction{
		UserID:      userID,
		Amount:      -s.price,
		Type:        "spent",
		Description: "Profile verification purchase",
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		// The purchase already went through; a missing ledger row is an
		// accounting gap, not a failed sale.
		s.logger.Warn("failed to record verification purchase", "user_id", userID, "error", err)
	}

	s.logger.Info("verification purchased", "user_id", userID, "price", s.price)
	return nil
}

// Approve implements domain.VerificationService: grants the badge for the
// standard 30 days.
func (s *VerificationServiceImpl) Approve(ctx context.Context, userID uint) error {
	until := time.Now().Add(approvalValidity)
	return s.userRepo.SetVerification(ctx, userID, domain.VerificationState{
		IsVerified: true,
		Status:     domain.VerificationActive,
		Until:      &until,
	})
}

// Revoke implements domain.VerificationService: clears the badge entirely.
func (s *VerificationServiceImpl) Revoke(ctx context.Context, userID uint) error {
	return s.userRepo.SetVerification(ctx, userID, domain.VerificationState{
		Status: domain.VerificationNone,
	})
}

// Grant implements domain.VerificationService: manual admin grant by email
// for a custom number of days, bypassing the shop.
func (s *VerificationServiceImpl) Grant(ctx context.Context, email string, days int) (*domain.User, error) {
	until := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	return s.userRepo.SetVerificationByEmail(ctx, email, domain.VerificationState{
		IsVerified: true,
		Status:     domain.VerificationActive,
		Until:      &until,
	})
}

// List implements domain.VerificationService: everyone an admin could act
// on, pending requests and active badges alike.
func (s *VerificationServiceImpl) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.ListByVerificationStatus(ctx, domain.VerificationPending, domain.VerificationActive)
}

var _ domain.VerificationService = (*VerificationServiceImpl)(nil)
