package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LiteBots/VelorieMarket/domain"
)

// AdminHandlers serves the moderation panel API.
type AdminHandlers struct {
	userRepo  domain.UserRepository
	listRepo  domain.ListingRepository
	txRepo    domain.TransactionRepository
	verifySvc domain.VerificationService
}

// NewAdminHandlers creates new admin panel handlers
func NewAdminHandlers(userRepo domain.UserRepository, listRepo domain.ListingRepository, txRepo domain.TransactionRepository, verifySvc domain.VerificationService) *AdminHandlers {
	return &AdminHandlers{userRepo: userRepo, listRepo: listRepo, txRepo: txRepo, verifySvc: verifySvc}
}

// BalanceAdjustRequest represents a wallet correction
type BalanceAdjustRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// Stats returns the aggregate panel snapshot.
func (h *AdminHandlers) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	userCount, err := h.userRepo.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	listingCount, err := h.listRepo.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	spent, err := h.txRepo.SumSpent(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": domain.Stats{
			UserCount:    userCount,
			ListingCount: listingCount,
			BalanceSpent: spent,
		},
	})
}

// Users lists all registered users for the panel.
func (h *AdminHandlers) Users(c *gin.Context) {
	users, err := h.userRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": adminUserList(users)})
}

// DeleteUser removes an account entirely.
func (h *AdminHandlers) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.userRepo.Delete(c.Request.Context(), uint(userID)); err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "User deleted",
		},
	})
}

// Verifications lists pending requests and active badges.
func (h *AdminHandlers) Verifications(c *gin.Context) {
	users, err := h.verifySvc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list verifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": adminUserList(users)})
}

// ApproveVerification grants a pending request for the standard period.
func (h *AdminHandlers) ApproveVerification(c *gin.Context) {
	h.verificationDecision(c, h.verifySvc.Approve, "Verification approved")
}

// RevokeVerification takes an existing badge away.
func (h *AdminHandlers) RevokeVerification(c *gin.Context) {
	h.verificationDecision(c, h.verifySvc.Revoke, "Verification revoked")
}

func (h *AdminHandlers) verificationDecision(c *gin.Context, decide func(context.Context, uint) error, message string) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := decide(c.Request.Context(), uint(userID)); err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": message,
		},
	})
}

// ManualVerificationRequest grants a badge by email for a custom number of days
type ManualVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
	Days  int    `json:"days" binding:"required,min=1"`
}

// ManualVerification grants a badge outside the shop flow.
func (h *AdminHandlers) ManualVerification(c *gin.Context) {
	var req ManualVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.verifySvc.Grant(c.Request.Context(), req.Email, req.Days)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No user with that email"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification grant failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":        "Verification granted",
			"user_id":        user.ID,
			"verified_until": user.VerifiedUntil,
		},
	})
}

func adminUserList(users []*domain.User) []gin.H {
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":                  u.ID,
			"username":            u.Username,
			"email":               u.Email,
			"role":                u.Role,
			"discord_id":          u.DiscordID,
			"balance":             u.Balance,
			"is_verified":         u.IsVerified,
			"verification_status": u.VerificationStatus,
			"verified_until":      u.VerifiedUntil,
			"created_at":          u.CreatedAt,
		})
	}
	return out
}

// AdjustBalance applies a signed wallet correction and records the ledger
// entry.
func (h *AdminHandlers) AdjustBalance(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req BalanceAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	newBalance, err := h.userRepo.AdjustBalance(ctx, uint(userID), req.Amount)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust balance"})
		return
	}

	txType := "admin_add"
	if req.Amount < 0 {
		txType = "admin_sub"
	}
	tx := &domain.Transaction{
		UserID:      uint(userID),
		Amount:      req.Amount,
		Type:        txType,
		Description: "Balance correction by administrator",
	}
	if err := h.txRepo.Create(ctx, tx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":     "Balance updated",
			"new_balance": newBalance,
		},
	})
}

// Transactions returns the most recent ledger entries.
func (h *AdminHandlers) Transactions(c *gin.Context) {
	txs, err := h.txRepo.ListRecent(c.Request.Context(), 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	out := make([]gin.H, 0, len(txs))
	for _, t := range txs {
		out = append(out, gin.H{
			"id":          t.ID,
			"user_id":     t.UserID,
			"amount":      t.Amount,
			"type":        t.Type,
			"description": t.Description,
			"created_at":  t.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}
