package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LiteBots/VelorieMarket/domain"
)

// UserHandlers serves the authenticated self-service endpoints: the own
// profile and the verification shop.
type UserHandlers struct {
	userRepo  domain.UserRepository
	verifySvc domain.VerificationService
}

// NewUserHandlers creates new user self-service handlers
func NewUserHandlers(userRepo domain.UserRepository, verifySvc domain.VerificationService) *UserHandlers {
	return &UserHandlers{userRepo: userRepo, verifySvc: verifySvc}
}

// Me returns the caller's own profile, password hash excluded.
func (h *UserHandlers) Me(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	user, err := h.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":                  user.ID,
			"username":            user.Username,
			"email":               user.Email,
			"role":                user.Role,
			"discord_id":          user.DiscordID,
			"avatar":              user.Avatar,
			"balance":             user.Balance,
			"is_verified":         user.IsVerified,
			"verification_status": user.VerificationStatus,
			"verified_until":      user.VerifiedUntil,
			"created_at":          user.CreatedAt,
		},
	})
}

// BuyVerification debits the wallet and queues the caller for admin review.
func (h *UserHandlers) BuyVerification(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	if err := h.verifySvc.Buy(c.Request.Context(), userID); err != nil {
		switch err {
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case domain.ErrInsufficientBalance:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
		case domain.ErrVerificationPending:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Verification request already pending"})
		case domain.ErrVerificationActive:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Verification already active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Purchase failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Purchase successful, awaiting admin approval",
		},
	})
}

// contextUserID reads the user id set by the auth middleware.
func contextUserID(c *gin.Context) (uint, bool) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return 0, false
	}
	userID, err := strconv.ParseUint(userIDStr.(string), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return uint(userID), true
}
