package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LiteBots/VelorieMarket/domain"
)

// AdminAuthHandlers exposes the two-factor admin login flow over HTTP.
type AdminAuthHandlers struct {
	adminAuthSvc domain.AdminAuthService
}

// NewAdminAuthHandlers creates new admin auth handlers
func NewAdminAuthHandlers(adminAuthSvc domain.AdminAuthService) *AdminAuthHandlers {
	return &AdminAuthHandlers{adminAuthSvc: adminAuthSvc}
}

// AdminLoginRequest represents the first-factor request
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminVerifyRequest represents the second-factor request
type AdminVerifyRequest struct {
	RecipientID string `json:"recipient_id" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

// Login handles the password step: a valid secret sends a code to the
// mapped Discord account.
func (h *AdminAuthHandlers) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipientID, err := h.adminAuthSvc.BeginLogin(c.Request.Context(), req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredential {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Verification code sent via Discord",
		"recipient_id": recipientID,
	})
}

// Verify handles the code step and returns the admin session token.
func (h *AdminAuthHandlers) Verify(c *gin.Context) {
	var req AdminVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.adminAuthSvc.VerifyCode(c.Request.Context(), req.RecipientID, req.Code)
	if err != nil {
		switch err {
		case domain.ErrNoPendingChallenge:
			c.JSON(http.StatusBadRequest, gin.H{"error": "No active verification code"})
		case domain.ErrChallengeExpired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Code expired, please log in again"})
		case domain.ErrInvalidCode:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout emits the logout alert for a valid bearer token. It always
// succeeds; the token itself stays valid until expiry.
func (h *AdminAuthHandlers) Logout(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		_ = h.adminAuthSvc.Logout(c.Request.Context(), token)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// bearerToken extracts the token from the Authorization header, or returns
// an empty string.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
