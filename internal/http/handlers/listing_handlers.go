package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LiteBots/VelorieMarket/domain"
)

// ListingHandlers serves the public marketplace listing API
type ListingHandlers struct {
	listRepo domain.ListingRepository
}

// NewListingHandlers creates new listing handlers
func NewListingHandlers(listRepo domain.ListingRepository) *ListingHandlers {
	return &ListingHandlers{listRepo: listRepo}
}

// CreateListingRequest represents a new listing
type CreateListingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Category    string `json:"category" binding:"required"`
}

// Create handles listing creation (requires authentication)
func (h *ListingHandlers) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	listing := &domain.Listing{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}
	if err := h.listRepo.Create(c.Request.Context(), listing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message":    "Listing created successfully",
			"listing_id": listing.ID,
		},
	})
}

// List returns listings, newest first, optionally filtered by category.
func (h *ListingHandlers) List(c *gin.Context) {
	listings, err := h.listRepo.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list listings"})
		return
	}

	out := make([]gin.H, 0, len(listings))
	for _, l := range listings {
		out = append(out, gin.H{
			"id":          l.ID,
			"user_id":     l.UserID,
			"title":       l.Title,
			"description": l.Description,
			"price":       l.Price,
			"category":    l.Category,
			"created_at":  l.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}
