package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LiteBots/VelorieMarket/domain"
)

// InfoBarHandlers serves the announcement banner: public read, admin write.
type InfoBarHandlers struct {
	infoRepo domain.InfoBarRepository
}

// NewInfoBarHandlers creates new info bar handlers
func NewInfoBarHandlers(infoRepo domain.InfoBarRepository) *InfoBarHandlers {
	return &InfoBarHandlers{infoRepo: infoRepo}
}

// InfoBarUpdateRequest represents an admin banner update
type InfoBarUpdateRequest struct {
	Page      string `json:"page"`
	IsActive  bool   `json:"is_active"`
	Text      string `json:"text" binding:"required"`
	BgColor   string `json:"bg_color"`
	TextColor string `json:"text_color"`
	LinkURL   string `json:"link_url"`
	LinkText  string `json:"link_text"`
}

// Get returns the bar for the requested page (default "home"), creating an
// inactive default on first read.
func (h *InfoBarHandlers) Get(c *gin.Context) {
	page := c.Query("page")
	if page == "" {
		page = "home"
	}

	bar, err := h.infoRepo.Get(c.Request.Context(), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load info bar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": barJSON(bar)})
}

// Update upserts the bar for a page.
func (h *InfoBarHandlers) Update(c *gin.Context) {
	var req InfoBarUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Page == "" {
		req.Page = "home"
	}

	bar := &domain.InfoBar{
		Page:      req.Page,
		IsActive:  req.IsActive,
		Text:      req.Text,
		BgColor:   req.BgColor,
		TextColor: req.TextColor,
		LinkURL:   req.LinkURL,
		LinkText:  req.LinkText,
	}
	if err := h.infoRepo.Upsert(c.Request.Context(), bar); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save info bar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": barJSON(bar)})
}

func barJSON(bar *domain.InfoBar) gin.H {
	return gin.H{
		"page":       bar.Page,
		"is_active":  bar.IsActive,
		"text":       bar.Text,
		"bg_color":   bar.BgColor,
		"text_color": bar.TextColor,
		"link_url":   bar.LinkURL,
		"link_text":  bar.LinkText,
	}
}
