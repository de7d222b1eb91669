package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/LiteBots/VelorieMarket/domain"
	"github.com/LiteBots/VelorieMarket/internal/mocks"
)

func setupInfoBarRouter(h *InfoBarHandlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/infobar", h.Get)
	r.POST("/api/admin/infobar", h.Update)
	return r
}

func TestInfoBarHandlers_Get(t *testing.T) {
	var requestedPage string
	h := NewInfoBarHandlers(&mocks.MockInfoBarRepository{
		GetFunc: func(_ context.Context, page string) (*domain.InfoBar, error) {
			requestedPage = page
			return &domain.InfoBar{Page: page, IsActive: true, Text: "Sale on now", BgColor: "#ff0354"}, nil
		},
	})

	t.Run("defaults to the home page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/infobar", nil)
		w := httptest.NewRecorder()
		setupInfoBarRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "home", requestedPage)
		assert.Contains(t, w.Body.String(), "Sale on now")
	})

	t.Run("honours the page query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/infobar?page=market", nil)
		w := httptest.NewRecorder()
		setupInfoBarRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "market", requestedPage)
	})
}

func TestInfoBarHandlers_Update(t *testing.T) {
	t.Run("upserts the bar", func(t *testing.T) {
		var saved *domain.InfoBar
		h := NewInfoBarHandlers(&mocks.MockInfoBarRepository{
			UpsertFunc: func(_ context.Context, bar *domain.InfoBar) error {
				saved = bar
				return nil
			},
		})

		w := postJSON(setupInfoBarRouter(h), "/api/admin/infobar", gin.H{
			"page":      "market",
			"is_active": true,
			"text":      "Maintenance tonight",
			"bg_color":  "#222222",
		}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, saved)
		assert.Equal(t, "market", saved.Page)
		assert.True(t, saved.IsActive)
		assert.Equal(t, "Maintenance tonight", saved.Text)
	})

	t.Run("empty page defaults to home", func(t *testing.T) {
		var saved *domain.InfoBar
		h := NewInfoBarHandlers(&mocks.MockInfoBarRepository{
			UpsertFunc: func(_ context.Context, bar *domain.InfoBar) error {
				saved = bar
				return nil
			},
		})

		w := postJSON(setupInfoBarRouter(h), "/api/admin/infobar", gin.H{"text": "Hello"}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "home", saved.Page)
	})

	t.Run("missing text rejected", func(t *testing.T) {
		h := NewInfoBarHandlers(&mocks.MockInfoBarRepository{})

		w := postJSON(setupInfoBarRouter(h), "/api/admin/infobar", gin.H{"page": "home"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
