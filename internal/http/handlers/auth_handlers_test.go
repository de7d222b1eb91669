package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/LiteBots/VelorieMarket/domain"
	"github.com/LiteBots/VelorieMarket/internal/mocks"
)

func setupAuthRouter(svc domain.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandlers(svc)
	r := gin.New()
	r.POST("/api/register", h.Register)
	r.POST("/api/login", h.Login)
	r.POST("/api/logout", func(c *gin.Context) {
		c.Set("session_id", "sess_7_1")
		h.Logout(c)
	})
	return r
}

func TestAuthHandlers_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			RegisterFunc: func(_ context.Context, username, email, password string) (*domain.User, error) {
				return &domain.User{ID: 42, Username: username, Email: email, Role: "freelancer"}, nil
			},
		}
		w := postJSON(setupAuthRouter(svc), "/api/register", gin.H{
			"username": "ann",
			"email":    "ann@example.com",
			"password": "secret1",
		}, nil)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "42")
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			RegisterFunc: func(context.Context, string, string, string) (*domain.User, error) {
				return nil, domain.ErrUserAlreadyExists
			},
		}
		w := postJSON(setupAuthRouter(svc), "/api/register", gin.H{
			"username": "ann",
			"email":    "ann@example.com",
			"password": "secret1",
		}, nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password rejected by binding", func(t *testing.T) {
		w := postJSON(setupAuthRouter(&mocks.MockAuthService{}), "/api/register", gin.H{
			"username": "ann",
			"email":    "ann@example.com",
			"password": "abc",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandlers_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			LoginFunc: func(context.Context, string, string) (*domain.AuthResult, error) {
				return &domain.AuthResult{
					User:        &domain.User{ID: 7, Username: "ann", Email: "ann@example.com", Role: "freelancer"},
					AccessToken: "signed.jwt",
					SessionID:   "sess_7_1",
					ExpiresIn:   3600,
				}, nil
			},
		}
		w := postJSON(setupAuthRouter(svc), "/api/login", gin.H{
			"email":    "ann@example.com",
			"password": "secret1",
		}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "signed.jwt")
	})

	t.Run("bad credentials", func(t *testing.T) {
		w := postJSON(setupAuthRouter(&mocks.MockAuthService{}), "/api/login", gin.H{
			"email":    "ann@example.com",
			"password": "wrong",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandlers_Logout(t *testing.T) {
	deleted := ""
	svc := &mocks.MockAuthService{
		LogoutFunc: func(_ context.Context, sessionID string) error {
			deleted = sessionID
			return nil
		},
	}
	w := postJSON(setupAuthRouter(svc), "/api/logout", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sess_7_1", deleted)
}
