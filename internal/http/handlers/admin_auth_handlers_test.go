package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/LiteBots/VelorieMarket/domain"
	"github.com/LiteBots/VelorieMarket/internal/mocks"
)

func setupAdminAuthRouter(svc domain.AdminAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminAuthHandlers(svc)
	r := gin.New()
	r.POST("/api/admin/login", h.Login)
	r.POST("/api/admin/verify", h.Verify)
	r.POST("/api/admin/logout", h.Logout)
	return r
}

func postJSON(r *gin.Engine, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuthHandlers_Login(t *testing.T) {
	t.Run("valid password", func(t *testing.T) {
		svc := &mocks.MockAdminAuthService{
			BeginLoginFunc: func(_ context.Context, secret string) (string, error) {
				assert.Equal(t, "s3cret", secret)
				return "R1", nil
			},
		}
		w := postJSON(setupAdminAuthRouter(svc), "/api/admin/login", gin.H{"password": "s3cret"}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "R1", resp["recipient_id"])
	})

	t.Run("invalid password", func(t *testing.T) {
		svc := &mocks.MockAdminAuthService{
			BeginLoginFunc: func(context.Context, string) (string, error) {
				return "", domain.ErrInvalidCredential
			},
		}
		w := postJSON(setupAdminAuthRouter(svc), "/api/admin/login", gin.H{"password": "wrong"}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing password field", func(t *testing.T) {
		w := postJSON(setupAdminAuthRouter(&mocks.MockAdminAuthService{}), "/api/admin/login", gin.H{}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminAuthHandlers_Verify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"no pending challenge", domain.ErrNoPendingChallenge, http.StatusBadRequest},
		{"expired challenge", domain.ErrChallengeExpired, http.StatusBadRequest},
		{"invalid code", domain.ErrInvalidCode, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockAdminAuthService{
				VerifyCodeFunc: func(_ context.Context, recipientID, code string) (string, error) {
					if tt.err != nil {
						return "", tt.err
					}
					return "signed.jwt.token", nil
				},
			}
			w := postJSON(setupAdminAuthRouter(svc), "/api/admin/verify", gin.H{"recipient_id": "R1", "code": "123456"}, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.err == nil {
				var resp map[string]any
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "signed.jwt.token", resp["token"])
			}
		})
	}

	t.Run("missing fields", func(t *testing.T) {
		w := postJSON(setupAdminAuthRouter(&mocks.MockAdminAuthService{}), "/api/admin/verify", gin.H{"recipient_id": "R1"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminAuthHandlers_Logout(t *testing.T) {
	t.Run("with bearer token", func(t *testing.T) {
		var gotToken string
		svc := &mocks.MockAdminAuthService{
			LogoutFunc: func(_ context.Context, token string) error {
				gotToken = token
				return nil
			},
		}
		w := postJSON(setupAdminAuthRouter(svc), "/api/admin/logout", nil, map[string]string{
			"Authorization": "Bearer some.jwt",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "some.jwt", gotToken)
	})

	t.Run("without token still succeeds", func(t *testing.T) {
		called := false
		svc := &mocks.MockAdminAuthService{
			LogoutFunc: func(context.Context, string) error {
				called = true
				return nil
			},
		}
		w := postJSON(setupAdminAuthRouter(svc), "/api/admin/logout", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, called, "logout service should not run without a token")
	})
}
