package handlers

import (
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

func setupAdminRouter(h *AdminHandlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin/stats", h.Stats)
	r.GET("/api/admin/users", h.Users)
	r.DELETE("/api/admin/users/:id", h.DeleteUser)
	r.POST("/api/admin/users/:id/balance", h.AdjustBalance)
	r.GET("/api/admin/transactions", h.Transactions)
	r.GET("/api/admin/verifications", h.Verifications)
	r.POST("/api/admin/verifications/approve/:id", h.ApproveVerification)
	r.POST("/api/admin/verifications/revoke/:id", h.RevokeVerification)
	r.POST("/api/admin/verifications/manual", h.ManualVerification)
	return r
}

func TestAdminHandlers_Stats(t *testing.T) {
	h := NewAdminHandlers(
		&mocks.MockUserRepository{
			CountFunc: func(context.Context) (int64, error) { return 12, nil },
		},
		&mocks.MockListingRepository{
			CountFunc: func(context.Context) (int64, error) { return 4, nil },
		},
		&mocks.MockTransactionRepository{
			SumSpentFunc: func(context.Context) (int64, error) { return 900, nil },
		},
		&mocks.MockVerificationService{},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	w := httptest.NewRecorder()
	setupAdminRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			UserCount    int64 `json:"user_count"`
			ListingCount int64 `json:"listing_count"`
			BalanceSpent int64 `json:"balance_spent"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp.Data.UserCount)
	assert.Equal(t, int64(4), resp.Data.ListingCount)
	assert.Equal(t, int64(900), resp.Data.BalanceSpent)
}

func TestAdminHandlers_AdjustBalance(t *testing.T) {
	t.Run("credit records admin_add", func(t *testing.T) {
		var recorded *domain.Transaction
		h := NewAdminHandlers(
			&mocks.MockUserRepository{
				AdjustBalanceFunc: func(_ context.Context, id uint, delta int64) (int64, error) {
					assert.Equal(t, uint(7), id)
					assert.Equal(t, int64(500), delta)
					return 1500, nil
				},
			},
			&mocks.MockListingRepository{},
			&mocks.MockTransactionRepository{
				CreateFunc: func(_ context.Context, tx *domain.Transaction) error {
					recorded = tx
					return nil
				},
			},
			&mocks.MockVerificationService{},
		)

		w := postJSON(setupAdminRouter(h), "/api/admin/users/7/balance", gin.H{"amount": 500}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, recorded)
		assert.Equal(t, "admin_add", recorded.Type)
		assert.Equal(t, int64(500), recorded.Amount)
		assert.Contains(t, w.Body.String(), "1500")
	})

	t.Run("debit records admin_sub", func(t *testing.T) {
		var recorded *domain.Transaction
		h := NewAdminHandlers(
			&mocks.MockUserRepository{
				AdjustBalanceFunc: func(_ context.Context, _ uint, _ int64) (int64, error) {
					return 500, nil
				},
			},
			&mocks.MockListingRepository{},
			&mocks.MockTransactionRepository{
				CreateFunc: func(_ context.Context, tx *domain.Transaction) error {
					recorded = tx
					return nil
				},
			},
			&mocks.MockVerificationService{},
		)

		w := postJSON(setupAdminRouter(h), "/api/admin/users/7/balance", gin.H{"amount": -500}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, recorded)
		assert.Equal(t, "admin_sub", recorded.Type)
	})

	t.Run("unknown user", func(t *testing.T) {
		h := NewAdminHandlers(
			&mocks.MockUserRepository{
				AdjustBalanceFunc: func(context.Context, uint, int64) (int64, error) {
					return 0, domain.ErrUserNotFound
				},
			},
			&mocks.MockListingRepository{},
			&mocks.MockTransactionRepository{},
			&mocks.MockVerificationService{},
		)

		w := postJSON(setupAdminRouter(h), "/api/admin/users/9999/balance", gin.H{"amount": 10}, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad user id", func(t *testing.T) {
		h := NewAdminHandlers(&mocks.MockUserRepository{}, &mocks.MockListingRepository{}, &mocks.MockTransactionRepository{}, &mocks.MockVerificationService{})
		w := postJSON(setupAdminRouter(h), "/api/admin/users/abc/balance", gin.H{"amount": 10}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandlers_Users(t *testing.T) {
	h := NewAdminHandlers(
		&mocks.MockUserRepository{
			ListFunc: func(context.Context) ([]*domain.User, error) {
				return []*domain.User{
					{ID: 1, Username: "ann", Email: "ann@example.com", Role: "freelancer", Balance: 100, IsVerified: true, VerificationStatus: domain.VerificationActive},
					{ID: 2, Username: "bob", Email: "bob@example.com", Role: "freelancer", Balance: 0},
				}, nil
			},
		},
		&mocks.MockListingRepository{},
		&mocks.MockTransactionRepository{},
		&mocks.MockVerificationService{},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	w := httptest.NewRecorder()
	setupAdminRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ann@example.com")
	assert.Contains(t, w.Body.String(), "bob@example.com")
	assert.Contains(t, w.Body.String(), `"verification_status":"active"`)
}

func TestAdminHandlers_DeleteUser(t *testing.T) {
	t.Run("deletes existing user", func(t *testing.T) {
		var deleted uint
		h := NewAdminHandlers(
			&mocks.MockUserRepository{
				DeleteFunc: func(_ context.Context, id uint) error {
					deleted = id
					return nil
				},
			},
			&mocks.MockListingRepository{},
			&mocks.MockTransactionRepository{},
			&mocks.MockVerificationService{},
		)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/users/7", nil)
		w := httptest.NewRecorder()
		setupAdminRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(7), deleted)
	})

	t.Run("unknown user", func(t *testing.T) {
		h := NewAdminHandlers(
			&mocks.MockUserRepository{
				DeleteFunc: func(context.Context, uint) error { return domain.ErrUserNotFound },
			},
			&mocks.MockListingRepository{},
			&mocks.MockTransactionRepository{},
			&mocks.MockVerificationService{},
		)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/users/9999", nil)
		w := httptest.NewRecorder()
		setupAdminRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad user id", func(t *testing.T) {
		h := NewAdminHandlers(&mocks.MockUserRepository{}, &mocks.MockListingRepository{}, &mocks.MockTransactionRepository{}, &mocks.MockVerificationService{})

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/users/abc", nil)
		w := httptest.NewRecorder()
		setupAdminRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandlers_Verifications(t *testing.T) {
	h := NewAdminHandlers(
		&mocks.MockUserRepository{},
		&mocks.MockListingRepository{},
		&mocks.MockTransactionRepository{},
		&mocks.MockVerificationService{
			ListFunc: func(context.Context) ([]*domain.User, error) {
				return []*domain.User{
					{ID: 1, Username: "ann", Email: "ann@example.com", VerificationStatus: domain.VerificationPending},
				}, nil
			},
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/verifications", nil)
	w := httptest.NewRecorder()
	setupAdminRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"verification_status":"pending"`)
}

func TestAdminHandlers_VerificationDecisions(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		var approved uint
		h := NewAdminHandlers(
			&mocks.MockUserRepository{},
			&mocks.MockListingRepository{},
			&mocks.MockTransactionRepository{},
			&mocks.MockVerificationService{
				ApproveFunc: func(_ context.Context, id uint) error {
					approved = id
					return nil
				},
			},
		)

		w := postJSON(setupAdminRouter(h), "/api/admin/verifications/approve/7", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(7), approved)
	})

	t.Run("revoke", func(t *testing.T) {
		var revoked uint
		h := NewAdminHandlers(
			&mocks.MockUserRepository{},
			&mocks.MockListingRepository{},
			&mocks.MockTransactionRepository{},
			&mocks.MockVerificationService{
				RevokeFunc: func(_ context.Context, id uint) error {
					revoked = id
					return nil
				},
			},
		)

		w := postJSON(setupAdminRouter(h), "/api/admin/verifications/revoke/7", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(7), revoked)
	})

	t.Run("approve unknown user", func(t *testing.T) {
		h := NewAdminHandlers(
			&mocks.MockUserRepository{},
			&mocks.MockListingRepository{},
			&mocks.MockTransactionRepository{},
			&mocks.MockVerificationService{
				ApproveFunc: func(context.Context, uint) error { return domain.ErrUserNotFound },
			},
		)

		w := postJSON(setupAdminRouter(h), "/api/admin/verifications/approve/9999", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminHandlers_ManualVerification(t *testing.T) {
	t.Run("grants by email", func(t *testing.T) {
		h := NewAdminHandlers(
			&mocks.MockUserRepository{},
			&mocks.MockListingRepository{},
			&mocks.MockTransactionRepository{},
			&mocks.MockVerificationService{
				GrantFunc: func(_ context.Context, email string, days int) (*domain.User, error) {
					assert.Equal(t, "ann@example.com", email)
					assert.Equal(t, 14, days)
					return &domain.User{ID: 1, Email: email, IsVerified: true, VerificationStatus: domain.VerificationActive}, nil
				},
			},
		)

		w := postJSON(setupAdminRouter(h), "/api/admin/verifications/manual", gin.H{"email": "ann@example.com", "days": 14}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Verification granted")
	})

	t.Run("unknown email", func(t *testing.T) {
		h := NewAdminHandlers(
			&mocks.MockUserRepository{},
			&mocks.MockListingRepository{},
			&mocks.MockTransactionRepository{},
			&mocks.MockVerificationService{
				GrantFunc: func(context.Context, string, int) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				},
			},
		)

		w := postJSON(setupAdminRouter(h), "/api/admin/verifications/manual", gin.H{"email": "ghost@example.com", "days": 7}, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing days rejected", func(t *testing.T) {
		h := NewAdminHandlers(&mocks.MockUserRepository{}, &mocks.MockListingRepository{}, &mocks.MockTransactionRepository{}, &mocks.MockVerificationService{})

		w := postJSON(setupAdminRouter(h), "/api/admin/verifications/manual", gin.H{"email": "ann@example.com"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
