package mocks

import (
	"context"
	"sync"

	"github.com/LiteBots/VelorieMarket/domain"
)

// MockCredentialStore is a mock implementation of domain.CredentialStore
type MockCredentialStore struct {
	ResolveFunc func(ctx context.Context, secretPhrase string) (string, bool)
}

func (m *MockCredentialStore) Resolve(ctx context.Context, secretPhrase string) (string, bool) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, secretPhrase)
	}
	return "", false
}

// SentMessage records a single message delivered through MockNotifier.
type SentMessage struct {
	Target  string
	Content string
}

// MockNotifier is a mock implementation of domain.Notifier. It records every
// delivery so tests can assert on what was sent and where.
type MockNotifier struct {
	mu sync.Mutex

	SendDirectFunc    func(ctx context.Context, userID, content string) error
	SendToChannelFunc func(ctx context.Context, channelID, content string) error
	RenameChannelFunc func(ctx context.Context, channelID, name string) error

	DirectMessages  []SentMessage
	ChannelMessages []SentMessage
	Renames         []SentMessage
}

func (m *MockNotifier) SendDirect(ctx context.Context, userID, content string) error {
	m.mu.Lock()
	m.DirectMessages = append(m.DirectMessages, SentMessage{Target: userID, Content: content})
	m.mu.Unlock()
	if m.SendDirectFunc != nil {
		return m.SendDirectFunc(ctx, userID, content)
	}
	return nil
}

func (m *MockNotifier) SendToChannel(ctx context.Context, channelID, content string) error {
	m.mu.Lock()
	m.ChannelMessages = append(m.ChannelMessages, SentMessage{Target: channelID, Content: content})
	m.mu.Unlock()
	if m.SendToChannelFunc != nil {
		return m.SendToChannelFunc(ctx, channelID, content)
	}
	return nil
}

// RenameCount is safe to call while another goroutine is delivering.
func (m *MockNotifier) RenameCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Renames)
}

func (m *MockNotifier) RenameChannel(ctx context.Context, channelID, name string) error {
	m.mu.Lock()
	m.Renames = append(m.Renames, SentMessage{Target: channelID, Content: name})
	m.mu.Unlock()
	if m.RenameChannelFunc != nil {
		return m.RenameChannelFunc(ctx, channelID, name)
	}
	return nil
}

// MockTokenService is a mock implementation of domain.TokenService
type MockTokenService struct {
	GenerateAdminTokenFunc func(recipientID string) (string, error)
	ValidateAdminTokenFunc func(token string) (*domain.AdminClaims, error)
	GenerateUserTokenFunc  func(userID uint, role, sessionID string) (string, error)
	ValidateUserTokenFunc  func(token string) (*domain.TokenClaims, error)
}

func (m *MockTokenService) GenerateAdminToken(recipientID string) (string, error) {
	if m.GenerateAdminTokenFunc != nil {
		return m.GenerateAdminTokenFunc(recipientID)
	}
	return "admin-token-" + recipientID, nil
}

func (m *MockTokenService) ValidateAdminToken(token string) (*domain.AdminClaims, error) {
	if m.ValidateAdminTokenFunc != nil {
		return m.ValidateAdminTokenFunc(token)
	}
	return &domain.AdminClaims{Role: "admin"}, nil
}

func (m *MockTokenService) GenerateUserToken(userID uint, role, sessionID string) (string, error) {
	if m.GenerateUserTokenFunc != nil {
		return m.GenerateUserTokenFunc(userID, role, sessionID)
	}
	return "user-token", nil
}

func (m *MockTokenService) ValidateUserToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateUserTokenFunc != nil {
		return m.ValidateUserTokenFunc(token)
	}
	return &domain.TokenClaims{}, nil
}

// MockAdminAuthService is a mock implementation of domain.AdminAuthService
type MockAdminAuthService struct {
	BeginLoginFunc func(ctx context.Context, secretPhrase string) (string, error)
	VerifyCodeFunc func(ctx context.Context, recipientID, code string) (string, error)
	LogoutFunc     func(ctx context.Context, token string) error
}

func (m *MockAdminAuthService) BeginLogin(ctx context.Context, secretPhrase string) (string, error) {
	if m.BeginLoginFunc != nil {
		return m.BeginLoginFunc(ctx, secretPhrase)
	}
	return "", domain.ErrInvalidCredential
}

func (m *MockAdminAuthService) VerifyCode(ctx context.Context, recipientID, code string) (string, error) {
	if m.VerifyCodeFunc != nil {
		return m.VerifyCodeFunc(ctx, recipientID, code)
	}
	return "", domain.ErrNoPendingChallenge
}

func (m *MockAdminAuthService) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return nil
}

// MockAuthService is a mock implementation of domain.AuthService
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, username, email, password string) (*domain.User, error)
	LoginFunc    func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	LogoutFunc   func(ctx context.Context, sessionID string) error
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password)
	}
	return &domain.User{ID: 1, Username: username, Email: email, Role: "freelancer"}, nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	CreateFunc                   func(ctx context.Context, user *domain.User) error
	FindByEmailFunc              func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc                 func(ctx context.Context, id uint) (*domain.User, error)
	UpdateFunc                   func(ctx context.Context, user *domain.User) error
	ListFunc                     func(ctx context.Context) ([]*domain.User, error)
	CountFunc                    func(ctx context.Context) (int64, error)
	AdjustBalanceFunc            func(ctx context.Context, id uint, delta int64) (int64, error)
	DeleteFunc                   func(ctx context.Context, id uint) error
	ListByVerificationStatusFunc func(ctx context.Context, statuses ...string) ([]*domain.User, error)
	SetVerificationFunc          func(ctx context.Context, userID uint, state domain.VerificationState) error
	SetVerificationByEmailFunc   func(ctx context.Context, email string, state domain.VerificationState) (*domain.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockUserRepository) AdjustBalance(ctx context.Context, id uint, delta int64) (int64, error) {
	if m.AdjustBalanceFunc != nil {
		return m.AdjustBalanceFunc(ctx, id, delta)
	}
	return 0, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) ListByVerificationStatus(ctx context.Context, statuses ...string) ([]*domain.User, error) {
	if m.ListByVerificationStatusFunc != nil {
		return m.ListByVerificationStatusFunc(ctx, statuses...)
	}
	return nil, nil
}

func (m *MockUserRepository) SetVerification(ctx context.Context, userID uint, state domain.VerificationState) error {
	if m.SetVerificationFunc != nil {
		return m.SetVerificationFunc(ctx, userID, state)
	}
	return nil
}

func (m *MockUserRepository) SetVerificationByEmail(ctx context.Context, email string, state domain.VerificationState) (*domain.User, error) {
	if m.SetVerificationByEmailFunc != nil {
		return m.SetVerificationByEmailFunc(ctx, email, state)
	}
	return nil, domain.ErrUserNotFound
}

// MockListingRepository is a mock implementation of domain.ListingRepository
type MockListingRepository struct {
	CreateFunc func(ctx context.Context, listing *domain.Listing) error
	ListFunc   func(ctx context.Context, category string) ([]*domain.Listing, error)
	CountFunc  func(ctx context.Context) (int64, error)
}

func (m *MockListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, listing)
	}
	return nil
}

func (m *MockListingRepository) List(ctx context.Context, category string) ([]*domain.Listing, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, category)
	}
	return nil, nil
}

func (m *MockListingRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	CreateFunc     func(ctx context.Context, tx *domain.Transaction) error
	ListRecentFunc func(ctx context.Context, limit int) ([]*domain.Transaction, error)
	SumSpentFunc   func(ctx context.Context) (int64, error)
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	return nil
}

func (m *MockTransactionRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Transaction, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockTransactionRepository) SumSpent(ctx context.Context) (int64, error) {
	if m.SumSpentFunc != nil {
		return m.SumSpentFunc(ctx)
	}
	return 0, nil
}

// MockSessionRepository is a mock implementation of domain.SessionRepository
type MockSessionRepository struct {
	CreateFunc   func(ctx context.Context, session *domain.Session) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.Session, error)
	DeleteFunc   func(ctx context.Context, id string) error
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *MockSessionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockInfoBarRepository is a mock implementation of domain.InfoBarRepository
type MockInfoBarRepository struct {
	GetFunc    func(ctx context.Context, page string) (*domain.InfoBar, error)
	UpsertFunc func(ctx context.Context, bar *domain.InfoBar) error
}

func (m *MockInfoBarRepository) Get(ctx context.Context, page string) (*domain.InfoBar, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, page)
	}
	return &domain.InfoBar{Page: page}, nil
}

func (m *MockInfoBarRepository) Upsert(ctx context.Context, bar *domain.InfoBar) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, bar)
	}
	return nil
}

// MockVerificationService is a mock implementation of domain.VerificationService
type MockVerificationService struct {
	BuyFunc     func(ctx context.Context, userID uint) error
	ApproveFunc func(ctx context.Context, userID uint) error
	RevokeFunc  func(ctx context.Context, userID uint) error
	GrantFunc   func(ctx context.Context, email string, days int) (*domain.User, error)
	ListFunc    func(ctx context.Context) ([]*domain.User, error)
}

func (m *MockVerificationService) Buy(ctx context.Context, userID uint) error {
	if m.BuyFunc != nil {
		return m.BuyFunc(ctx, userID)
	}
	return nil
}

func (m *MockVerificationService) Approve(ctx context.Context, userID uint) error {
	if m.ApproveFunc != nil {
		return m.ApproveFunc(ctx, userID)
	}
	return nil
}

func (m *MockVerificationService) Revoke(ctx context.Context, userID uint) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, userID)
	}
	return nil
}

func (m *MockVerificationService) Grant(ctx context.Context, email string, days int) (*domain.User, error) {
	if m.GrantFunc != nil {
		return m.GrantFunc(ctx, email, days)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockVerificationService) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// MockAnnouncer is a mock implementation of domain.Announcer. It counts
// UpdateOnce calls so tests can assert the nudge happened.
type MockAnnouncer struct {
	mu sync.Mutex

	StartFunc      func(ctx context.Context)
	UpdateOnceFunc func(ctx context.Context) error

	updateCalls int
}

func (m *MockAnnouncer) Start(ctx context.Context) {
	if m.StartFunc != nil {
		m.StartFunc(ctx)
	}
}

func (m *MockAnnouncer) UpdateOnce(ctx context.Context) error {
	m.mu.Lock()
	m.updateCalls++
	m.mu.Unlock()
	if m.UpdateOnceFunc != nil {
		return m.UpdateOnceFunc(ctx)
	}
	return nil
}

// UpdateCalls reports how many times UpdateOnce ran.
func (m *MockAnnouncer) UpdateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateCalls
}

// MockPasswordService is a mock implementation of domain.PasswordService
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed-" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed-"+password
}

// Compile-time interface checks
var (
	_ domain.CredentialStore       = (*MockCredentialStore)(nil)
	_ domain.Notifier              = (*MockNotifier)(nil)
	_ domain.TokenService          = (*MockTokenService)(nil)
	_ domain.AdminAuthService      = (*MockAdminAuthService)(nil)
	_ domain.AuthService           = (*MockAuthService)(nil)
	_ domain.UserRepository        = (*MockUserRepository)(nil)
	_ domain.ListingRepository     = (*MockListingRepository)(nil)
	_ domain.TransactionRepository = (*MockTransactionRepository)(nil)
	_ domain.SessionRepository     = (*MockSessionRepository)(nil)
	_ domain.InfoBarRepository     = (*MockInfoBarRepository)(nil)
	_ domain.VerificationService   = (*MockVerificationService)(nil)
	_ domain.Announcer             = (*MockAnnouncer)(nil)
	_ domain.PasswordService       = (*MockPasswordService)(nil)
)
