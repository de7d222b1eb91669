package domain

import "context"

// CredentialStore resolves an admin shared secret to the Discord account
// that receives the second factor. The table is static for the process
// lifetime.
type CredentialStore interface {
	Resolve(ctx context.Context, secretPhrase string) (recipientID string, ok bool)
}

// Notifier defines the outbound Discord operations the backend needs.
// Delivery failures are reported but callers treat them as non-fatal.
type Notifier interface {
	SendDirect(ctx context.Context, recipientID, message string) error
	SendToChannel(ctx context.Context, channelID, message string) error
	RenameChannel(ctx context.Context, channelID, name string) error
}

// AdminAuthService gates admin access behind a shared secret plus a
// time-boxed code delivered over Discord.
type AdminAuthService interface {
	// BeginLogin checks the secret, issues a pending code for the mapped
	// recipient and sends it as a DM. The returned recipient ID is the
	// correlation handle for VerifyCode.
	BeginLogin(ctx context.Context, secretPhrase string) (string, error)
	// VerifyCode checks the submitted code and, on success, mints a signed
	// admin session token.
	VerifyCode(ctx context.Context, recipientID, code string) (string, error)
	// Logout emits a logout alert for a valid token. It never invalidates
	// the token itself and never fails.
	Logout(ctx context.Context, token string) error
}

// AuthService defines marketplace user authentication
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
}

// TokenService defines token operations
type TokenService interface {
	GenerateAdminToken(recipientID string) (string, error)
	ValidateAdminToken(token string) (*AdminClaims, error)
	GenerateUserToken(userID uint, role, sessionID string) (string, error)
	ValidateUserToken(token string) (*TokenClaims, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	List(ctx context.Context) ([]*User, error)
	Count(ctx context.Context) (int64, error)
	AdjustBalance(ctx context.Context, userID uint, delta int64) (int64, error)
	Delete(ctx context.Context, userID uint) error
	ListByVerificationStatus(ctx context.Context, statuses ...string) ([]*User, error)
	SetVerification(ctx context.Context, userID uint, state VerificationState) error
	SetVerificationByEmail(ctx context.Context, email string, state VerificationState) (*User, error)
}

// ListingRepository defines listing data access operations
type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	List(ctx context.Context, category string) ([]*Listing, error)
	Count(ctx context.Context) (int64, error)
}

// TransactionRepository defines wallet ledger access operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	ListRecent(ctx context.Context, limit int) ([]*Transaction, error)
	SumSpent(ctx context.Context) (int64, error)
}

// InfoBarRepository defines announcement banner access operations
type InfoBarRepository interface {
	// Get returns the bar for a page, creating a default inactive one if
	// none exists yet.
	Get(ctx context.Context, page string) (*InfoBar, error)
	Upsert(ctx context.Context, bar *InfoBar) error
}

// VerificationService handles the paid profile-verification badge: users
// buy a pending request out of their wallet, admins approve, revoke or
// grant manually.
type VerificationService interface {
	Buy(ctx context.Context, userID uint) error
	Approve(ctx context.Context, userID uint) error
	Revoke(ctx context.Context, userID uint) error
	Grant(ctx context.Context, email string, days int) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// SessionRepository defines marketplace session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// AdminClaims are the claims carried by an admin session token.
type AdminClaims struct {
	RecipientID string `json:"recipient_id"`
	Role        string `json:"role"`
	IssuedAt    int64  `json:"iat"`
	ExpiresAt   int64  `json:"exp"`
}

// TokenClaims represents marketplace user token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Announcer keeps a public Discord channel name in sync with the member
// count.
type Announcer interface {
	Start(ctx context.Context)
	UpdateOnce(ctx context.Context) error
}
