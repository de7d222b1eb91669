package domain

import "time"

// User represents a marketplace member. Balance is the virtual-currency
// wallet, in hundredths of a vPLN.
type User struct {
	ID                 uint
	Username           string
	Email              string
	PasswordHash       string
	Role               string
	DiscordID          string
	Avatar             string
	Balance            int64
	IsVerified         bool
	VerificationStatus string
	VerifiedUntil      *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Profile-verification statuses. A purchase moves the user from none to
// pending; an admin decision moves pending to active or back to none.
const (
	VerificationNone    = "none"
	VerificationPending = "pending"
	VerificationActive  = "active"
)

// VerificationState is the verification snapshot applied to a user as one
// unit: the badge flag, the status and the expiry.
type VerificationState struct {
	IsVerified bool
	Status     string
	Until      *time.Time
}

// InfoBar is the announcement banner shown on a site page. One bar exists
// per page; updates upsert.
type InfoBar struct {
	ID        uint
	Page      string
	IsActive  bool
	Text      string
	BgColor   string
	TextColor string
	LinkURL   string
	LinkText  string
}

// Listing is a marketplace offer posted by a user.
type Listing struct {
	ID          uint
	UserID      uint
	Title       string
	Description string
	Price       int64
	Category    string
	CreatedAt   time.Time
}

// Transaction is a wallet ledger entry. Amount is signed: positive for
// credits, negative for debits.
type Transaction struct {
	ID          uint
	UserID      uint
	Amount      int64
	Type        string
	Description string
	CreatedAt   time.Time
}

// AdminCredential is one entry of the static admin credential table: a
// shared secret mapped to the Discord account that receives the
// second-factor code.
type AdminCredential struct {
	SecretPhrase string
	RecipientID  string
}

// PendingOTP is an outstanding admin login challenge. At most one exists
// per recipient; a newer login attempt for the same recipient overwrites it.
type PendingOTP struct {
	RecipientID string
	Code        string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User        *User
	AccessToken string
	SessionID   string
	ExpiresIn   int64
}

// Session represents a marketplace user session
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Stats is the aggregate snapshot shown in the admin panel.
type Stats struct {
	UserCount    int64 `json:"user_count"`
	ListingCount int64 `json:"listing_count"`
	BalanceSpent int64 `json:"balance_spent"`
}
