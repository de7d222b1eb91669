package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/LiteBots/VelorieMarket/domain"
)

// PasswordServiceImpl hashes marketplace user passwords with bcrypt. Admin
// secrets never pass through here; those are plain shared phrases resolved
// by the credential store.
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a bcrypt password service at the default cost.
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{cost: bcrypt.DefaultCost}
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify implements domain.PasswordService
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
