package auth

import (
	"context"

	"github.com/LiteBots/VelorieMarket/domain"
)

// StaticCredentialStore implements domain.CredentialStore over the typed
// credential table loaded at startup. Immutable after construction.
type StaticCredentialStore struct {
	byPhrase map[string]string
}

// NewStaticCredentialStore builds the lookup table from resolved config
// entries. Uniqueness is validated by the config loader.
func NewStaticCredentialStore(creds []domain.AdminCredential) *StaticCredentialStore {
	byPhrase := make(map[string]string, len(creds))
	for _, c := range creds {
		byPhrase[c.SecretPhrase] = c.RecipientID
	}
	return &StaticCredentialStore{byPhrase: byPhrase}
}

// Resolve implements domain.CredentialStore
func (s *StaticCredentialStore) Resolve(_ context.Context, secretPhrase string) (string, bool) {
	if secretPhrase == "" {
		return "", false
	}
	recipientID, ok := s.byPhrase[secretPhrase]
	return recipientID, ok
}

var _ domain.CredentialStore = (*StaticCredentialStore)(nil)
