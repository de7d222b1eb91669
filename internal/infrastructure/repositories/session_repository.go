package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LiteBots/VelorieMarket/domain"
)

// SessionRepositoryImpl stores marketplace sessions in Redis as JSON under
// "session:<id>", where the id carries the owning user and creation time
// (sess_<userID>_<unixNano>). The redis key expires with the session so
// abandoned logins clean themselves up.
type SessionRepositoryImpl struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewSessionRepository creates a new session repository. defaultTTL is the
// key lifetime used when a session carries no usable expiry of its own.
func NewSessionRepository(client *redis.Client, defaultTTL time.Duration) domain.SessionRepository {
	return &SessionRepositoryImpl{client: client, defaultTTL: defaultTTL}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Create implements domain.SessionRepository
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := r.defaultTTL
	if until := time.Until(session.ExpiresAt); until > 0 {
		ttl = until
	}
	return r.client.Set(ctx, sessionKey(session.ID), data, ttl).Err()
}

// FindByID implements domain.SessionRepository. The stored expiry is
// checked as well as the key TTL; a session past its ExpiresAt is deleted
// on sight.
func (r *SessionRepositoryImpl) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if session.ExpiresAt.Before(time.Now()) {
		r.client.Del(ctx, sessionKey(sessionID))
		return nil, domain.ErrSessionExpired
	}

	return &session, nil
}

// Delete implements domain.SessionRepository
func (r *SessionRepositoryImpl) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}
