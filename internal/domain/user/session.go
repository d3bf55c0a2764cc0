package user

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/kitlog-inc/kitlog/internal/shared/biztime"
)

// Session is an opaque bearer token grant. Only the SHA-256 hash of the
// token is persisted; the plaintext is returned to the client once at login.
type Session struct {
	ID         string
	UserID     uint
	TokenHash  string
	ExpiresAt  time.Time
	LastUsedAt time.Time
	CreatedAt  time.Time
}

// NewSession mints a session for the given user and returns the session
// together with the plaintext token. The plaintext is never stored.
func NewSession(userID uint, expiresAt time.Time) (*Session, string, error) {
	if userID == 0 {
		return nil, "", fmt.Errorf("user ID is required")
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session ID: %w", err)
	}

	token, err := generateToken()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	now := biztime.NowUTC()
	return &Session{
		ID:         id,
		UserID:     userID,
		TokenHash:  HashToken(token),
		ExpiresAt:  expiresAt,
		LastUsedAt: now,
		CreatedAt:  now,
	}, token, nil
}

func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

func (s *Session) UpdateActivity() {
	s.LastUsedAt = biztime.NowUTC()
}

// HashToken derives the stored lookup hash from a plaintext bearer token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func generateSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

type SessionRepository interface {
	Create(session *Session) error
	GetByID(sessionID string) (*Session, error)
	GetByTokenHash(tokenHash string) (*Session, error)
	Update(session *Session) error
	Delete(sessionID string) error
	DeleteByUserID(userID uint) error
	DeleteExpired() error
}
