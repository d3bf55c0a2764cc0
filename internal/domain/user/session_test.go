package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitlog-inc/kitlog/internal/shared/biztime"
)

func TestNewSession(t *testing.T) {
	t.Run("mints session with hashed token", func(t *testing.T) {
		expiresAt := biztime.NowUTC().Add(24 * time.Hour)

		session, token, err := NewSession(42, expiresAt)
		require.NoError(t, err)

		assert.NotEmpty(t, session.ID)
		assert.Equal(t, uint(42), session.UserID)
		assert.Len(t, token, 64)
		assert.NotEqual(t, token, session.TokenHash)
		assert.Equal(t, HashToken(token), session.TokenHash)
		assert.Equal(t, expiresAt, session.ExpiresAt)
	})

	t.Run("tokens are unique per session", func(t *testing.T) {
		expiresAt := biztime.NowUTC().Add(24 * time.Hour)

		s1, t1, err := NewSession(1, expiresAt)
		require.NoError(t, err)
		s2, t2, err := NewSession(1, expiresAt)
		require.NoError(t, err)

		assert.NotEqual(t, t1, t2)
		assert.NotEqual(t, s1.ID, s2.ID)
		assert.NotEqual(t, s1.TokenHash, s2.TokenHash)
	})

	t.Run("rejects missing user ID", func(t *testing.T) {
		_, _, err := NewSession(0, biztime.NowUTC().Add(time.Hour))
		assert.Error(t, err)
	})
}

func TestSessionIsExpired(t *testing.T) {
	session := &Session{ExpiresAt: biztime.NowUTC().Add(time.Hour)}
	assert.False(t, session.IsExpired())

	session.ExpiresAt = biztime.NowUTC().Add(-time.Minute)
	assert.True(t, session.IsExpired())
}

func TestHashToken(t *testing.T) {
	h1 := HashToken("token-a")
	h2 := HashToken("token-a")
	h3 := HashToken("token-b")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64)
}
