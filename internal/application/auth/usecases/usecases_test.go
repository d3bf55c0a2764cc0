package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitlog-inc/kitlog/internal/domain/user"
	sharedConfig "github.com/kitlog-inc/kitlog/internal/shared/config"
	apperrors "github.com/kitlog-inc/kitlog/internal/shared/errors"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
	"github.com/kitlog-inc/kitlog/internal/shared/services/sanitize"
)

// fakeUserRepo is an in-memory user.Repository for usecase tests.
type fakeUserRepo struct {
	users  map[uint]*user.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[uint]*user.User),
		nextID: 1,
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	u.ID = r.nextID
	r.nextID++
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.GetByEmail(ctx, email)
	return u != nil, err
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

// fakeSessionRepo is an in-memory user.SessionRepository.
type fakeSessionRepo struct {
	sessions map[string]*user.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*user.Session)}
}

func (r *fakeSessionRepo) Create(s *user.Session) error {
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) GetByID(sessionID string) (*user.Session, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSessionRepo) GetByTokenHash(tokenHash string) (*user.Session, error) {
	for _, s := range r.sessions {
		if s.TokenHash == tokenHash {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Update(s *user.Session) error {
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) Delete(sessionID string) error {
	delete(r.sessions, sessionID)
	return nil
}

func (r *fakeSessionRepo) DeleteByUserID(userID uint) error {
	for id, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeleteExpired() error {
	for id, s := range r.sessions {
		if s.IsExpired() {
			delete(r.sessions, id)
		}
	}
	return nil
}

// fakeHasher avoids bcrypt cost in unit tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return assert.AnError
	}
	return nil
}

var testSessionConfig = sharedConfig.SessionConfig{ExpDays: 30}

func registerTestUser(t *testing.T, userRepo *fakeUserRepo, email, password string) *user.User {
	t.Helper()

	uc := NewRegisterUseCase(userRepo, fakeHasher{}, sanitize.NewService(), logger.NewLogger())
	result, err := uc.Execute(context.Background(), RegisterCommand{
		Name:     "Test User",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return result.User
}

func TestRegisterUseCase(t *testing.T) {
	log := logger.NewLogger()
	sanitizer := sanitize.NewService()

	t.Run("registers user with normalized email", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUseCase(repo, fakeHasher{}, sanitizer, log)

		result, err := uc.Execute(context.Background(), RegisterCommand{
			Name:     "  Jamie  ",
			Email:    "Jamie@Example.COM",
			Password: "secret-password",
		})
		require.NoError(t, err)
		assert.NotZero(t, result.User.ID)
		assert.Equal(t, "Jamie", result.User.Name)
		assert.Equal(t, "jamie@example.com", result.User.Email)
		assert.Equal(t, "hashed:secret-password", result.User.PasswordHash)
	})

	t.Run("strips markup from name", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUseCase(repo, fakeHasher{}, sanitizer, log)

		result, err := uc.Execute(context.Background(), RegisterCommand{
			Name:     `<img src=x onerror=alert(1)>Jamie`,
			Email:    "jamie@example.com",
			Password: "secret-password",
		})
		require.NoError(t, err)
		assert.Equal(t, "Jamie", result.User.Name)
	})

	t.Run("duplicate email yields field error", func(t *testing.T) {
		repo := newFakeUserRepo()
		registerTestUser(t, repo, "taken@example.com", "secret-password")

		uc := NewRegisterUseCase(repo, fakeHasher{}, sanitizer, log)
		_, err := uc.Execute(context.Background(), RegisterCommand{
			Name:     "Other",
			Email:    "TAKEN@example.com",
			Password: "secret-password",
		})
		require.Error(t, err)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.True(t, apperrors.IsValidationError(err))
		assert.Equal(t, "The email has already been taken.", appErr.Fields["email"])
	})
}

func TestLoginUseCase(t *testing.T) {
	log := logger.NewLogger()

	t.Run("valid credentials mint a session token", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		sessionRepo := newFakeSessionRepo()
		registered := registerTestUser(t, userRepo, "jamie@example.com", "secret-password")

		uc := NewLoginUseCase(userRepo, sessionRepo, fakeHasher{}, testSessionConfig, log)
		result, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "jamie@example.com",
			Password: "secret-password",
		})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, result.User.ID)
		assert.Len(t, result.Token, 64)

		stored, err := sessionRepo.GetByTokenHash(user.HashToken(result.Token))
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, registered.ID, stored.UserID)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		sessionRepo := newFakeSessionRepo()
		registerTestUser(t, userRepo, "jamie@example.com", "secret-password")

		uc := NewLoginUseCase(userRepo, sessionRepo, fakeHasher{}, testSessionConfig, log)

		_, wrongPassErr := uc.Execute(context.Background(), LoginCommand{
			Email:    "jamie@example.com",
			Password: "wrong",
		})
		_, unknownEmailErr := uc.Execute(context.Background(), LoginCommand{
			Email:    "nobody@example.com",
			Password: "secret-password",
		})

		require.Error(t, wrongPassErr)
		require.Error(t, unknownEmailErr)
		assert.Equal(t,
			apperrors.GetAppError(wrongPassErr).Message,
			apperrors.GetAppError(unknownEmailErr).Message)
	})

	t.Run("each login mints a distinct token", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		sessionRepo := newFakeSessionRepo()
		registerTestUser(t, userRepo, "jamie@example.com", "secret-password")

		uc := NewLoginUseCase(userRepo, sessionRepo, fakeHasher{}, testSessionConfig, log)

		first, err := uc.Execute(context.Background(), LoginCommand{Email: "jamie@example.com", Password: "secret-password"})
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), LoginCommand{Email: "jamie@example.com", Password: "secret-password"})
		require.NoError(t, err)

		assert.NotEqual(t, first.Token, second.Token)
	})
}

func TestLogoutUseCase(t *testing.T) {
	log := logger.NewLogger()
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	registerTestUser(t, userRepo, "jamie@example.com", "secret-password")

	loginUC := NewLoginUseCase(userRepo, sessionRepo, fakeHasher{}, testSessionConfig, log)

	first, err := loginUC.Execute(context.Background(), LoginCommand{Email: "jamie@example.com", Password: "secret-password"})
	require.NoError(t, err)
	second, err := loginUC.Execute(context.Background(), LoginCommand{Email: "jamie@example.com", Password: "secret-password"})
	require.NoError(t, err)

	firstSession, err := sessionRepo.GetByTokenHash(user.HashToken(first.Token))
	require.NoError(t, err)

	uc := NewLogoutUseCase(sessionRepo, log)
	require.NoError(t, uc.Execute(context.Background(), LogoutCommand{SessionID: firstSession.ID}))

	gone, err := sessionRepo.GetByTokenHash(user.HashToken(first.Token))
	require.NoError(t, err)
	assert.Nil(t, gone, "presented session should be revoked")

	kept, err := sessionRepo.GetByTokenHash(user.HashToken(second.Token))
	require.NoError(t, err)
	assert.NotNil(t, kept, "other sessions should stay valid")
}
