package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/kitlog-inc/kitlog/internal/domain/user"
	"github.com/kitlog-inc/kitlog/internal/shared/biztime"
	"github.com/kitlog-inc/kitlog/internal/shared/config"
	apperrors "github.com/kitlog-inc/kitlog/internal/shared/errors"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
	"github.com/kitlog-inc/kitlog/internal/shared/utils"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User      *user.User
	Token     string
	ExpiresAt time.Time
}

type LoginUseCase struct {
	userRepo      user.Repository
	sessionRepo   user.SessionRepository
	hasher        user.PasswordHasher
	sessionConfig config.SessionConfig
	logger        logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	sessionConfig config.SessionConfig,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		hasher:        hasher,
		sessionConfig: sessionConfig,
		logger:        logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := user.NormalizeEmail(cmd.Email)

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "email", utils.MaskEmail(email), "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Same error for unknown email and wrong password so the response
	// does not reveal whether the account exists
	if existingUser == nil {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	if err := uc.hasher.Verify(cmd.Password, existingUser.PasswordHash); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", existingUser.ID)
		return nil, apperrors.NewInvalidCredentialsError()
	}

	expiresAt := biztime.NowUTC().Add(time.Duration(uc.sessionConfig.ExpDays) * 24 * time.Hour)
	session, token, err := user.NewSession(existingUser.ID, expiresAt)
	if err != nil {
		uc.logger.Errorw("failed to mint session", "error", err)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := uc.sessionRepo.Create(session); err != nil {
		uc.logger.Errorw("failed to persist session", "error", err)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID, "session_id", session.ID)

	return &LoginResult{
		User:      existingUser,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
