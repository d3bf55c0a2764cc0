package usecases

import (
	"context"
	"fmt"

	"github.com/kitlog-inc/kitlog/internal/domain/user"
	apperrors "github.com/kitlog-inc/kitlog/internal/shared/errors"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
	"github.com/kitlog-inc/kitlog/internal/shared/services/sanitize"
)

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterResult struct {
	User *user.User
}

type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	sanitizer      *sanitize.Service
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	sanitizer *sanitize.Service,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		sanitizer:      sanitizer,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	email := user.NormalizeEmail(cmd.Email)

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.NewFieldError("email", "The email has already been taken.")
	}

	passwordHash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	name := uc.sanitizer.Clean(cmd.Name)
	newUser, err := user.NewUser(name, email, passwordHash)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent registration can win the race past the existence check;
		// the unique index is the source of truth.
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewFieldError("email", "The email has already been taken.")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID)

	return &RegisterResult{User: newUser}, nil
}
