package usecases

import (
	"context"
	"fmt"

	"github.com/kitlog-inc/kitlog/internal/domain/user"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute revokes the presented session only. Sessions on other clients
// stay valid until they expire or log out themselves.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if err := uc.sessionRepo.Delete(cmd.SessionID); err != nil {
		uc.logger.Errorw("failed to delete session", "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	uc.logger.Infow("user logged out", "session_id", cmd.SessionID)
	return nil
}
