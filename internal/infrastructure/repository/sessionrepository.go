package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/kitlog-inc/kitlog/internal/domain/user"
	"github.com/kitlog-inc/kitlog/internal/infrastructure/persistence/mappers"
	"github.com/kitlog-inc/kitlog/internal/infrastructure/persistence/models"
	"github.com/kitlog-inc/kitlog/internal/shared/biztime"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
)

// SessionRepository implements the session repository interface backed by GORM
type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
	logger logger.Interface
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB, logger logger.Interface) user.SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
		logger: logger,
	}
}

// Create persists a new session
func (r *SessionRepository) Create(session *user.Session) error {
	model := r.mapper.ToModel(session)

	if err := r.db.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create session", "user_id", session.UserID, "error", err)
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetByID retrieves a session by its ID, returning nil when not found
func (r *SessionRepository) GetByID(sessionID string) (*user.Session, error) {
	var model models.SessionModel

	if err := r.db.Where("id = ?", sessionID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get session by ID", "error", err)
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// GetByTokenHash retrieves a session by its token hash, returning nil when not found
func (r *SessionRepository) GetByTokenHash(tokenHash string) (*user.Session, error) {
	var model models.SessionModel

	if err := r.db.Where("token_hash = ?", tokenHash).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get session by token hash", "error", err)
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// Update persists the mutable session fields
func (r *SessionRepository) Update(session *user.Session) error {
	result := r.db.Model(&models.SessionModel{}).
		Where("id = ?", session.ID).
		Updates(map[string]interface{}{
			"expires_at":   session.ExpiresAt,
			"last_used_at": session.LastUsedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update session", "error", result.Error)
		return fmt.Errorf("failed to update session: %w", result.Error)
	}

	return nil
}

// Delete removes a single session
func (r *SessionRepository) Delete(sessionID string) error {
	if err := r.db.Where("id = ?", sessionID).Delete(&models.SessionModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete session", "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// DeleteByUserID removes all sessions belonging to a user
func (r *SessionRepository) DeleteByUserID(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.SessionModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete sessions by user", "user_id", userID, "error", err)
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	return nil
}

// DeleteExpired removes every session past its expiry
func (r *SessionRepository) DeleteExpired() error {
	result := r.db.Where("expires_at < ?", biztime.NowUTC()).Delete(&models.SessionModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete expired sessions", "error", result.Error)
		return fmt.Errorf("failed to delete expired sessions: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Infow("expired sessions removed", "count", result.RowsAffected)
	}

	return nil
}
