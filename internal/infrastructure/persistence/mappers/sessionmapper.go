package mappers

import (
	"github.com/kitlog-inc/kitlog/internal/domain/user"
	"github.com/kitlog-inc/kitlog/internal/infrastructure/persistence/models"
)

// SessionMapper handles the conversion between Session domain entities and persistence models.
type SessionMapper interface {
	ToModel(s *user.Session) *models.SessionModel
	ToDomain(model *models.SessionModel) *user.Session
}

// SessionMapperImpl is the concrete implementation of SessionMapper.
type SessionMapperImpl struct{}

// NewSessionMapper creates a new SessionMapper.
func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

func (m *SessionMapperImpl) ToModel(s *user.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:         s.ID,
		UserID:     s.UserID,
		TokenHash:  s.TokenHash,
		ExpiresAt:  s.ExpiresAt,
		LastUsedAt: s.LastUsedAt,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *SessionMapperImpl) ToDomain(model *models.SessionModel) *user.Session {
	return &user.Session{
		ID:         model.ID,
		UserID:     model.UserID,
		TokenHash:  model.TokenHash,
		ExpiresAt:  model.ExpiresAt,
		LastUsedAt: model.LastUsedAt,
		CreatedAt:  model.CreatedAt,
	}
}
