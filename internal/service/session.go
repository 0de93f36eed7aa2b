package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventpass/eventpass-api/internal/domain"
	"github.com/eventpass/eventpass-api/internal/repository"
)

type SessionRepository interface {
	FindByUserIDAndToken(ctx context.Context, userID uint, token string) (domain.Session, error)
}

type SessionService struct {
	repo SessionRepository
}

func NewSessionService(repo SessionRepository) *SessionService {
	return &SessionService{
		repo: repo,
	}
}

// SessionExists reports whether the token is still backed by a live session.
// A verified token without a session row has been revoked.
func (s *SessionService) SessionExists(ctx context.Context, userID uint, token string) (bool, error) {
	_, err := s.repo.FindByUserIDAndToken(ctx, userID, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("s.repo.FindByUserIDAndToken -> %w", err)
	}

	return true, nil
}
