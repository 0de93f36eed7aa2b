package repository

import (
	"context"
	"fmt"

	"github.com/eventpass/eventpass-api/internal/domain"
	"github.com/eventpass/eventpass-api/internal/repository/dao"
)

var ErrSessionNotFound = dao.ErrSessionNotFound

type SessionDAO interface {
	FindByUserIDAndToken(ctx context.Context, userID uint, token string) (dao.Session, error)
	Insert(ctx context.Context, session dao.Session) (dao.Session, error)
}

type SessionRepository struct {
	dao SessionDAO
}

func NewSessionRepository(dao SessionDAO) *SessionRepository {
	return &SessionRepository{
		dao: dao,
	}
}

func (r *SessionRepository) FindByUserIDAndToken(ctx context.Context, userID uint, token string) (domain.Session, error) {
	found, err := r.dao.FindByUserIDAndToken(ctx, userID, token)
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.FindByUserIDAndToken -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SessionRepository) Create(ctx context.Context, session domain.Session) (domain.Session, error) {
	created, err := r.dao.Insert(ctx, dao.Session{
		UserID: session.UserID,
		Token:  session.Token,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SessionRepository) daoToDomain(s dao.Session) domain.Session {
	return domain.Session{
		ID:        s.ID,
		UserID:    s.UserID,
		Token:     s.Token,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
