package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventpass/eventpass-api/internal/domain"
	"github.com/eventpass/eventpass-api/internal/repository"
)

type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID uint) (domain.Enrollment, error)
	Create(ctx context.Context, enrollment domain.Enrollment) (domain.Enrollment, error)
	Update(ctx context.Context, enrollment domain.Enrollment) (domain.Enrollment, error)
}

type EnrollmentService struct {
	repo EnrollmentRepository
}

func NewEnrollmentService(repo EnrollmentRepository) *EnrollmentService {
	return &EnrollmentService{
		repo: repo,
	}
}

func (s *EnrollmentService) GetEnrollmentByUserID(ctx context.Context, userID uint) (domain.Enrollment, error) {
	enrollment, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return domain.Enrollment{}, ErrEnrollmentNotFound
		}

		return domain.Enrollment{}, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return enrollment, nil
}

// UpsertEnrollment creates the caller's enrollment on first submission and
// rewrites it afterwards. One enrollment per user.
func (s *EnrollmentService) UpsertEnrollment(ctx context.Context, enrollment domain.Enrollment) (domain.Enrollment, error) {
	existing, err := s.repo.FindByUserID(ctx, enrollment.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			created, createErr := s.repo.Create(ctx, enrollment)
			if createErr != nil {
				return domain.Enrollment{}, fmt.Errorf("s.repo.Create -> %w", createErr)
			}

			return created, nil
		}

		return domain.Enrollment{}, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	enrollment.ID = existing.ID
	updated, err := s.repo.Update(ctx, enrollment)
	if err != nil {
		return domain.Enrollment{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
