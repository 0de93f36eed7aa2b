package repository

import (
	"context"
	"fmt"

	"github.com/eventpass/eventpass-api/internal/domain"
	"github.com/eventpass/eventpass-api/internal/repository/dao"
)

var (
	ErrEnrollmentNotFound = dao.ErrEnrollmentNotFound
	ErrEnrollmentExists   = dao.ErrEnrollmentExists
)

type EnrollmentDAO interface {
	FindByUserID(ctx context.Context, userID uint) (dao.Enrollment, error)
	Insert(ctx context.Context, enrollment dao.Enrollment) (dao.Enrollment, error)
	Update(ctx context.Context, enrollment dao.Enrollment) (dao.Enrollment, error)
}

type EnrollmentRepository struct {
	dao EnrollmentDAO
}

func NewEnrollmentRepository(dao EnrollmentDAO) *EnrollmentRepository {
	return &EnrollmentRepository{
		dao: dao,
	}
}

func (r *EnrollmentRepository) FindByUserID(ctx context.Context, userID uint) (domain.Enrollment, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return domain.Enrollment{}, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment domain.Enrollment) (domain.Enrollment, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(enrollment))
	if err != nil {
		return domain.Enrollment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EnrollmentRepository) Update(ctx context.Context, enrollment domain.Enrollment) (domain.Enrollment, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(enrollment))
	if err != nil {
		return domain.Enrollment{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EnrollmentRepository) daoToDomain(e dao.Enrollment) domain.Enrollment {
	enrollment := domain.Enrollment{
		ID:        e.ID,
		UserID:    e.UserID,
		Name:      e.Name,
		CPF:       e.CPF,
		Birthday:  e.Birthday,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	if e.Address.ID != 0 {
		enrollment.Address = &domain.Address{
			ID:            e.Address.ID,
			EnrollmentID:  e.Address.EnrollmentID,
			CEP:           e.Address.CEP,
			Street:        e.Address.Street,
			City:          e.Address.City,
			State:         e.Address.State,
			Number:        e.Address.Number,
			Neighborhood:  e.Address.Neighborhood,
			AddressDetail: e.Address.AddressDetail,
			CreatedAt:     e.Address.CreatedAt,
			UpdatedAt:     e.Address.UpdatedAt,
		}
	}

	return enrollment
}

func (r *EnrollmentRepository) domainToDAO(e domain.Enrollment) dao.Enrollment {
	daoEnrollment := dao.Enrollment{
		ID:       e.ID,
		UserID:   e.UserID,
		Name:     e.Name,
		CPF:      e.CPF,
		Birthday: e.Birthday,
		Phone:    e.Phone,
	}

	if e.Address != nil {
		daoEnrollment.Address = dao.Address{
			ID:            e.Address.ID,
			EnrollmentID:  e.Address.EnrollmentID,
			CEP:           e.Address.CEP,
			Street:        e.Address.Street,
			City:          e.Address.City,
			State:         e.Address.State,
			Number:        e.Address.Number,
			Neighborhood:  e.Address.Neighborhood,
			AddressDetail: e.Address.AddressDetail,
		}
	}

	return daoEnrollment
}
