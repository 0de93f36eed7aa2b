package repository

import (
	"context"
	"fmt"

	"github.com/eventpass/eventpass-api/internal/domain"
	"github.com/eventpass/eventpass-api/internal/repository/dao"
)

var (
	ErrTicketNotFound     = dao.ErrTicketNotFound
	ErrTicketTypeNotFound = dao.ErrTicketTypeNotFound
)

type TicketDAO interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID uint) (dao.Ticket, error)
	Insert(ctx context.Context, ticket dao.Ticket) (dao.Ticket, error)
	FindTypeByID(ctx context.Context, id uint) (dao.TicketType, error)
	ListTypes(ctx context.Context) ([]dao.TicketType, error)
}

type TicketRepository struct {
	dao TicketDAO
}

func NewTicketRepository(dao TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

func (r *TicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID uint) (domain.Ticket, error) {
	found, err := r.dao.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.FindByEnrollmentID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TicketRepository) Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	created, err := r.dao.Insert(ctx, dao.Ticket{
		EnrollmentID: ticket.EnrollmentID,
		TicketTypeID: ticket.TicketTypeID,
		Status:       ticket.Status,
	})
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TicketRepository) FindTypeByID(ctx context.Context, id uint) (domain.TicketType, error) {
	found, err := r.dao.FindTypeByID(ctx, id)
	if err != nil {
		return domain.TicketType{}, fmt.Errorf("r.dao.FindTypeByID -> %w", err)
	}

	return r.typeDAOToDomain(found), nil
}

func (r *TicketRepository) ListTypes(ctx context.Context) ([]domain.TicketType, error) {
	found, err := r.dao.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListTypes -> %w", err)
	}

	ticketTypes := make([]domain.TicketType, len(found))
	for i, t := range found {
		ticketTypes[i] = r.typeDAOToDomain(t)
	}

	return ticketTypes, nil
}

func (r *TicketRepository) daoToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:           t.ID,
		EnrollmentID: t.EnrollmentID,
		TicketTypeID: t.TicketTypeID,
		Status:       t.Status,
		TicketType:   r.typeDAOToDomain(t.TicketType),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (r *TicketRepository) typeDAOToDomain(t dao.TicketType) domain.TicketType {
	return domain.TicketType{
		ID:            t.ID,
		Name:          t.Name,
		Price:         t.Price,
		IsRemote:      t.IsRemote,
		IncludesHotel: t.IncludesHotel,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
