package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventpass/eventpass-api/internal/domain"
	"github.com/eventpass/eventpass-api/internal/repository"
)

var ErrTicketTypeNotFound = repository.ErrTicketTypeNotFound

type TicketRepository interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID uint) (domain.Ticket, error)
	Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	FindTypeByID(ctx context.Context, id uint) (domain.TicketType, error)
	ListTypes(ctx context.Context) ([]domain.TicketType, error)
}

type TicketEnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID uint) (domain.Enrollment, error)
}

type TicketService struct {
	repo        TicketRepository
	enrollments TicketEnrollmentRepository
}

func NewTicketService(repo TicketRepository, enrollments TicketEnrollmentRepository) *TicketService {
	return &TicketService{
		repo:        repo,
		enrollments: enrollments,
	}
}

func (s *TicketService) GetTicketByUserID(ctx context.Context, userID uint) (domain.Ticket, error) {
	enrollment, err := s.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return domain.Ticket{}, ErrEnrollmentNotFound
		}

		return domain.Ticket{}, fmt.Errorf("s.enrollments.FindByUserID -> %w", err)
	}

	ticket, err := s.repo.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return domain.Ticket{}, ErrTicketNotFound
		}

		return domain.Ticket{}, fmt.Errorf("s.repo.FindByEnrollmentID -> %w", err)
	}

	return ticket, nil
}

// ReserveTicket creates a RESERVED ticket for the caller's enrollment.
// Payment confirmation happens out of band and flips the status to PAID.
func (s *TicketService) ReserveTicket(ctx context.Context, userID, ticketTypeID uint) (domain.Ticket, error) {
	enrollment, err := s.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return domain.Ticket{}, ErrEnrollmentNotFound
		}

		return domain.Ticket{}, fmt.Errorf("s.enrollments.FindByUserID -> %w", err)
	}

	ticketType, err := s.repo.FindTypeByID(ctx, ticketTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketTypeNotFound) {
			return domain.Ticket{}, ErrTicketTypeNotFound
		}

		return domain.Ticket{}, fmt.Errorf("s.repo.FindTypeByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Ticket{
		EnrollmentID: enrollment.ID,
		TicketTypeID: ticketType.ID,
		Status:       domain.TicketStatusReserved,
	})
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TicketService) ListTicketTypes(ctx context.Context) ([]domain.TicketType, error) {
	ticketTypes, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListTypes -> %w", err)
	}

	return ticketTypes, nil
}
