package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventpass/eventpass-api/internal/domain"
	"github.com/eventpass/eventpass-api/internal/repository"
)

var (
	ErrEnrollmentNotFound = repository.ErrEnrollmentNotFound
	ErrTicketNotFound     = repository.ErrTicketNotFound
	ErrPaymentRequired    = errors.New("ticket does not grant hotel access")
)

type EntitlementEnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID uint) (domain.Enrollment, error)
}

type EntitlementTicketRepository interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID uint) (domain.Ticket, error)
}

// EntitlementService is the single source of truth for "may this user view
// hotel inventory". The chain is always enrollment, then ticket, then the
// payment gate, and it is re-evaluated on every call: payment state can
// change between requests and must never be served from a cache.
type EntitlementService struct {
	enrollments EntitlementEnrollmentRepository
	tickets     EntitlementTicketRepository
}

func NewEntitlementService(enrollments EntitlementEnrollmentRepository, tickets EntitlementTicketRepository) *EntitlementService {
	return &EntitlementService{
		enrollments: enrollments,
		tickets:     tickets,
	}
}

func (s *EntitlementService) CheckHotelAccess(ctx context.Context, userID uint) error {
	if userID == 0 {
		return ErrEnrollmentNotFound
	}

	enrollment, err := s.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return ErrEnrollmentNotFound
		}

		return fmt.Errorf("s.enrollments.FindByUserID -> %w", err)
	}

	ticket, err := s.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return ErrTicketNotFound
		}

		return fmt.Errorf("s.tickets.FindByEnrollmentID -> %w", err)
	}

	if !ticket.GrantsHotelAccess() {
		return ErrPaymentRequired
	}

	return nil
}
