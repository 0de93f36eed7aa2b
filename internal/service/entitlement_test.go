package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpass/eventpass-api/internal/domain"
	"github.com/eventpass/eventpass-api/internal/repository"
)

type fakeEnrollmentRepo struct {
	enrollment domain.Enrollment
	err        error
	calls      int
}

func (f *fakeEnrollmentRepo) FindByUserID(_ context.Context, _ uint) (domain.Enrollment, error) {
	f.calls++
	return f.enrollment, f.err
}

type fakeTicketRepo struct {
	ticket domain.Ticket
	err    error
}

func (f *fakeTicketRepo) FindByEnrollmentID(_ context.Context, _ uint) (domain.Ticket, error) {
	return f.ticket, f.err
}

func paidHotelTicket() domain.Ticket {
	return domain.Ticket{
		ID:           1,
		EnrollmentID: 10,
		Status:       domain.TicketStatusPaid,
		TicketType: domain.TicketType{
			ID:            2,
			IsRemote:      false,
			IncludesHotel: true,
		},
	}
}

func TestEntitlementService_CheckHotelAccess(t *testing.T) {
	tests := []struct {
		name        string
		enrollments *fakeEnrollmentRepo
		tickets     *fakeTicketRepo
		wantErr     error
	}{
		{
			name:        "entitled user passes",
			enrollments: &fakeEnrollmentRepo{enrollment: domain.Enrollment{ID: 10, UserID: 1}},
			tickets:     &fakeTicketRepo{ticket: paidHotelTicket()},
			wantErr:     nil,
		},
		{
			name:        "no enrollment",
			enrollments: &fakeEnrollmentRepo{err: repository.ErrEnrollmentNotFound},
			tickets:     &fakeTicketRepo{},
			wantErr:     ErrEnrollmentNotFound,
		},
		{
			name:        "no ticket",
			enrollments: &fakeEnrollmentRepo{enrollment: domain.Enrollment{ID: 10, UserID: 1}},
			tickets:     &fakeTicketRepo{err: repository.ErrTicketNotFound},
			wantErr:     ErrTicketNotFound,
		},
		{
			name:        "ticket not paid",
			enrollments: &fakeEnrollmentRepo{enrollment: domain.Enrollment{ID: 10, UserID: 1}},
			tickets: &fakeTicketRepo{ticket: func() domain.Ticket {
				ticket := paidHotelTicket()
				ticket.Status = domain.TicketStatusReserved
				return ticket
			}()},
			wantErr: ErrPaymentRequired,
		},
		{
			name:        "remote ticket type",
			enrollments: &fakeEnrollmentRepo{enrollment: domain.Enrollment{ID: 10, UserID: 1}},
			tickets: &fakeTicketRepo{ticket: func() domain.Ticket {
				ticket := paidHotelTicket()
				ticket.TicketType.IsRemote = true
				return ticket
			}()},
			wantErr: ErrPaymentRequired,
		},
		{
			name:        "ticket type without hotel",
			enrollments: &fakeEnrollmentRepo{enrollment: domain.Enrollment{ID: 10, UserID: 1}},
			tickets: &fakeTicketRepo{ticket: func() domain.Ticket {
				ticket := paidHotelTicket()
				ticket.TicketType.IncludesHotel = false
				return ticket
			}()},
			wantErr: ErrPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEntitlementService(tt.enrollments, tt.tickets)

			err := svc.CheckHotelAccess(context.Background(), 1)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestEntitlementService_CheckHotelAccess_ZeroUserID(t *testing.T) {
	enrollments := &fakeEnrollmentRepo{enrollment: domain.Enrollment{ID: 10}}
	svc := NewEntitlementService(enrollments, &fakeTicketRepo{ticket: paidHotelTicket()})

	err := svc.CheckHotelAccess(context.Background(), 0)

	require.ErrorIs(t, err, ErrEnrollmentNotFound)
	assert.Zero(t, enrollments.calls, "invalid identity must not reach the store")
}

func TestEntitlementService_CheckHotelAccess_StoreFailure(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := NewEntitlementService(&fakeEnrollmentRepo{err: storeErr}, &fakeTicketRepo{})

	err := svc.CheckHotelAccess(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrEnrollmentNotFound)
}
