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

type fakeHotelRepo struct {
	hotels    []domain.Hotel
	hotel     domain.Hotel
	listErr   error
	findErr   error
	findCalls int
}

func (f *fakeHotelRepo) FindAll(_ context.Context) ([]domain.Hotel, error) {
	return f.hotels, f.listErr
}

func (f *fakeHotelRepo) FindByID(_ context.Context, _ uint) (domain.Hotel, error) {
	f.findCalls++
	return f.hotel, f.findErr
}

type fakeEntitlements struct {
	err   error
	calls int
}

func (f *fakeEntitlements) CheckHotelAccess(_ context.Context, _ uint) error {
	f.calls++
	return f.err
}

func TestHotelService_GetAllHotels(t *testing.T) {
	hotel := domain.Hotel{
		ID:    7,
		Name:  "Driven Resort",
		Rooms: []domain.Room{{ID: 1, Name: "101", Capacity: 2, HotelID: 7}},
	}

	t.Run("returns hotels when entitled", func(t *testing.T) {
		svc := NewHotelService(&fakeHotelRepo{hotels: []domain.Hotel{hotel}}, &fakeEntitlements{})

		hotels, err := svc.GetAllHotels(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, hotels, 1)
		assert.Equal(t, uint(7), hotels[0].ID)
		assert.Len(t, hotels[0].Rooms, 1)
	})

	t.Run("empty collection is not found", func(t *testing.T) {
		svc := NewHotelService(&fakeHotelRepo{hotels: []domain.Hotel{}}, &fakeEntitlements{})

		_, err := svc.GetAllHotels(context.Background(), 1)

		assert.ErrorIs(t, err, ErrHotelNotFound)
	})

	t.Run("entitlement failures propagate unchanged", func(t *testing.T) {
		for _, wantErr := range []error{ErrEnrollmentNotFound, ErrTicketNotFound, ErrPaymentRequired} {
			svc := NewHotelService(&fakeHotelRepo{hotels: []domain.Hotel{hotel}}, &fakeEntitlements{err: wantErr})

			_, err := svc.GetAllHotels(context.Background(), 1)

			assert.ErrorIs(t, err, wantErr)
		}
	})
}

func TestHotelService_GetHotelByID(t *testing.T) {
	hotel := domain.Hotel{
		ID:    7,
		Name:  "Driven Resort",
		Rooms: []domain.Room{{ID: 1, Name: "101", Capacity: 2, HotelID: 7}},
	}

	t.Run("returns the hotel with rooms", func(t *testing.T) {
		svc := NewHotelService(&fakeHotelRepo{hotel: hotel}, &fakeEntitlements{})

		found, err := svc.GetHotelByID(context.Background(), 7, 1)

		require.NoError(t, err)
		assert.Equal(t, hotel, found)
	})

	t.Run("zero id short-circuits before any lookup", func(t *testing.T) {
		repo := &fakeHotelRepo{hotel: hotel}
		entitlements := &fakeEntitlements{}
		svc := NewHotelService(repo, entitlements)

		_, err := svc.GetHotelByID(context.Background(), 0, 1)

		require.ErrorIs(t, err, ErrHotelNotFound)
		assert.Zero(t, repo.findCalls)
		assert.Zero(t, entitlements.calls)
	})

	t.Run("missing hotel is not found", func(t *testing.T) {
		svc := NewHotelService(&fakeHotelRepo{findErr: repository.ErrHotelNotFound}, &fakeEntitlements{})

		_, err := svc.GetHotelByID(context.Background(), 99, 1)

		assert.ErrorIs(t, err, ErrHotelNotFound)
	})

	t.Run("entitlement failure propagates", func(t *testing.T) {
		repo := &fakeHotelRepo{hotel: hotel}
		svc := NewHotelService(repo, &fakeEntitlements{err: ErrPaymentRequired})

		_, err := svc.GetHotelByID(context.Background(), 7, 1)

		require.ErrorIs(t, err, ErrPaymentRequired)
		assert.Zero(t, repo.findCalls, "gate runs before the hotel fetch")
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		svc := NewHotelService(&fakeHotelRepo{findErr: storeErr}, &fakeEntitlements{})

		_, err := svc.GetHotelByID(context.Background(), 7, 1)

		assert.ErrorIs(t, err, storeErr)
	})
}
