package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpass/eventpass-api/internal/testhelper"
)

func TestDAO_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testhelper.StartPostgres(t)
	require.NoError(t, InitTables(db))

	ctx := context.Background()

	t.Run("hotels round trip with rooms", func(t *testing.T) {
		hotel := Hotel{
			Name:  "Driven Resort",
			Image: "https://example.com/resort.jpg",
			Rooms: []Room{
				{Name: "101", Capacity: 2},
				{Name: "102", Capacity: 3},
			},
		}
		require.NoError(t, db.Create(&hotel).Error)

		hotels, err := NewHotelDAO(db).FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, hotels, 1)
		assert.Len(t, hotels[0].Rooms, 2)

		found, err := NewHotelDAO(db).FindByID(ctx, hotel.ID)
		require.NoError(t, err)
		assert.Equal(t, "Driven Resort", found.Name)

		_, err = NewHotelDAO(db).FindByID(ctx, hotel.ID+1000)
		assert.ErrorIs(t, err, ErrHotelNotFound)
	})

	t.Run("one enrollment per user", func(t *testing.T) {
		enrollmentDAO := NewEnrollmentDAO(db)

		first, err := enrollmentDAO.Insert(ctx, Enrollment{
			UserID:   42,
			Name:     "Jane Doe",
			CPF:      "12345678901",
			Birthday: time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC),
			Phone:    "+5511987654321",
			Address: Address{
				CEP:          "01310100",
				Street:       "Avenida Paulista",
				City:         "Sao Paulo",
				State:        "SP",
				Number:       "1000",
				Neighborhood: "Bela Vista",
			},
		})
		require.NoError(t, err)
		require.NotZero(t, first.ID)

		_, err = enrollmentDAO.Insert(ctx, Enrollment{
			UserID:   42,
			Name:     "Jane Again",
			CPF:      "12345678901",
			Birthday: time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC),
			Phone:    "+5511987654321",
		})
		assert.ErrorIs(t, err, ErrEnrollmentExists)

		found, err := enrollmentDAO.FindByUserID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", found.Name)
		assert.Equal(t, "Sao Paulo", found.Address.City)

		updated, err := enrollmentDAO.Update(ctx, Enrollment{
			ID:       first.ID,
			UserID:   42,
			Name:     "Jane Updated",
			CPF:      "12345678901",
			Birthday: time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC),
			Phone:    "+5511987654321",
			Address: Address{
				CEP:          "01310100",
				Street:       "Avenida Paulista",
				City:         "Campinas",
				State:        "SP",
				Number:       "1000",
				Neighborhood: "Bela Vista",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane Updated", updated.Name)
		assert.Equal(t, "Campinas", updated.Address.City)
	})

	t.Run("tickets carry their type", func(t *testing.T) {
		ticketDAO := NewTicketDAO(db)

		ticketType := TicketType{Name: "Presential + Hotel", Price: 60000, IncludesHotel: true}
		require.NoError(t, db.Create(&ticketType).Error)

		enrollment, err := NewEnrollmentDAO(db).FindByUserID(ctx, 42)
		require.NoError(t, err)

		_, err = ticketDAO.FindByEnrollmentID(ctx, enrollment.ID)
		assert.ErrorIs(t, err, ErrTicketNotFound)

		ticket, err := ticketDAO.Insert(ctx, Ticket{
			EnrollmentID: enrollment.ID,
			TicketTypeID: ticketType.ID,
			Status:       "RESERVED",
		})
		require.NoError(t, err)
		assert.Equal(t, "RESERVED", ticket.Status)
		assert.True(t, ticket.TicketType.IncludesHotel)

		types, err := ticketDAO.ListTypes(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, types)

		_, err = ticketDAO.FindTypeByID(ctx, ticketType.ID+1000)
		assert.ErrorIs(t, err, ErrTicketTypeNotFound)
	})

	t.Run("sessions are looked up by user and token", func(t *testing.T) {
		sessionDAO := NewSessionDAO(db)

		session, err := sessionDAO.Insert(ctx, Session{UserID: 42, Token: "some-token"})
		require.NoError(t, err)
		require.NotZero(t, session.ID)

		found, err := sessionDAO.FindByUserIDAndToken(ctx, 42, "some-token")
		require.NoError(t, err)
		assert.Equal(t, uint(42), found.UserID)

		_, err = sessionDAO.FindByUserIDAndToken(ctx, 42, "revoked-token")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
