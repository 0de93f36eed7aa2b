package repository

import (
	"context"
	"fmt"

	"github.com/eventpass/eventpass-api/internal/domain"
	"github.com/eventpass/eventpass-api/internal/repository/dao"
)

var ErrHotelNotFound = dao.ErrHotelNotFound

type HotelDAO interface {
	FindAll(ctx context.Context) ([]dao.Hotel, error)
	FindByID(ctx context.Context, id uint) (dao.Hotel, error)
}

type HotelRepository struct {
	dao HotelDAO
}

func NewHotelRepository(dao HotelDAO) *HotelRepository {
	return &HotelRepository{
		dao: dao,
	}
}

func (r *HotelRepository) FindAll(ctx context.Context) ([]domain.Hotel, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	hotels := make([]domain.Hotel, len(found))
	for i, h := range found {
		hotels[i] = r.daoToDomain(h)
	}

	return hotels, nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id uint) (domain.Hotel, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *HotelRepository) daoToDomain(h dao.Hotel) domain.Hotel {
	rooms := make([]domain.Room, len(h.Rooms))
	for i, room := range h.Rooms {
		rooms[i] = domain.Room{
			ID:        room.ID,
			Name:      room.Name,
			Capacity:  room.Capacity,
			HotelID:   room.HotelID,
			CreatedAt: room.CreatedAt,
			UpdatedAt: room.UpdatedAt,
		}
	}

	return domain.Hotel{
		ID:        h.ID,
		Name:      h.Name,
		Image:     h.Image,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
		Rooms:     rooms,
	}
}
