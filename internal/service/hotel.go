package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventpass/eventpass-api/internal/domain"
	"github.com/eventpass/eventpass-api/internal/repository"
)

var ErrHotelNotFound = repository.ErrHotelNotFound

type HotelRepository interface {
	FindAll(ctx context.Context) ([]domain.Hotel, error)
	FindByID(ctx context.Context, id uint) (domain.Hotel, error)
}

type EntitlementChecker interface {
	CheckHotelAccess(ctx context.Context, userID uint) error
}

type HotelService struct {
	repo         HotelRepository
	entitlements EntitlementChecker
}

func NewHotelService(repo HotelRepository, entitlements EntitlementChecker) *HotelService {
	return &HotelService{
		repo:         repo,
		entitlements: entitlements,
	}
}

// GetAllHotels returns every hotel with its rooms. An empty collection is
// reported as not found rather than an empty body; clients rely on that.
func (s *HotelService) GetAllHotels(ctx context.Context, userID uint) ([]domain.Hotel, error) {
	if err := s.entitlements.CheckHotelAccess(ctx, userID); err != nil {
		return nil, err
	}

	hotels, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	if len(hotels) == 0 {
		return nil, ErrHotelNotFound
	}

	return hotels, nil
}

func (s *HotelService) GetHotelByID(ctx context.Context, hotelID, userID uint) (domain.Hotel, error) {
	// An invalid identifier never reaches the store.
	if hotelID == 0 {
		return domain.Hotel{}, ErrHotelNotFound
	}

	if err := s.entitlements.CheckHotelAccess(ctx, userID); err != nil {
		return domain.Hotel{}, err
	}

	hotel, err := s.repo.FindByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return domain.Hotel{}, ErrHotelNotFound
		}

		return domain.Hotel{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return hotel, nil
}
