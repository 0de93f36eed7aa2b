package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrHotelNotFound = errors.New("hotel not found")

type Hotel struct {
	ID uint `gorm:"primaryKey"`

	Name  string `gorm:"not null"`
	Image string `gorm:"not null"`

	Rooms []Room `gorm:"foreignKey:HotelID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Room struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Capacity int    `gorm:"not null"`
	HotelID  uint   `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type HotelDAO struct {
	db *gorm.DB
}

func NewHotelDAO(db *gorm.DB) *HotelDAO {
	return &HotelDAO{
		db: db,
	}
}

func (d *HotelDAO) FindAll(ctx context.Context) ([]Hotel, error) {
	var hotels []Hotel

	result := d.db.WithContext(ctx).Preload("Rooms").Find(&hotels)
	if result.Error != nil {
		return nil, result.Error
	}

	return hotels, nil
}

func (d *HotelDAO) FindByID(ctx context.Context, id uint) (Hotel, error) {
	var hotel Hotel

	result := d.db.WithContext(ctx).Preload("Rooms").First(&hotel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Hotel{}, ErrHotelNotFound
		}

		return Hotel{}, result.Error
	}

	return hotel, nil
}
