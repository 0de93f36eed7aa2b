package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
)

type Ticket struct {
	ID uint `gorm:"primaryKey"`

	EnrollmentID uint   `gorm:"not null;index"`
	TicketTypeID uint   `gorm:"not null"`
	Status       string `gorm:"not null"` // "RESERVED" or "PAID"

	TicketType TicketType

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TicketType struct {
	ID uint `gorm:"primaryKey"`

	Name          string `gorm:"not null"`
	Price         int    `gorm:"not null"`
	IsRemote      bool   `gorm:"not null"`
	IncludesHotel bool   `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

func (d *TicketDAO) FindByEnrollmentID(ctx context.Context, enrollmentID uint) (Ticket, error) {
	var ticket Ticket

	result := d.db.WithContext(ctx).
		Preload("TicketType").
		First(&ticket, "enrollment_id = ?", enrollmentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Ticket{}, ErrTicketNotFound
		}

		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) Insert(ctx context.Context, ticket Ticket) (Ticket, error) {
	result := d.db.WithContext(ctx).Create(&ticket)
	if result.Error != nil {
		return Ticket{}, result.Error
	}

	return d.FindByEnrollmentID(ctx, ticket.EnrollmentID)
}

func (d *TicketDAO) FindTypeByID(ctx context.Context, id uint) (TicketType, error) {
	var ticketType TicketType

	result := d.db.WithContext(ctx).First(&ticketType, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TicketType{}, ErrTicketTypeNotFound
		}

		return TicketType{}, result.Error
	}

	return ticketType, nil
}

func (d *TicketDAO) ListTypes(ctx context.Context) ([]TicketType, error) {
	var ticketTypes []TicketType

	result := d.db.WithContext(ctx).Find(&ticketTypes)
	if result.Error != nil {
		return nil, result.Error
	}

	return ticketTypes, nil
}
