package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrEnrollmentExists   = errors.New("enrollment already exists")
)

type Enrollment struct {
	ID uint `gorm:"primaryKey"`

	UserID   uint      `gorm:"uniqueIndex;not null"`
	Name     string    `gorm:"not null"`
	CPF      string    `gorm:"not null"`
	Birthday time.Time `gorm:"not null"`
	Phone    string    `gorm:"not null"`

	Address Address `gorm:"foreignKey:EnrollmentID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Address struct {
	ID uint `gorm:"primaryKey"`

	EnrollmentID  uint   `gorm:"uniqueIndex;not null"`
	CEP           string `gorm:"not null"`
	Street        string `gorm:"not null"`
	City          string `gorm:"not null"`
	State         string `gorm:"not null"`
	Number        string `gorm:"not null"`
	Neighborhood  string `gorm:"not null"`
	AddressDetail string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EnrollmentDAO struct {
	db *gorm.DB
}

func NewEnrollmentDAO(db *gorm.DB) *EnrollmentDAO {
	return &EnrollmentDAO{
		db: db,
	}
}

func (d *EnrollmentDAO) FindByUserID(ctx context.Context, userID uint) (Enrollment, error) {
	var enrollment Enrollment

	result := d.db.WithContext(ctx).
		Preload("Address").
		First(&enrollment, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Enrollment{}, ErrEnrollmentNotFound
		}

		return Enrollment{}, result.Error
	}

	return enrollment, nil
}

func (d *EnrollmentDAO) Insert(ctx context.Context, enrollment Enrollment) (Enrollment, error) {
	result := d.db.WithContext(ctx).Create(&enrollment)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Enrollment{}, ErrEnrollmentExists
		}

		return Enrollment{}, result.Error
	}

	return enrollment, nil
}

// Update rewrites the enrollment row and its address in one transaction.
func (d *EnrollmentDAO) Update(ctx context.Context, enrollment Enrollment) (Enrollment, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Enrollment{}).
			Where("id = ?", enrollment.ID).
			Updates(map[string]any{
				"name":     enrollment.Name,
				"cpf":      enrollment.CPF,
				"birthday": enrollment.Birthday,
				"phone":    enrollment.Phone,
			}).Error; err != nil {
			return err
		}

		enrollment.Address.EnrollmentID = enrollment.ID

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "enrollment_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"cep", "street", "city", "state", "number", "neighborhood", "address_detail", "updated_at",
			}),
		}).Create(&enrollment.Address).Error
	})
	if err != nil {
		return Enrollment{}, err
	}

	return d.FindByUserID(ctx, enrollment.UserID)
}
