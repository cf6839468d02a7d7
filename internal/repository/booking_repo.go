package repository

import (
	"context"
	"errors"
	"time"

	"fitbook/internal/domain"

	"gorm.io/gorm"
)

// ErrSlotsExhausted is returned when the conditional slot decrement claims
// zero rows, meaning the class had no free slot left at commit time.
var ErrSlotsExhausted = errors.New("no slots left for class")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ClassID     int64     `gorm:"column:class_id;not null"`
	ClientName  string    `gorm:"column:client_name;size:100;not null"`
	ClientEmail string    `gorm:"column:client_email;size:100;not null;index"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:          m.ID,
		ClassID:     m.ClassID,
		ClientName:  m.ClientName,
		ClientEmail: m.ClientEmail,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:          b.ID,
		ClassID:     b.ClassID,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		CreatedAt:   b.CreatedAt,
	}
}

// BookingDetails is a booking row joined with its class, as needed by the
// listing endpoints. DateTime is the class start instant in UTC.
type BookingDetails struct {
	ID          int64     `gorm:"column:id"`
	ClassID     int64     `gorm:"column:class_id"`
	ClassName   string    `gorm:"column:class_name"`
	DateTime    time.Time `gorm:"column:date_time"`
	Instructor  string    `gorm:"column:instructor"`
	ClientName  string    `gorm:"column:client_name"`
	ClientEmail string    `gorm:"column:client_email"`
}

// Create inserts the booking and decrements the class slot count in one
// transaction. The decrement is conditional on available_slots > 0 so two
// racing requests for the last slot cannot both commit.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&classModel{}).
			Where("id = ? AND available_slots > 0", b.ClassID).
			UpdateColumn("available_slots", gorm.Expr("available_slots - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSlotsExhausted
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

func (r *BookingRepository) GetByEmailWithClass(ctx context.Context, email string) ([]BookingDetails, error) {
	q := `
SELECT b.id, b.class_id, c.name AS class_name, c.date_time, c.instructor,
       b.client_name, b.client_email
FROM bookings b
JOIN fitness_classes c ON c.id = b.class_id
WHERE b.client_email = ?
ORDER BY b.id ASC
`
	var rows []BookingDetails
	tx := r.db.WithContext(ctx).Raw(q, email).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) GetAllWithClass(ctx context.Context) ([]BookingDetails, error) {
	q := `
SELECT b.id, b.class_id, c.name AS class_name, c.date_time, c.instructor,
       b.client_name, b.client_email
FROM bookings b
JOIN fitness_classes c ON c.id = b.class_id
ORDER BY b.id ASC
`
	var rows []BookingDetails
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) CountByClassID(ctx context.Context, classID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("class_id = ?", classID).Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}
