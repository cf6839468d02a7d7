package booking

import (
	"context"

	"fitbook/internal/domain"
	"fitbook/internal/repository"
)

// ClassRepository is the class lookup needed by the booking pipeline.
type ClassRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.FitnessClass, error)
}

// BookingRepository persists bookings and serves the listing queries.
// Create must claim a class slot and insert the booking atomically.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByEmailWithClass(ctx context.Context, email string) ([]repository.BookingDetails, error)
	GetAllWithClass(ctx context.Context) ([]repository.BookingDetails, error)
}
