package bookingRepo

import (
	"context"
	"time"

	"skibook/models"
)

// BookingRepository provides durable storage for bookings.
type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus, updatedAt time.Time) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*models.BookingStats, error)
}
