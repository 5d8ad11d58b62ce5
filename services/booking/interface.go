package booking

import (
	"context"

	bookingRepo "skibook/database/repository/booking"
	sessionRepo "skibook/database/repository/session"
	"skibook/models"
	"skibook/services/notification"
)

// BookingService owns the booking lifecycle: creation with capacity check and
// pricing, status transitions, deletion and aggregate statistics.
type BookingService interface {
	Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, status, startDate, endDate string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*models.BookingStats, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Sessions sessionRepo.SessionRepository
	Mailer   notification.MailService
}
