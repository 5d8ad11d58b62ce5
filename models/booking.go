package models

import "time"

// BookingStatus is the lifecycle status of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the four enumerated statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking is a customer's reservation against a catalog session.
// Status, TotalPrice and UpdatedAt are owned by the booking service.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	SessionID  string        `bson:"sessionId" json:"sessionId"`
	Session    *Session      `bson:"-" json:"session,omitempty"`
	Name       string        `bson:"name" json:"name"`
	Email      string        `bson:"email" json:"email"`
	Phone      string        `bson:"phone" json:"phone"`
	Date       time.Time     `bson:"date" json:"date"`
	Students   int           `bson:"students" json:"students"`
	Status     BookingStatus `bson:"status" json:"status"`
	TotalPrice float64       `bson:"totalPrice" json:"totalPrice"`
	Notes      string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Language   string        `bson:"language" json:"language"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// BookingRequest is the customer-facing creation payload. Status is never
// client-settable; every new booking starts out pending.
type BookingRequest struct {
	SessionID string `json:"session"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Students  int    `json:"students"`
	Notes     string `json:"notes"`
	Language  string `json:"language"`
}

// BookingFilter narrows a booking listing. Zero values mean "no constraint".
type BookingFilter struct {
	Status BookingStatus
	From   *time.Time
	To     *time.Time
}

// BookingStats are aggregate counts over the full booking collection.
// TotalRevenue only sums confirmed and completed bookings.
type BookingStats struct {
	TotalBookings     int64   `json:"totalBookings"`
	PendingBookings   int64   `json:"pendingBookings"`
	ConfirmedBookings int64   `json:"confirmedBookings"`
	CompletedBookings int64   `json:"completedBookings"`
	CancelledBookings int64   `json:"cancelledBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
}
