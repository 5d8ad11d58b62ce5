package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"skibook/models"
	"skibook/utils"
)

// Create validates and prices a booking request, persists it with status
// pending, and fires the customer and admin notifications. Notification
// outcomes never affect the returned booking.
func (svc *DefaultBookingService) Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	normalizeRequest(&req)
	date, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	sess, err := svc.Sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "session"}
		}
		return nil, err
	}
	if req.Students > sess.MaxStudents {
		return nil, &CapacityError{MaxStudents: sess.MaxStudents}
	}

	now := time.Now()
	booking := &models.Booking{
		ID:         uuid.New().String(),
		SessionID:  sess.ID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Date:       date,
		Students:   req.Students,
		Status:     models.StatusPending,
		TotalPrice: sess.Price * float64(req.Students),
		Notes:      req.Notes,
		Language:   req.Language,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := svc.Repo.Insert(ctx, booking); err != nil {
		return nil, err
	}
	booking.Session = sess

	svc.dispatchBookingCreated(booking)
	return booking, nil
}

func (svc *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "booking"}
		}
		return nil, err
	}
	svc.populateSession(ctx, booking)
	return booking, nil
}

// List returns bookings newest-first, optionally narrowed by exact status and
// an inclusive lesson-date range.
func (svc *DefaultBookingService) List(ctx context.Context, status, startDate, endDate string) ([]models.Booking, error) {
	filter := models.BookingFilter{Status: models.BookingStatus(status)}

	fields := map[string]string{}
	if startDate != "" {
		from, err := parseDate(startDate)
		if err != nil {
			fields["startDate"] = "თარიღის ფორმატი არასწორია"
		} else {
			filter.From = &from
		}
	}
	if endDate != "" {
		to, err := parseDate(endDate)
		if err != nil {
			fields["endDate"] = "თარიღის ფორმატი არასწორია"
		} else {
			filter.To = &to
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	bookings, err := svc.Repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	sessions := map[string]*models.Session{}
	for i := range bookings {
		sess, ok := sessions[bookings[i].SessionID]
		if !ok {
			sess, _ = svc.Sessions.GetByID(ctx, bookings[i].SessionID)
			sessions[bookings[i].SessionID] = sess
		}
		bookings[i].Session = sess
	}
	return bookings, nil
}

// UpdateStatus sets any of the four enumerated statuses; transitions are
// deliberately unrestricted. Capacity and price are not re-validated.
func (svc *DefaultBookingService) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"status": "status must be one of pending, confirmed, completed, cancelled"}}
	}

	booking, err := svc.Repo.UpdateStatus(ctx, id, status, time.Now())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "booking"}
		}
		return nil, err
	}
	svc.populateSession(ctx, booking)
	return booking, nil
}

// Delete permanently removes a booking. The session document is never touched.
func (svc *DefaultBookingService) Delete(ctx context.Context, id string) error {
	if err := svc.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Resource: "booking"}
		}
		return err
	}
	return nil
}

func (svc *DefaultBookingService) Stats(ctx context.Context) (*models.BookingStats, error) {
	return svc.Repo.Stats(ctx)
}

// populateSession attaches the referenced session when it still exists.
func (svc *DefaultBookingService) populateSession(ctx context.Context, booking *models.Booking) {
	if sess, err := svc.Sessions.GetByID(ctx, booking.SessionID); err == nil {
		booking.Session = sess
	}
}

// dispatchBookingCreated fires the two notification channels off the request
// path. Each channel has its own failure boundary: an error or panic on one
// is logged and cannot stop the other or reach the caller.
func (svc *DefaultBookingService) dispatchBookingCreated(booking *models.Booking) {
	go func() {
		ctx := context.Background()
		svc.attempt("customer", booking, func() error {
			return svc.Mailer.SendBookingConfirmation(ctx, booking)
		})
		svc.attempt("admin", booking, func() error {
			return svc.Mailer.SendAdminAlert(ctx, booking)
		})
	}()
}

func (svc *DefaultBookingService) attempt(channel string, booking *models.Booking, send func() error) {
	logger := utils.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("notification dispatch panicked",
				zap.String("channel", channel),
				zap.String("bookingId", booking.ID),
				zap.Any("panic", r))
		}
	}()

	if err := send(); err != nil {
		logger.Error("notification dispatch failed",
			zap.String("channel", channel),
			zap.String("bookingId", booking.ID),
			zap.Error(err))
		return
	}
	logger.Info("notification sent",
		zap.String("channel", channel),
		zap.String("bookingId", booking.ID))
}
