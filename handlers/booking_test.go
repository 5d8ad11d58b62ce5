package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"skibook/models"
	"skibook/services/booking"
)

type stubBookingService struct {
	createResult *models.Booking
	createErr    error
	lastCreate   models.BookingRequest
	getResult    *models.Booking
	getErr       error
	listResult   []models.Booking
	listErr      error
	lastStatusQ  string
	lastStart    string
	lastEnd      string
	updateResult *models.Booking
	updateErr    error
	lastID       string
	lastStatus   models.BookingStatus
	deleteErr    error
	statsResult  *models.BookingStats
	statsErr     error
}

func (s *stubBookingService) Create(_ context.Context, req models.BookingRequest) (*models.Booking, error) {
	s.lastCreate = req
	return s.createResult, s.createErr
}

func (s *stubBookingService) Get(_ context.Context, id string) (*models.Booking, error) {
	s.lastID = id
	return s.getResult, s.getErr
}

func (s *stubBookingService) List(_ context.Context, status, startDate, endDate string) ([]models.Booking, error) {
	s.lastStatusQ = status
	s.lastStart = startDate
	s.lastEnd = endDate
	return s.listResult, s.listErr
}

func (s *stubBookingService) UpdateStatus(_ context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	s.lastID = id
	s.lastStatus = status
	return s.updateResult, s.updateErr
}

func (s *stubBookingService) Delete(_ context.Context, id string) error {
	s.lastID = id
	return s.deleteErr
}

func (s *stubBookingService) Stats(_ context.Context) (*models.BookingStats, error) {
	return s.statsResult, s.statsErr
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func newBookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, zap.NewNop())
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/bookings", h.GetAllBookings)
	r.GET("/api/bookings/stats", h.GetBookingStats)
	r.GET("/api/bookings/:id", h.GetBooking)
	r.PUT("/api/bookings/:id/status", h.UpdateBookingStatus)
	r.DELETE("/api/bookings/:id", h.DeleteBooking)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCreateBookingReturnsCreated(t *testing.T) {
	svc := &stubBookingService{
		createResult: &models.Booking{ID: "b-1", Status: models.StatusPending, TotalPrice: 150},
	}
	r := newBookingRouter(svc)

	w, env := doJSON(t, r, http.MethodPost, "/api/bookings",
		`{"session":"sess-1","name":"Nino","email":"nino@example.com","phone":"599","date":"2026-02-14","students":3}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "დაჯავშნა წარმატებით შესრულდა! მალე დაგიკავშირდებით.", env.Message)

	var data models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, models.StatusPending, data.Status)
	assert.Equal(t, float64(150), data.TotalPrice)
	assert.Equal(t, "sess-1", svc.lastCreate.SessionID)
	assert.Equal(t, 3, svc.lastCreate.Students)
}

func TestCreateBookingSessionNotFound(t *testing.T) {
	svc := &stubBookingService{createErr: &booking.NotFoundError{Resource: "session"}}
	r := newBookingRouter(svc)

	w, env := doJSON(t, r, http.MethodPost, "/api/bookings",
		`{"session":"missing","name":"Nino","email":"nino@example.com","phone":"599","date":"2026-02-14","students":3}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "გაკვეთილი არ მოიძებნა", env.Message)
}

func TestCreateBookingCapacityExceeded(t *testing.T) {
	svc := &stubBookingService{createErr: &booking.CapacityError{MaxStudents: 4}}
	r := newBookingRouter(svc)

	w, env := doJSON(t, r, http.MethodPost, "/api/bookings",
		`{"session":"sess-1","name":"Nino","email":"nino@example.com","phone":"599","date":"2026-02-14","students":5}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "მაქსიმალური მოსწავლეების რაოდენობაა 4", env.Message)
}

func TestCreateBookingValidationFailure(t *testing.T) {
	svc := &stubBookingService{
		createErr: &booking.ValidationError{Fields: map[string]string{"email": "invalid"}},
	}
	r := newBookingRouter(svc)

	w, env := doJSON(t, r, http.MethodPost, "/api/bookings", `{"session":"sess-1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "email")
}

func TestCreateBookingMalformedJSON(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w, env := doJSON(t, r, http.MethodPost, "/api/bookings", `{"session":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestGetAllBookingsPassesFilters(t *testing.T) {
	svc := &stubBookingService{listResult: []models.Booking{{ID: "b-1"}, {ID: "b-2"}}}
	r := newBookingRouter(svc)

	w, env := doJSON(t, r, http.MethodGet, "/api/bookings?status=confirmed&startDate=2026-01-01&endDate=2026-01-31", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)
	assert.Equal(t, "confirmed", svc.lastStatusQ)
	assert.Equal(t, "2026-01-01", svc.lastStart)
	assert.Equal(t, "2026-01-31", svc.lastEnd)
}

func TestGetBookingNotFound(t *testing.T) {
	svc := &stubBookingService{getErr: &booking.NotFoundError{Resource: "booking"}}
	r := newBookingRouter(svc)

	w, env := doJSON(t, r, http.MethodGet, "/api/bookings/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ჯავშანი არ მოიძებნა", env.Message)
}

func TestUpdateBookingStatus(t *testing.T) {
	svc := &stubBookingService{
		updateResult: &models.Booking{ID: "b-1", Status: models.StatusConfirmed},
	}
	r := newBookingRouter(svc)

	w, env := doJSON(t, r, http.MethodPut, "/api/bookings/b-1/status", `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "სტატუსი წარმატებით განახლდა", env.Message)
	assert.Equal(t, "b-1", svc.lastID)
	assert.Equal(t, models.StatusConfirmed, svc.lastStatus)
}

func TestUpdateBookingStatusRejected(t *testing.T) {
	svc := &stubBookingService{
		updateErr: &booking.ValidationError{Fields: map[string]string{"status": "unknown value"}},
	}
	r := newBookingRouter(svc)

	w, env := doJSON(t, r, http.MethodPut, "/api/bookings/b-1/status", `{"status":"paid"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "სტატუსის განახლება ვერ მოხერხდა", env.Message)
}

func TestDeleteBooking(t *testing.T) {
	svc := &stubBookingService{}
	r := newBookingRouter(svc)

	w, env := doJSON(t, r, http.MethodDelete, "/api/bookings/b-1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ჯავშანი წარმატებით წაიშალა", env.Message)
	assert.Equal(t, "b-1", svc.lastID)
}

func TestDeleteBookingNotFound(t *testing.T) {
	svc := &stubBookingService{deleteErr: &booking.NotFoundError{Resource: "booking"}}
	r := newBookingRouter(svc)

	w, _ := doJSON(t, r, http.MethodDelete, "/api/bookings/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBookingStats(t *testing.T) {
	svc := &stubBookingService{
		statsResult: &models.BookingStats{
			TotalBookings:     2,
			ConfirmedBookings: 1,
			CancelledBookings: 1,
			TotalRevenue:      150,
		},
	}
	r := newBookingRouter(svc)

	w, env := doJSON(t, r, http.MethodGet, "/api/bookings/stats", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var stats models.BookingStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(2), stats.TotalBookings)
	assert.Equal(t, float64(150), stats.TotalRevenue)
}

func TestGetBookingStatsError(t *testing.T) {
	svc := &stubBookingService{statsErr: assert.AnError}
	r := newBookingRouter(svc)

	w, env := doJSON(t, r, http.MethodGet, "/api/bookings/stats", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "სტატისტიკის მიღება ვერ მოხერხდა", env.Message)
}
