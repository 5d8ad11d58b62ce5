package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skibook/models"
	"skibook/services/booking"
)

type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiResponse{Success: false, Message: "დაჯავშნა ვერ მოხერხდა", Error: err.Error()})
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "დაჯავშნა ვერ მოხერხდა")
		return
	}

	c.JSON(http.StatusCreated, apiResponse{
		Success: true,
		Message: "დაჯავშნა წარმატებით შესრულდა! მალე დაგიკავშირდებით.",
		Data:    created,
	})
}

// GetAllBookings handles GET /api/bookings with optional status/startDate/endDate filters.
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.Svc.List(c.Request.Context(), c.Query("status"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		h.respondError(c, err, "ჯავშნების მიღება ვერ მოხერხდა")
		return
	}

	c.JSON(http.StatusOK, apiResponse{Success: true, Count: countOf(len(bookings)), Data: bookings})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	found, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "სერვერის შეცდომა")
		return
	}

	c.JSON(http.StatusOK, apiResponse{Success: true, Data: found})
}

// UpdateBookingStatus handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var body struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, apiResponse{Success: false, Message: "სტატუსის განახლება ვერ მოხერხდა", Error: err.Error()})
		return
	}

	updated, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		h.respondError(c, err, "სტატუსის განახლება ვერ მოხერხდა")
		return
	}

	c.JSON(http.StatusOK, apiResponse{Success: true, Message: "სტატუსი წარმატებით განახლდა", Data: updated})
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "ჯავშნის წაშლა ვერ მოხერხდა")
		return
	}

	c.JSON(http.StatusOK, apiResponse{Success: true, Message: "ჯავშანი წარმატებით წაიშალა"})
}

// GetBookingStats handles GET /api/bookings/stats.
func (h *BookingHandler) GetBookingStats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		h.Logger.Error("booking stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiResponse{Success: false, Message: "სტატისტიკის მიღება ვერ მოხერხდა", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, apiResponse{Success: true, Data: stats})
}

func (h *BookingHandler) respondError(c *gin.Context, err error, failMsg string) {
	var nf *booking.NotFoundError
	var ce *booking.CapacityError
	var ve *booking.ValidationError

	switch {
	case errors.As(err, &nf):
		msg := "ჯავშანი არ მოიძებნა"
		if nf.Resource == "session" {
			msg = "გაკვეთილი არ მოიძებნა"
		}
		c.JSON(http.StatusNotFound, apiResponse{Success: false, Message: msg})
	case errors.As(err, &ce):
		c.JSON(http.StatusBadRequest, apiResponse{
			Success: false,
			Message: fmt.Sprintf("მაქსიმალური მოსწავლეების რაოდენობაა %d", ce.MaxStudents),
		})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, apiResponse{Success: false, Message: failMsg, Error: ve.Error()})
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiResponse{Success: false, Message: "სერვერის შეცდომა", Error: err.Error()})
	}
}
