package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skibook/models"
	"skibook/services/session"
)

type SessionHandler struct {
	Svc    session.SessionService
	Logger *zap.Logger
}

func NewSessionHandler(svc session.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{Svc: svc, Logger: logger}
}

// GetAllSessions handles GET /api/sessions.
func (h *SessionHandler) GetAllSessions(c *gin.Context) {
	sessions, err := h.Svc.ListActive(c.Request.Context())
	if err != nil {
		h.Logger.Error("session listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiResponse{Success: false, Message: "სერვერის შეცდომა", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, apiResponse{Success: true, Count: countOf(len(sessions)), Data: sessions})
}

// GetSession handles GET /api/sessions/:id.
func (h *SessionHandler) GetSession(c *gin.Context) {
	found, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "სერვერის შეცდომა")
		return
	}

	c.JSON(http.StatusOK, apiResponse{Success: true, Data: found})
}

// CreateSession handles POST /api/sessions.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var input models.SessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apiResponse{Success: false, Message: "გაკვეთილის შექმნა ვერ მოხერხდა", Error: err.Error()})
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "გაკვეთილის შექმნა ვერ მოხერხდა")
		return
	}

	c.JSON(http.StatusCreated, apiResponse{Success: true, Message: "გაკვეთილი წარმატებით შეიქმნა", Data: created})
}

// UpdateSession handles PUT /api/sessions/:id.
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	var input models.SessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apiResponse{Success: false, Message: "გაკვეთილის განახლება ვერ მოხერხდა", Error: err.Error()})
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err, "გაკვეთილის განახლება ვერ მოხერხდა")
		return
	}

	c.JSON(http.StatusOK, apiResponse{Success: true, Message: "გაკვეთილი წარმატებით განახლდა", Data: updated})
}

// DeleteSession handles DELETE /api/sessions/:id.
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "გაკვეთილის წაშლა ვერ მოხერხდა")
		return
	}

	c.JSON(http.StatusOK, apiResponse{Success: true, Message: "გაკვეთილი წარმატებით წაიშალა"})
}

func (h *SessionHandler) respondError(c *gin.Context, err error, failMsg string) {
	var nf *session.NotFoundError
	var ve *session.ValidationError

	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, apiResponse{Success: false, Message: "გაკვეთილი არ მოიძებნა"})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, apiResponse{Success: false, Message: failMsg, Error: ve.Error()})
	default:
		h.Logger.Error("session request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiResponse{Success: false, Message: "სერვერის შეცდომა", Error: err.Error()})
	}
}
