package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"skibook/models"
	"skibook/services/session"
)

type stubSessionService struct {
	listResult   []models.Session
	listErr      error
	getResult    *models.Session
	getErr       error
	createResult *models.Session
	createErr    error
	updateResult *models.Session
	updateErr    error
	deleteErr    error
	lastID       string
	lastInput    models.SessionInput
}

func (s *stubSessionService) ListActive(_ context.Context) ([]models.Session, error) {
	return s.listResult, s.listErr
}

func (s *stubSessionService) Get(_ context.Context, id string) (*models.Session, error) {
	s.lastID = id
	return s.getResult, s.getErr
}

func (s *stubSessionService) Create(_ context.Context, input models.SessionInput) (*models.Session, error) {
	s.lastInput = input
	return s.createResult, s.createErr
}

func (s *stubSessionService) Update(_ context.Context, id string, input models.SessionInput) (*models.Session, error) {
	s.lastID = id
	s.lastInput = input
	return s.updateResult, s.updateErr
}

func (s *stubSessionService) Delete(_ context.Context, id string) error {
	s.lastID = id
	return s.deleteErr
}

func newSessionRouter(svc session.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSessionHandler(svc, zap.NewNop())
	r.GET("/api/sessions", h.GetAllSessions)
	r.GET("/api/sessions/:id", h.GetSession)
	r.POST("/api/sessions", h.CreateSession)
	r.PUT("/api/sessions/:id", h.UpdateSession)
	r.DELETE("/api/sessions/:id", h.DeleteSession)
	return r
}

func TestGetAllSessions(t *testing.T) {
	svc := &stubSessionService{listResult: []models.Session{{ID: "sess-1"}, {ID: "sess-2"}}}
	r := newSessionRouter(svc)

	w, env := doJSON(t, r, http.MethodGet, "/api/sessions", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)
}

func TestGetSessionNotFound(t *testing.T) {
	svc := &stubSessionService{getErr: &session.NotFoundError{ID: "missing"}}
	r := newSessionRouter(svc)

	w, env := doJSON(t, r, http.MethodGet, "/api/sessions/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "გაკვეთილი არ მოიძებნა", env.Message)
}

func TestCreateSession(t *testing.T) {
	svc := &stubSessionService{createResult: &models.Session{ID: "sess-1"}}
	r := newSessionRouter(svc)

	w, env := doJSON(t, r, http.MethodPost, "/api/sessions",
		`{"title":{"ka":"ა","en":"A","ru":"А"},"duration":{"ka":"ბ","en":"B","ru":"Б"},"level":{"ka":"გ","en":"C","ru":"В"},"description":{"ka":"დ","en":"D","ru":"Г"},"price":50,"maxStudents":6}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "გაკვეთილი წარმატებით შეიქმნა", env.Message)
	assert.Equal(t, 6, svc.lastInput.MaxStudents)
}

func TestCreateSessionValidationFailure(t *testing.T) {
	svc := &stubSessionService{
		createErr: &session.ValidationError{Fields: map[string]string{"title": "incomplete"}},
	}
	r := newSessionRouter(svc)

	w, env := doJSON(t, r, http.MethodPost, "/api/sessions", `{"price":50}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "title")
}

func TestDeleteSession(t *testing.T) {
	svc := &stubSessionService{}
	r := newSessionRouter(svc)

	w, env := doJSON(t, r, http.MethodDelete, "/api/sessions/sess-1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "გაკვეთილი წარმატებით წაიშალა", env.Message)
	assert.Equal(t, "sess-1", svc.lastID)
}
