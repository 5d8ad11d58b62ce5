package session

import (
	"context"

	"github.com/go-redis/redis/v8"

	sessionRepo "skibook/database/repository/session"
	"skibook/models"
)

// SessionService manages the lesson catalog.
type SessionService interface {
	ListActive(ctx context.Context) ([]models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	Create(ctx context.Context, input models.SessionInput) (*models.Session, error)
	Update(ctx context.Context, id string, input models.SessionInput) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// DefaultSessionService implements SessionService. Cache is optional; when
// set, the active-sessions listing is served through it.
type DefaultSessionService struct {
	Repo  sessionRepo.SessionRepository
	Cache *redis.Client
}
