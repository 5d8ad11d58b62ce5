package sessionRepo

import (
	"context"

	"skibook/models"
)

// SessionRepository provides access to the lesson catalog.
type SessionRepository interface {
	Create(ctx context.Context, sess *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	ListActive(ctx context.Context) ([]models.Session, error)
	Update(ctx context.Context, sess *models.Session) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}
