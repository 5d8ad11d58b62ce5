package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"skibook/models"
	"skibook/utils"
)

const (
	activeSessionsKey = "sessions:active"
	activeSessionsTTL = 5 * time.Minute

	defaultCurrency = "₾"
	defaultImage    = "⛷️"
)

// ListActive returns active catalog sessions newest-first, served through the
// redis cache when one is configured. Cache failures fall through to Mongo.
func (svc *DefaultSessionService) ListActive(ctx context.Context) ([]models.Session, error) {
	if svc.Cache != nil {
		if data, err := svc.Cache.Get(ctx, activeSessionsKey).Result(); err == nil {
			var sessions []models.Session
			if err := json.Unmarshal([]byte(data), &sessions); err == nil {
				return sessions, nil
			}
		}
	}

	sessions, err := svc.Repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if svc.Cache != nil {
		if data, err := json.Marshal(sessions); err == nil {
			if err := svc.Cache.Set(ctx, activeSessionsKey, data, activeSessionsTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache session catalog", zap.Error(err))
			}
		}
	}
	return sessions, nil
}

func (svc *DefaultSessionService) Get(ctx context.Context, id string) (*models.Session, error) {
	sess, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	return sess, nil
}

func (svc *DefaultSessionService) Create(ctx context.Context, input models.SessionInput) (*models.Session, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	sess := &models.Session{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Duration:    input.Duration,
		Price:       input.Price,
		Currency:    input.Currency,
		Level:       input.Level,
		MaxStudents: input.MaxStudents,
		Description: input.Description,
		Image:       input.Image,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if sess.Currency == "" {
		sess.Currency = defaultCurrency
	}
	if sess.Image == "" {
		sess.Image = defaultImage
	}
	if input.IsActive != nil {
		sess.IsActive = *input.IsActive
	}

	if err := svc.Repo.Create(ctx, sess); err != nil {
		return nil, err
	}
	svc.invalidate(ctx)
	return sess, nil
}

// Update replaces the mutable fields of an existing session. The identifier
// and creation timestamp survive; UpdatedAt is refreshed.
func (svc *DefaultSessionService) Update(ctx context.Context, id string, input models.SessionInput) (*models.Session, error) {
	existing, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sess := &models.Session{
		ID:          existing.ID,
		Title:       input.Title,
		Duration:    input.Duration,
		Price:       input.Price,
		Currency:    input.Currency,
		Level:       input.Level,
		MaxStudents: input.MaxStudents,
		Description: input.Description,
		Image:       input.Image,
		IsActive:    existing.IsActive,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}
	if sess.Currency == "" {
		sess.Currency = existing.Currency
	}
	if sess.Image == "" {
		sess.Image = existing.Image
	}
	if input.IsActive != nil {
		sess.IsActive = *input.IsActive
	}

	updated, err := svc.Repo.Update(ctx, sess)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	svc.invalidate(ctx)
	return updated, nil
}

func (svc *DefaultSessionService) Delete(ctx context.Context, id string) error {
	if err := svc.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{ID: id}
		}
		return err
	}
	svc.invalidate(ctx)
	return nil
}

func (svc *DefaultSessionService) invalidate(ctx context.Context) {
	if svc.Cache == nil {
		return
	}
	if err := svc.Cache.Del(ctx, activeSessionsKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate session catalog cache", zap.Error(err))
	}
}

// validateInput enforces the catalog invariants: every localized text in all
// three languages, a non-negative price and at least one student of capacity.
func validateInput(input models.SessionInput) error {
	fields := map[string]string{}

	if !input.Title.Complete() {
		fields["title"] = "სათაური სავალდებულოა სამივე ენაზე"
	}
	if !input.Duration.Complete() {
		fields["duration"] = "ხანგრძლივობა სავალდებულოა სამივე ენაზე"
	}
	if !input.Level.Complete() {
		fields["level"] = "დონე სავალდებულოა სამივე ენაზე"
	}
	if !input.Description.Complete() {
		fields["description"] = "აღწერა სავალდებულოა სამივე ენაზე"
	}
	if input.Price < 0 {
		fields["price"] = "ფასი სავალდებულოა"
	}
	if input.MaxStudents < 1 {
		fields["maxStudents"] = "მაქსიმალური მოსწავლეების რაოდენობა სავალდებულოა"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
