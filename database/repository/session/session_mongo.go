package sessionRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"skibook/database"
	"skibook/models"
)

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo returns a SessionRepository backed by the "sessions" collection.
func NewMongoSessionRepo() SessionRepository {
	return &mongoSessionRepo{coll: database.Collection("sessions")}
}

func (r *mongoSessionRepo) Create(ctx context.Context, sess *models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, sess)
	return err
}

func (r *mongoSessionRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sess models.Session
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *mongoSessionRepo) ListActive(ctx context.Context) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []models.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *mongoSessionRepo) Update(ctx context.Context, sess *models.Session) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": sess.ID}, sess)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return sess, nil
}

func (r *mongoSessionRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
