package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"skibook/models"
)

// Stats computes per-status counts over the whole collection plus the summed
// revenue of confirmed and completed bookings. Pending and cancelled bookings
// never contribute to revenue.
func (r *mongoBookingRepo) Stats(ctx context.Context) (*models.BookingStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stats := &models.BookingStats{}

	var err error
	if stats.TotalBookings, err = r.coll.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.PendingBookings, err = r.coll.CountDocuments(ctx, bson.M{"status": models.StatusPending}); err != nil {
		return nil, err
	}
	if stats.ConfirmedBookings, err = r.coll.CountDocuments(ctx, bson.M{"status": models.StatusConfirmed}); err != nil {
		return nil, err
	}
	if stats.CompletedBookings, err = r.coll.CountDocuments(ctx, bson.M{"status": models.StatusCompleted}); err != nil {
		return nil, err
	}
	if stats.CancelledBookings, err = r.coll.CountDocuments(ctx, bson.M{"status": models.StatusCancelled}); err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{"$match": bson.M{"status": bson.M{"$in": []models.BookingStatus{models.StatusConfirmed, models.StatusCompleted}}}},
		{"$group": bson.M{"_id": nil, "totalRevenue": bson.M{"$sum": "$totalPrice"}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var revenue []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &revenue); err != nil {
		return nil, err
	}
	if len(revenue) > 0 {
		stats.TotalRevenue = revenue[0].TotalRevenue
	}
	return stats, nil
}
