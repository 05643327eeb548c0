package appointmentRepo

import (
	"context"

	"brightsmile/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new appointment and returns its ID.
func (r *mongoAppointmentRepo) Create(ctx context.Context, appt models.Appointment) (string, error) {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}

	_, err := r.coll.InsertOne(ctx, appt)
	if err != nil {
		return "", err
	}
	return appt.ID, nil
}

// ListRecent returns the most recently inserted appointments, newest first.
func (r *mongoAppointmentRepo) ListRecent(ctx context.Context, limit int64) ([]models.Appointment, error) {
	if limit <= 0 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
