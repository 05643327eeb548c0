package appointmentRepo

import (
	"context"

	"brightsmile/config"
	"brightsmile/database"
	"brightsmile/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt models.Appointment) (string, error)
	ListRecent(ctx context.Context, limit int64) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns an AppointmentRepository backed by MongoDB.
// Returns nil when MongoDB is not configured.
func NewMongoAppointmentRepo() AppointmentRepository {
	if database.MongoClient == nil {
		return nil
	}
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("dental_appointments"),
	}
}
