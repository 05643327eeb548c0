package database

import (
	"context"
	"log"
	"time"

	"brightsmile/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance. It stays nil when
// DATABASE_URL is not configured; the structured store then reports itself
// as unconfigured instead of failing bookings.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection. A configured but unreachable
// database is a startup error; an unconfigured one is not.
func InitDB() {
	if config.AppConfig.DatabaseURL == "" {
		log.Println("MongoDB is not configured. Set DATABASE_URL to enable database persistence.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}
