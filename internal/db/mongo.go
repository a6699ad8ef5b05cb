package db

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens a MongoDB client and verifies the connection
func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri)) // Open a connection to the database
	if err != nil {
		return nil, err
	}
	// Ping to fail fast on bad credentials or unreachable hosts
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the unique indexes the service relies on: one on
// users.email and one on categories.name. Both uniqueness checks ride these
// indexes rather than find-then-insert races.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	_, err := database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}
	_, err = database.Collection("categories").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}
	// Sort key for both public listings
	_, err = database.Collection("wallpapers").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "upload_date", Value: -1}},
	})
	if err != nil {
		return err
	}
	logrus.Info("Index bootstrap completed.") // Log successful bootstrap
	return nil
}
