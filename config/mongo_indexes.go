package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes sets up the submission_events indexes. Operators
// query the trail by draft and by recency.
func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}
	db := MongoDatabase()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	events := db.Collection("submission_events")
	_, err := events.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "event_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_event_id").
				SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "draft_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_draft_created"),
		},
		{
			Keys:    bson.D{{Key: "outcome", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_outcome_created"),
		},
	})
	return err
}
