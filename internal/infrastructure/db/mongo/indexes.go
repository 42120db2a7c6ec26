package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the ownership and uniqueness invariants
// rely on. Called once at startup, before the server accepts traffic.
//
// The unique indexes are what make the corresponding invariants atomic:
// duplicate registration, a second profile, and a second diet log for the
// same day all fail inside a single insert/upsert instead of a
// check-then-act sequence.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		profilesCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		},
		productsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		usageLogsCollection: {
			{Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "date_used", Value: -1}}},
		},
		dietLogsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}, Options: unique},
		},
		wellBeingCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return wrapErr("ensure indexes: "+coll, err)
		}
	}
	return nil
}
