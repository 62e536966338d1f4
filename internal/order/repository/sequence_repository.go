package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// MongoSequenceRepository hands out monotonically increasing numbers per
// key through an atomic upsert-and-increment, so concurrent checkouts
// can never draw the same order number.
type MongoSequenceRepository struct {
	col *mongo.Collection
}

func NewMongoSequenceRepository(db *mongo.Database) *MongoSequenceRepository {
	return &MongoSequenceRepository{col: db.Collection(countersCollection)}
}

func (r *MongoSequenceRepository) Next(ctx context.Context, key string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": key},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("incrementing sequence %s: %w", key, err)
	}

	return counter.Seq, nil
}
