package repository

import (
	"context"
	"strings"
	"time"

	"phygital/internal/phygital/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHealthCheckRepository implements HealthCheckRepository using MongoDB
type MongoHealthCheckRepository struct {
	Collection *mongo.Collection
}

func NewMongoHealthCheckRepository(db *mongo.Database, collectionName string) *MongoHealthCheckRepository {
	return &MongoHealthCheckRepository{
		Collection: db.Collection(collectionName),
	}
}

func (r *MongoHealthCheckRepository) EnsureHealthCheckIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Per-network history: chain + testnet + created_at
		{
			Keys: bson.D{
				{Key: "chain", Value: 1},
				{Key: "testnet", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_chain_network_query"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at"),
		},
	}

	_, err := r.Collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoHealthCheckRepository) RecordHealthCheck(ctx context.Context, check *model.ChainHealthCheck) error {
	if check.CreatedAt.IsZero() {
		check.CreatedAt = time.Now().UTC()
	}
	_, err := r.Collection.InsertOne(ctx, check)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoHealthCheckRepository) ListHealthChecks(ctx context.Context, chain string, testnet bool, limit int) ([]*model.ChainHealthCheck, error) {
	filter := bson.M{
		"chain":   strings.ToLower(chain),
		"testnet": testnet,
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := make([]*model.ChainHealthCheck, 0, limit)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
