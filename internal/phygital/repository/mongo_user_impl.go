package repository

import (
	"context"
	"errors"

	"phygital/internal/phygital/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepository struct {
	Users *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database, collectionName string) *MongoUserRepository {
	return &MongoUserRepository{
		Users: db.Collection(collectionName),
	}
}

func (r *MongoUserRepository) FindUserRole(ctx context.Context, userID string) (string, error) {
	opts := options.FindOne().SetProjection(bson.M{"role": 1})

	var user model.User
	err := r.Users.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrNotFound
		}
		return "", err
	}
	return user.Role, nil
}
