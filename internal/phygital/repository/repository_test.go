package repository

import (
	"context"
	"testing"

	"phygital/internal/phygital/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFindUserRole(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := &MongoUserRepository{Users: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "phygital.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u_1"},
			{Key: "role", Value: "editor"},
		}))

		role, err := repo.FindUserRole(context.Background(), "u_1")
		require.NoError(t, err)
		assert.Equal(t, "editor", role)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := &MongoUserRepository{Users: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "phygital.users", mtest.FirstBatch))

		_, err := repo.FindUserRole(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRecordHealthCheck(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sets created_at", func(mt *mtest.T) {
		repo := &MongoHealthCheckRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		check := &model.ChainHealthCheck{Chain: "base", ChainID: 8453, Connected: true}
		require.NoError(t, repo.RecordHealthCheck(context.Background(), check))
		assert.False(t, check.CreatedAt.IsZero())
	})

	mt.Run("duplicate", func(mt *mtest.T) {
		repo := &MongoHealthCheckRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.RecordHealthCheck(context.Background(), &model.ChainHealthCheck{Chain: "base"})
		assert.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestListHealthChecks(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("newest first as returned", func(mt *mtest.T) {
		repo := &MongoHealthCheckRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "phygital.chain_health_checks", mtest.FirstBatch,
			bson.D{{Key: "chain", Value: "solana"}, {Key: "testnet", Value: true}, {Key: "block_number", Value: int64(200)}, {Key: "connected", Value: true}},
			bson.D{{Key: "chain", Value: "solana"}, {Key: "testnet", Value: true}, {Key: "block_number", Value: int64(100)}, {Key: "connected", Value: false}},
		))

		checks, err := repo.ListHealthChecks(context.Background(), "Solana", true, 10)
		require.NoError(t, err)
		require.Len(t, checks, 2)
		assert.Equal(t, uint64(200), checks[0].BlockNumber)
		assert.False(t, checks[1].Connected)
	})

	mt.Run("empty", func(mt *mtest.T) {
		repo := &MongoHealthCheckRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "phygital.chain_health_checks", mtest.FirstBatch))

		checks, err := repo.ListHealthChecks(context.Background(), "base", false, 10)
		require.NoError(t, err)
		assert.Empty(t, checks)
	})
}
