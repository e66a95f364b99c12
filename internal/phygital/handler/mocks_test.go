package handler_test

import (
	"context"

	"phygital/internal/phygital/chain"
	"phygital/internal/phygital/model"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserRole(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

type MockHealthCheckRepository struct {
	mock.Mock
}

func (m *MockHealthCheckRepository) RecordHealthCheck(ctx context.Context, check *model.ChainHealthCheck) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

func (m *MockHealthCheckRepository) ListHealthChecks(ctx context.Context, chainKey string, testnet bool, limit int) ([]*model.ChainHealthCheck, error) {
	args := m.Called(ctx, chainKey, testnet, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ChainHealthCheck), args.Error(1)
}

func (m *MockHealthCheckRepository) EnsureHealthCheckIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockChainService struct {
	mock.Mock
}

func (m *MockChainService) Chains() []chain.Config {
	args := m.Called()
	return args.Get(0).([]chain.Config)
}

func (m *MockChainService) Config(ref chain.Ref) (chain.Config, error) {
	args := m.Called(ref)
	return args.Get(0).(chain.Config), args.Error(1)
}

func (m *MockChainService) BlockNumber(ctx context.Context, ref chain.Ref) (uint64, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockChainService) Balance(ctx context.Context, ref chain.Ref, address string) (string, error) {
	args := m.Called(ctx, ref, address)
	return args.String(0), args.Error(1)
}

func (m *MockChainService) SendTransaction(ctx context.Context, ref chain.Ref, signedTx []byte) (string, error) {
	args := m.Called(ctx, ref, signedTx)
	return args.String(0), args.Error(1)
}

func (m *MockChainService) CheckHealth(ctx context.Context, ref chain.Ref) chain.HealthReport {
	args := m.Called(ctx, ref)
	return args.Get(0).(chain.HealthReport)
}
