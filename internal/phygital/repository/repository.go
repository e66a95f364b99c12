package repository

import (
	"context"
	"errors"

	"phygital/internal/phygital/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository reads users owned by the auth subsystem.
type UserRepository interface {
	// FindUserRole returns the stored role string for userID, or ErrNotFound.
	FindUserRole(ctx context.Context, userID string) (string, error)
}

// HealthCheckRepository stores chain status probes.
type HealthCheckRepository interface {
	// RecordHealthCheck appends a probe (append-only)
	RecordHealthCheck(ctx context.Context, check *model.ChainHealthCheck) error
	// ListHealthChecks returns the most recent probes for one network, newest first
	ListHealthChecks(ctx context.Context, chain string, testnet bool, limit int) ([]*model.ChainHealthCheck, error)
	// EnsureHealthCheckIndexes creates indexes for efficient querying
	EnsureHealthCheckIndexes(ctx context.Context) error
}
