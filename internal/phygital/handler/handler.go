package handler

import (
	"context"
	"log/slog"
	"net/http"

	"phygital/internal/phygital/chain"
	"phygital/internal/phygital/repository"

	"github.com/labstack/echo/v4"
)

// ChainService is the subset of chain.Service used by the HTTP layer.
type ChainService interface {
	Chains() []chain.Config
	Config(ref chain.Ref) (chain.Config, error)
	BlockNumber(ctx context.Context, ref chain.Ref) (uint64, error)
	Balance(ctx context.Context, ref chain.Ref, address string) (string, error)
	SendTransaction(ctx context.Context, ref chain.Ref, signedTx []byte) (string, error)
	CheckHealth(ctx context.Context, ref chain.Ref) chain.HealthReport
}

type Handler struct {
	Users        repository.UserRepository
	HealthChecks repository.HealthCheckRepository
	Chains       ChainService
	// RecordHealthChecks persists every status probe when HealthChecks is set.
	RecordHealthChecks bool
	Logger             *slog.Logger
}

func NewHandler(users repository.UserRepository, healthChecks repository.HealthCheckRepository, chains ChainService) *Handler {
	return &Handler{
		Users:              users,
		HealthChecks:       healthChecks,
		Chains:             chains,
		RecordHealthChecks: healthChecks != nil,
		Logger:             slog.Default(),
	}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func extractCallerID(c echo.Context) (string, error) {
	callerID := c.Request().Header.Get(HeaderUserID)
	if callerID == "" {
		return "", ErrUnauthorized
	}
	return callerID, nil
}
