package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"phygital/internal/phygital/chain"
	"phygital/internal/phygital/model"
	"phygital/internal/phygital/permission"
	"phygital/internal/phygital/repository"

	"github.com/labstack/echo/v4"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Helper to map errors to HTTP status and body
func httpError(err error) (int, model.ErrorResponse) {
	var code string
	var msg string
	var status int

	var detail *model.ErrorDetail
	switch {
	case errors.As(err, &detail):
		status = http.StatusBadRequest
		code = detail.Code
		msg = detail.Message
	case errors.Is(err, ErrUnauthorized):
		status = http.StatusUnauthorized
		code = "unauthorized"
		msg = "x-user-id header is required"
	case errors.Is(err, ErrForbidden):
		status = http.StatusForbidden
		code = "forbidden"
		msg = "You do not have permission to perform this action"
	case errors.Is(err, chain.ErrConfiguration):
		status = http.StatusNotFound
		code = "unknown_chain"
		msg = err.Error()
	case errors.Is(err, chain.ErrInvalidAddress):
		status = http.StatusBadRequest
		code = "invalid_address"
		msg = err.Error()
	case errors.Is(err, chain.ErrInvalidTransaction):
		status = http.StatusBadRequest
		code = "invalid_transaction"
		msg = err.Error()
	case errors.Is(err, chain.ErrTimeout):
		status = http.StatusGatewayTimeout
		code = "rpc_timeout"
		msg = "Blockchain RPC did not answer in time"
	case errors.Is(err, chain.ErrConnectivity):
		status = http.StatusBadGateway
		code = "rpc_unavailable"
		msg = "Blockchain RPC is unavailable"
	case errors.Is(err, context.Canceled):
		status = http.StatusServiceUnavailable
		code = "canceled"
		msg = "Request canceled"
	case errors.Is(err, permission.ErrUnknownRole), errors.Is(err, permission.ErrUnknownPermission):
		status = http.StatusBadRequest
		code = "bad_request"
		msg = err.Error()
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
		msg = "Record not found"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = "Internal server error"
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

// respondError writes the mapped error body tagged with the request ID.
func respondError(c echo.Context, logger *slog.Logger, err error) error {
	status, body := httpError(err)
	body.Error.RequestID = requestID(c)
	if status >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"request_id", body.Error.RequestID,
			"error", err,
		)
	}
	return c.JSON(status, body)
}

func badRequest(c echo.Context, msg string) error {
	return respondError(c, nil, &model.ErrorDetail{Code: "bad_request", Message: msg})
}
