package handler

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/labstack/echo/v4"
)

const (
	ctxKeyRequestID = "request_id"

	maxRequestIDLen = 64
)

// RequestIDMiddleware propagates X-Request-Id, minting one when the caller sent
// none or sent something unfit to echo back into logs and headers.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := c.Request().Header.Get(echo.HeaderXRequestID)
		if !validRequestID(reqID) {
			reqID = newRequestID()
		}
		c.Set(ctxKeyRequestID, reqID)
		c.Response().Header().Set(echo.HeaderXRequestID, reqID)
		return next(c)
	}
}

func requestID(c echo.Context) string {
	if id, ok := c.Get(ctxKeyRequestID).(string); ok {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func newRequestID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// validRequestID accepts short IDs made of letters, digits, '-', '_' and '.'.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
