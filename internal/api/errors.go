package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/internal/errs"
	"github.com/pageza/recipebox/backend/internal/middleware"
)

// respondError logs err and writes a generic message for it. Error details
// never reach the client.
func respondError(c *gin.Context, log *zap.Logger, err error, notFound string) {
	status, msg := http.StatusInternalServerError, "Server error"
	switch {
	case errors.Is(err, errs.ErrUnknownOption):
		status, msg = http.StatusBadRequest, "Unknown option"
	case errors.Is(err, errs.ErrInvalidInput):
		status, msg = http.StatusBadRequest, "Invalid request"
	case errors.Is(err, errs.ErrUserNotFound):
		status, msg = http.StatusUnauthorized, "User not found"
	case errors.Is(err, errs.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, errs.ErrNotFound):
		status, msg = http.StatusNotFound, notFound
	case errors.Is(err, errs.ErrAlreadyExists):
		status, msg = http.StatusConflict, "Account already exists"
	}

	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", status),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Info("request rejected", fields...)
	}
	c.JSON(status, gin.H{"error": msg})
}

// badRequest answers a body that failed to bind.
func badRequest(c *gin.Context, log *zap.Logger, err error, msg string) {
	log.Debug("invalid request body",
		zap.Error(err),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
	)
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
