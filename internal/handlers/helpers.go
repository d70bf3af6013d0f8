package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "luxeledger/internal/errors"
	"luxeledger/internal/logger"
	"luxeledger/internal/models"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is returned by operations that produce no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// parseAnchor parses an optional YYYY-MM-DD query value. An empty value
// yields the zero Date, which services treat as today.
func parseAnchor(raw string) (models.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.Date{}, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, apperrors.ErrInvalidDate
	}
	return d, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}

// bindingError turns a binding or validation failure into INVALID_INPUT.
func bindingError(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}
