package middleware

import (
	"errors"
	"log/slog"

	"github.com/fadilmartias/careervision/internal/repository"
	"github.com/fadilmartias/careervision/internal/usecase"
	"github.com/fadilmartias/careervision/internal/util"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error returned by a handler in the standard
// error envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, message := Status(err)

	var details any
	var formErr *util.FormError
	if errors.As(err, &formErr) {
		message = formErr.Message
		details = formErr.Errors
	}

	if code >= fiber.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", code),
			slog.Any("error", err))
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
		Details: details,
	}, err)
}

// Status maps a domain error to its HTTP status and public message.
func Status(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound, "Resource not found"
	case errors.Is(err, usecase.ErrFileTooLarge):
		return fiber.StatusBadRequest, "File too large"
	case errors.Is(err, usecase.ErrUnsupportedMime), errors.Is(err, util.ErrUnsupportedFormat):
		return fiber.StatusBadRequest, "Unsupported file type, upload a PDF, DOC or DOCX file"
	case errors.Is(err, usecase.ErrValidation):
		return fiber.StatusBadRequest, "Validation failed"
	case errors.Is(err, usecase.ErrRecommendationInactive):
		return fiber.StatusConflict, "Recommendation is no longer active"
	case errors.Is(err, usecase.ErrCompletionUnavailable):
		return fiber.StatusServiceUnavailable, "Answer service is temporarily unavailable"
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	}
	return fiber.StatusInternalServerError, "Internal server error"
}
