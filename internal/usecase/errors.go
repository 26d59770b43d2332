package usecase

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/careervision/internal/util"
)

var (
	ErrValidation             = errors.New("validation failed")
	ErrRecommendationInactive = errors.New("recommendation is no longer active")
	ErrCompletionUnavailable  = errors.New("answer service unavailable")
	ErrFileTooLarge           = fmt.Errorf("%w: file too large", ErrValidation)
	ErrUnsupportedMime        = fmt.Errorf("%w: unsupported file type", ErrValidation)
)

// invalid reports field errors as both ErrValidation and *util.FormError.
func invalid(message string, fields map[string]string) error {
	return fmt.Errorf("%w: %w", ErrValidation, util.NewFormError(message, fields))
}
