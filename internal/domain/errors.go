package domain

import "errors"

var (
	// Validation Errors
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title exceeds 200 characters")
	ErrDescriptionTooLong = errors.New("description exceeds 2000 characters")
	ErrInvalidOwnerID     = errors.New("owner ID is required")
	ErrInvalidStage       = errors.New("unknown stage")
	ErrInvalidPosition    = errors.New("position cannot be negative")

	// Business logic errors
	ErrIdeaNotFound  = errors.New("idea not found")
	ErrPositionGap   = errors.New("positions are not contiguous")
	ErrPositionDup   = errors.New("duplicate position")
	ErrPositionClash = errors.New("position already taken in stage")

	// Authentication errors
	ErrUnauthenticated = errors.New("authentication required")
)

// IsValidationError reports whether err is caused by bad caller input.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrEmptyTitle,
		ErrTitleTooLong,
		ErrDescriptionTooLong,
		ErrInvalidOwnerID,
		ErrInvalidStage,
		ErrInvalidPosition,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
