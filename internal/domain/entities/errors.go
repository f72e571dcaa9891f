package entities

import "errors"

// Domain errors
var (
	// Call errors
	ErrCallNotFound      = errors.New("call not found")
	ErrEmptyTranscript   = errors.New("transcript text is required")
	ErrTranscriptTooLong = errors.New("transcript is too long (max 50,000 characters)")
	ErrInvalidCallSource = errors.New("invalid call source")
	ErrInvalidOccurredAt = errors.New("occurred_at is required")

	// Rep errors
	ErrRepNotFound = errors.New("rep not found")

	// Generic errors
	ErrInvalidRequest = errors.New("invalid request")
)
