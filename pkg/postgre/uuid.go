package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidUUID = errors.New("invalid UUID format")

// IsUUID returns ErrInvalidUUID (wrapped) unless u parses as a UUID.
func IsUUID(u string) error {
	if u == "" {
		return fmt.Errorf("%w: UUID cannot be empty", ErrInvalidUUID)
	}
	if _, err := uuid.Parse(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}
	return nil
}

func IsValidUUID(u string) bool {
	return IsUUID(u) == nil
}

func NewUUID() string {
	return uuid.New().String()
}
