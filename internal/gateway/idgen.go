package gateway

import (
	"github.com/google/uuid"

	"receipt-processor/internal/usecase"
)

// UUIDGenerator mints version-4 UUIDs from a cryptographically secure random
// source. Identifiers double as read capabilities, so guessability matters.
type UUIDGenerator struct{}

var _ usecase.IDGenerator = UUIDGenerator{}

// NewUUIDGenerator creates a new generator instance.
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// NewID returns a canonical 36-character UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
