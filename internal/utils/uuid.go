package utils

import "github.com/google/uuid"

// UUIDGenerator produces client-side identifiers for sync queue items and
// quiz attempts. UUIDv7 keeps identifiers roughly time-ordered, which makes
// queue rows easier to read during debugging; v4 is the fallback when the
// monotonic source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
