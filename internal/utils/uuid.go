package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered UUIDv7 strings, falling back to a
// random UUIDv4 if the v7 source fails.
type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator returns a generator without a prefix.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewPrefixedUUIDGenerator returns a generator whose ids start with prefix
// (e.g. "platform_").
func NewPrefixedUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return g.prefix + uuid.NewString()
	}

	return g.prefix + v7.String()
}
