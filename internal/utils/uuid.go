package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered unique identifiers.
type UUIDGenerator struct {
}

// NewUUIDGenerator returns a ready to use [UUIDGenerator].
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 when the
// v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateFileName returns a unique file name ending in the lower-cased ext,
// e.g. "0190c5e2-....jpg". An empty ext yields a bare identifier.
func (g *UUIDGenerator) GenerateFileName(ext string) string {
	return g.Generate() + strings.ToLower(ext)
}
