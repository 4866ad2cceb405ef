package utils

import "github.com/google/uuid"

// UUIDGenerator hands out record identifiers. Version 7 identifiers are
// preferred because they sort by creation time; a random v4 is used if the
// clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
