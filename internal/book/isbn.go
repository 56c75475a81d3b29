package book

import "github.com/google/uuid"

// ISBNGenerator produces a globally unique token for a new book. Anything
// collision-resistant will do; no structural constraint is placed on the
// value.
type ISBNGenerator interface {
	Generate() string
}

// UUIDGenerator issues random 128-bit identifiers rendered as text.
type UUIDGenerator struct{}

func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}
