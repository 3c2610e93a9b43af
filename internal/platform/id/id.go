package id

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// UUID issues random (v4) identifiers for stored records.
type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}

// RandomHex issues 32 random bytes as hex. Used for bearer tokens.
type RandomHex struct{}

func (RandomHex) New() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
