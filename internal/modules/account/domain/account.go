package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Account owns sessions and blocklist entries. Only the SHA-256 of its
// bearer token is kept.
type Account struct {
	ID        string
	Name      string
	TokenHash string
	CreatedAt time.Time
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("account name is required")
	}
	if len(a.TokenHash) != sha256.Size*2 {
		return fmt.Errorf("token hash must be a sha256 hex digest")
	}
	return nil
}

func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
