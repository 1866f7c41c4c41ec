package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes new passwords with bcrypt and still verifies the
// legacy unsalted base64(SHA-256) hashes found in older rows.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher. A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a bcrypt hash of senha
func (h *PasswordHasher) Hash(senha string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(senha), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether senha matches the stored hash in either format
func (h *PasswordHasher) Verify(senha, hash string) bool {
	if hash == "" {
		return false
	}
	if isBcryptHash(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(legacyHash(senha)), []byte(hash)) == 1
}

// NeedsUpgrade reports whether hash is in the legacy format
func (h *PasswordHasher) NeedsUpgrade(hash string) bool {
	return hash != "" && !isBcryptHash(hash)
}

func isBcryptHash(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}

func legacyHash(senha string) string {
	sum := sha256.Sum256([]byte(senha))
	return base64.StdEncoding.EncodeToString(sum[:])
}
