package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// secretByteLength is the number of random bytes in a generated secret.
// 32 bytes gives 256 bits of entropy before encoding.
const secretByteLength = 32

// GenerateSecret produces a random initial credential for a newly provisioned
// account: 32 bytes from crypto/rand, base64url-encoded without padding.
//
// Returns an error only if the operating system's entropy source fails.
func GenerateSecret() (string, error) {
	buf := make([]byte, secretByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes for secret: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashSecret computes the bcrypt hash of the given plaintext secret using the
// provided cost. A cost of zero selects bcrypt.DefaultCost.
//
// The returned hash is what gets persisted; the plaintext is discarded after
// being returned to the caller once.
func HashSecret(secret string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}

	return string(hash), nil
}

// CompareSecret reports whether the plaintext secret matches the stored
// bcrypt hash.
func CompareSecret(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
