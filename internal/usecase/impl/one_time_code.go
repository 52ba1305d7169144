// Package impl contains the concrete implementations of the usecase
// interfaces, wiring the domain layer to the repositories and services.
package impl

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"

	"ishop/internal/errors"
)

// generateCode produces a random six digit verification code from a CSPRNG.
// Leading zeros are kept, the code space is exactly 000000-999999.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate verification code")
	}

	digits := []byte("000000")
	v := n.Int64()
	for i := len(digits) - 1; i >= 0 && v > 0; i-- {
		digits[i] = byte('0' + v%10)
		v /= 10
	}

	return string(digits), nil
}

// hashCode hashes a plaintext code for storage. Only the hash is ever
// persisted; the plaintext goes out by email and is then forgotten.
func hashCode(code string) string {
	sum := sha256.Sum256([]byte(code))

	return hex.EncodeToString(sum[:])
}

// codeMatches compares a submitted plaintext code against a stored hash.
func codeMatches(code, storedHash string) bool {
	return storedHash != "" && hashCode(code) == storedHash
}
