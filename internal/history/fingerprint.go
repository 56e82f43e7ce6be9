package history

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint derives a short stable identifier from a public API key so
// runs can be correlated to a key without storing the key itself.
func Fingerprint(publicKey string) string {
	sum := blake2b.Sum256([]byte(publicKey))
	return hex.EncodeToString(sum[:12])
}
