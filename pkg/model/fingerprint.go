package model

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint computes the content hash of source text used for duplicate
// detection. It is deterministic and never exposed as a primary identifier.
func Fingerprint(sourceText string) string {
	sum := sha256.Sum256([]byte(sourceText))
	return hex.EncodeToString(sum[:])
}
