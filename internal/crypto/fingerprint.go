package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"stegcalc/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a blob, typically a carrier
// image.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(b []byte) domain.Fingerprint {
	sum := blake2b.Sum256(b)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
