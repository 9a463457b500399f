package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"minicrypt/internal/domain"
)

// Fingerprint returns a short hex fingerprint of an RSA key.
//
// It hashes "n:exponent" with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(k domain.RSAKey) domain.Fingerprint {
	text := strconv.FormatInt(k.Modulus, 10) + ":" + strconv.FormatInt(k.Exponent, 10)
	sum := sha256.Sum256([]byte(text))
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
