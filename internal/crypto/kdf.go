package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"minicrypt/internal/domain"
)

// KeyDerivation selects how a shared secret becomes stream cipher key bytes.
type KeyDerivation string

const (
	// KDFText uses the decimal rendering of the secret as the key.
	KDFText KeyDerivation = "text"
	// KDFHKDF expands the decimal rendering with HKDF-SHA256.
	KDFHKDF KeyDerivation = "hkdf"
)

const hkdfKeyBytes = 16

var hkdfInfo = []byte("minicrypt-stream-key")

// DeriveKey turns secret into a non-empty stream cipher key. An empty mode
// means KDFText.
func DeriveKey(secret domain.SharedSecret, mode KeyDerivation) ([]byte, error) {
	text := []byte(secret.String())
	switch mode {
	case KDFText, "":
		return text, nil
	case KDFHKDF:
		key := make([]byte, hkdfKeyBytes)
		if _, err := io.ReadFull(hkdf.New(sha256.New, text, nil, hkdfInfo), key); err != nil {
			return nil, err
		}
		return key, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKDF, mode)
	}
}
