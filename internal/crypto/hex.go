package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// HexEncode returns the uppercase hex form of b, two characters per byte.
func HexEncode(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// HexDecode parses s pairwise into bytes. Both cases are accepted.
func HexDecode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return b, nil
}
