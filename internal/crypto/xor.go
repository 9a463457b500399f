package crypto

// Encrypt XORs plaintext with the repeating key and returns the result as
// uppercase hex.
func Encrypt(plaintext, key []byte) (string, error) {
	out, err := xorKeyStream(plaintext, key)
	if err != nil {
		return "", err
	}
	return HexEncode(out), nil
}

// Decrypt hex-decodes ciphertextHex and applies the same XOR as Encrypt.
//
// There is no authentication: any well-formed hex input yields some
// plaintext without error.
func Decrypt(ciphertextHex string, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	raw, err := HexDecode(ciphertextHex)
	if err != nil {
		return nil, err
	}
	return xorKeyStream(raw, key)
}

// xorKeyStream returns src XOR key[i mod len(key)] in a fresh slice.
func xorKeyStream(src, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	dst := make([]byte, len(src))
	for i := range src {
		dst[i] = src[i] ^ key[i%len(key)]
	}
	return dst, nil
}
