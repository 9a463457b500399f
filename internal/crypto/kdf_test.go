package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"minicrypt/internal/crypto"
	"minicrypt/internal/domain"
)

func TestDeriveKey_Text(t *testing.T) {
	for _, mode := range []crypto.KeyDerivation{crypto.KDFText, ""} {
		key, err := crypto.DeriveKey(domain.SharedSecret(41234), mode)
		if err != nil {
			t.Fatalf("DeriveKey(%q): %v", mode, err)
		}
		if string(key) != "41234" {
			t.Fatalf("want %q, got %q", "41234", key)
		}
	}
}

func TestDeriveKey_HKDF(t *testing.T) {
	a, err := crypto.DeriveKey(domain.SharedSecret(41234), crypto.KDFHKDF)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	b, err := crypto.DeriveKey(domain.SharedSecret(41234), crypto.KDFHKDF)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if len(a) != 16 {
		t.Fatalf("want 16 bytes, got %d", len(a))
	}
	if !bytes.Equal(a, b) {
		t.Fatal("hkdf output is not deterministic")
	}
	c, err := crypto.DeriveKey(domain.SharedSecret(41235), crypto.KDFHKDF)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if bytes.Equal(a, c) {
		t.Fatal("different secrets produced the same key")
	}
}

func TestDeriveKey_Unknown(t *testing.T) {
	if _, err := crypto.DeriveKey(1, "rot13"); !errors.Is(err, crypto.ErrUnknownKDF) {
		t.Fatalf("want ErrUnknownKDF, got %v", err)
	}
}

func TestFingerprint(t *testing.T) {
	pub := domain.RSAKey{Modulus: 3233, Exponent: 65537}
	priv := domain.RSAKey{Modulus: 3233, Exponent: 2753}
	fp := crypto.Fingerprint(pub)
	if len(fp) != 20 {
		t.Fatalf("want 20 hex chars, got %d", len(fp))
	}
	if fp != crypto.Fingerprint(pub) {
		t.Fatal("fingerprint is not deterministic")
	}
	if fp == crypto.Fingerprint(priv) {
		t.Fatal("distinct keys share a fingerprint")
	}
}
