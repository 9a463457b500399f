package keys_test

import (
	"errors"
	"testing"

	"minicrypt/internal/crypto"
	"minicrypt/internal/domain"
	"minicrypt/internal/observe"
	"minicrypt/internal/services/keys"
)

func TestGenerate_SignVerify(t *testing.T) {
	rec := &observe.Recorder{}
	svc := keys.New(rec)

	kp, err := svc.Generate(61, 53)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	sig, err := svc.Sign([]byte("HELLO"), kp.Private)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	ok, err := svc.Verify([]byte("HELLO"), sig, kp.Public)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("want valid signature")
	}

	var sawFingerprint, sawDigest bool
	for _, ev := range rec.Events() {
		switch ev.Name {
		case "fingerprint":
			sawFingerprint = ev.Value == crypto.Fingerprint(kp.Public)
		case "digest":
			sawDigest = ev.Value == domain.Integer(372)
		}
	}
	if !sawFingerprint || !sawDigest {
		t.Fatalf("missing narration: fingerprint=%v digest=%v", sawFingerprint, sawDigest)
	}
}

func TestGenerate_WrapsInvalidModulus(t *testing.T) {
	if _, err := keys.New(nil).Generate(61, 61); !errors.Is(err, crypto.ErrInvalidModulus) {
		t.Fatalf("want ErrInvalidModulus, got %v", err)
	}
}
