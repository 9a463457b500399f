package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minicrypt/internal/export"
	"minicrypt/internal/services/walkthrough"
)

// run executes the CLI with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{
		"MINICRYPT_DH_BASE", "MINICRYPT_DH_MODULUS", "MINICRYPT_ALICE_PRIVATE",
		"MINICRYPT_BOB_PRIVATE", "MINICRYPT_MIN_PRIME", "MINICRYPT_KDF", "MINICRYPT_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--quiet"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestKeygen(t *testing.T) {
	out, err := run(t, "", "keygen", "61", "53")
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	for _, want := range []string{"n = p * q: 3233", "phi(n): 3120", "(65537, 3233)", "(2753, 3233)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestKeygen_RejectsComposite(t *testing.T) {
	if _, err := run(t, "", "keygen", "60", "53"); err == nil {
		t.Fatal("want error for composite p")
	}
}

func TestEncryptDecrypt(t *testing.T) {
	ct, err := run(t, "", "encrypt", "SECRET", "--key", "41234")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	pt, err := run(t, "", "decrypt", strings.TrimSpace(ct), "--key", "41234")
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if strings.TrimSpace(pt) != "SECRET" {
		t.Fatalf("want SECRET, got %q", pt)
	}
}

func TestSignVerify(t *testing.T) {
	sig, err := run(t, "", "sign", "HELLO", "--n", "3233", "--d", "2753")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	out, err := run(t, "", "verify", "HELLO", strings.TrimSpace(sig), "--n", "3233")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !strings.Contains(out, "Signature Valid: Yes") {
		t.Fatalf("unexpected output %q", out)
	}
	out, err = run(t, "", "verify", "HELLP", strings.TrimSpace(sig), "--n", "3233")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !strings.Contains(out, "Signature Valid: No") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestExchange_FlagsOverrideConfig(t *testing.T) {
	out, err := run(t, "", "exchange", "--base", "2", "--modulus", "23", "--alice", "6", "--bob", "15")
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	// 2^6 mod 23 = 18, 2^15 mod 23 = 16, 16^6 mod 23 = 18^15 mod 23 = 4
	for _, want := range []string{"A = base^a mod p: 18", "B = base^b mod p: 16", "Alice computes shared key: 4", "Bob computes shared key: 4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDemo_PromptsAndRetries(t *testing.T) {
	out, err := run(t, "SECRET\n47\n53\n61\n53\n", "demo")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	for _, want := range []string{
		"Try again.",
		"Decrypted Message: SECRET",
		"Signature Valid: Yes",
		"Signature Valid After Tampering: No",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDemo_EOF(t *testing.T) {
	if _, err := run(t, "SECRET\n47\n", "demo"); err == nil {
		t.Fatal("want error when input runs out")
	}
}

func TestDemo_JSON(t *testing.T) {
	out, err := run(t, "", "demo", "-m", "HELLO", "--p", "61", "--q", "53", "--json")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	var rep walkthrough.Report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if !rep.Opened.Valid || string(rep.Opened.Plaintext) != "HELLO" {
		t.Fatalf("unexpected report %+v", rep.Opened)
	}
	if rep.Tampered.Opened.Valid {
		t.Fatal("tampered message verified")
	}
}

func TestDemo_WritesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if _, err := run(t, "", "demo", "-m", "SECRET", "--p", "61", "--q", "53", "--out", path); err != nil {
		t.Fatalf("demo: %v", err)
	}
	var rep walkthrough.Report
	if err := export.ReadJSON(path, &rep); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if rep.Keys.Private.Exponent != 2753 {
		t.Fatalf("want d=2753, got %d", rep.Keys.Private.Exponent)
	}
	if rep.Sealed.Ciphertext == "" || rep.Tampered.Ciphertext == rep.Sealed.Ciphertext {
		t.Fatalf("unexpected ciphertexts %q / %q", rep.Sealed.Ciphertext, rep.Tampered.Ciphertext)
	}
}
