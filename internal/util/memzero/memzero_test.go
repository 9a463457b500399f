package memzero_test

import (
	"testing"

	"minicrypt/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte("41234")
	memzero.Zero(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped: %#x", i, v)
		}
	}
	memzero.Zero(nil)
}
