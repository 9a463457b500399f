// Package memzero wipes key material that is no longer needed.
package memzero

import "runtime"

// Zero overwrites b with zeros. It is best effort: the write is kept alive
// so the compiler cannot drop it as dead.
//
//go:noinline
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
