package crypto

import "runtime"

// Wipe zeroes b in place. The runtime may already hold other copies of the
// bytes, so this only shortens the life of this one.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
