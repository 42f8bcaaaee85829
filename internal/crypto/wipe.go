package crypto

import "runtime"

// Wipe overwrites b with zeros. runtime.KeepAlive keeps the writes from
// being optimized away as dead stores after the slice's last use.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// WipeAll wipes each of the given slices.
func WipeAll(bufs ...[]byte) {
	for _, b := range bufs {
		Wipe(b)
	}
}
