//go:build linux || darwin || freebsd

package brc

import "golang.org/x/sys/unix"

// adviseSequential hints the kernel to read ahead aggressively. Workers
// walk their ranges front to back, so it's only a hint; errors are ignored.
func adviseSequential(b []byte) {
	_ = unix.Madvise(b, unix.MADV_SEQUENTIAL)
}
