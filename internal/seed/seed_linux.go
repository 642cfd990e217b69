//go:build linux

// Package seed supplies entropy for the command-line front end's
// uniform-random sampling mode (spec.md §6.4's `-r`), which the core
// library itself never needs: every Tree operation besides random
// sampling is purely positional.
package seed

import "golang.org/x/sys/unix"

// Read fills buf with cryptographically strong random bytes, sourced
// from getrandom(2) on Linux (the same syscall crypto/rand.Reader uses
// there, called here directly through golang.org/x/sys/unix).
func Read(buf []byte) error {
	for len(buf) > 0 {
		n, err := unix.Getrandom(buf, 0)
		if err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}
