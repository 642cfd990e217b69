//go:build !linux

package seed

import "crypto/rand"

// Read fills buf with cryptographically strong random bytes. On
// platforms without getrandom(2), crypto/rand already picks the right
// OS primitive (arc4random, getentropy, /dev/urandom, CryptGenRandom).
func Read(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}
