package seed

// reader adapts Read to the io.Reader interface expected by
// internal/bignum.RandomBelow and crypto/rand-shaped APIs generally.
type reader struct{}

func (reader) Read(p []byte) (int, error) {
	if err := Read(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Reader is an io.Reader backed by Read, suitable for passing directly
// to internal/bignum.RandomBelow.
var Reader reader
