package rxe

// Config controls how Parse reads a pattern (spec.md §6.2): the two
// case/dot-matching flags the reference implementation exposes as a
// bitmask, plus a sizing hint for the back-reference table.
//
// Example:
//
//	cfg := rxe.DefaultConfig()
//	cfg.Caseless = true
//	t := rxe.Parse("[a-f]{6}", cfg)
type Config struct {
	// Caseless folds every literal character and class range to match
	// both cases, the way CASELESS does in the reference implementation.
	// Default: false.
	Caseless bool

	// DotAll makes '.' match every byte, including '\n'. When false, '.'
	// excludes '\n' only.
	// Default: false.
	DotAll bool

	// BackrefTableHint is the back-reference table's initial capacity,
	// an optimization for patterns with many groups. It is never a hard
	// limit: the table grows past the hint like any other slice.
	// Default: 10.
	BackrefTableHint int
}

// DefaultConfig returns the starting configuration to pass to Parse:
// both flags clear, a back-reference table sized for ten groups.
func DefaultConfig() Config {
	return Config{
		Caseless:         false,
		DotAll:           false,
		BackrefTableHint: 10,
	}
}

// Validate reports whether c's fields are all in range. The boolean
// flags can never be invalid; only BackrefTableHint is checked.
func (c Config) Validate() error {
	if c.BackrefTableHint < 0 {
		return &ConfigError{
			Field:   "BackrefTableHint",
			Message: "must be non-negative",
		}
	}
	return nil
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rxe: invalid config: " + e.Field + ": " + e.Message
}
