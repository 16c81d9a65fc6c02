package automaton

// Config controls automaton construction limits. Reggy's dialect has no
// unbounded character classes or backreferences, so it needs far fewer
// knobs than a general-purpose regex engine: documented fields with
// defaults and a Validate method, scaled down to what the NFA/DFA driver
// actually needs.
//
// Build and BuildPrefilter do not take a Config, and nothing in this
// module reads its fields: the prefilter is always built, and no recursion
// or quantifier limit is enforced during compilation. Validate only checks
// that the fields are within range.
type Config struct {
	// EnablePrefilter turns on the Aho-Corasick literal-prefix filter for
	// admitting new VisitedWords. When false, every confirmed segment is
	// admitted unconditionally.
	// Default: true
	EnablePrefilter bool

	// MaxRecursionDepth limits recursion depth during NFA compilation,
	// guarding against pathological nesting in a hand-built pattern set.
	// Default: 100
	MaxRecursionDepth int

	// MaxQuantifierBound caps {n,m}'s m, preventing a single pattern from
	// unrolling into an unreasonably large instruction list.
	// Default: 1000
	MaxQuantifierBound int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:    true,
		MaxRecursionDepth:  100,
		MaxQuantifierBound: 1000,
	}
}

// Validate checks that c's fields are within accepted ranges.
func (c Config) Validate() error {
	if c.MaxRecursionDepth < 1 || c.MaxRecursionDepth > 10_000 {
		return &ConfigError{Field: "MaxRecursionDepth", Message: "must be between 1 and 10,000"}
	}
	if c.MaxQuantifierBound < 1 || c.MaxQuantifierBound > 100_000 {
		return &ConfigError{Field: "MaxQuantifierBound", Message: "must be between 1 and 100,000"}
	}
	return nil
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "automaton: invalid config: " + e.Field + ": " + e.Message
}
