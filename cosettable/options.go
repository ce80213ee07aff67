package cosettable

// defaultMaxCosets bounds enumeration for any presentation that does not
// override it. Every finite Coxeter or rotation subgroup this engine
// targets (up to the order-14400 H4 group) closes well under this.
const defaultMaxCosets = 1 << 20

// Config holds the tunable limits for a Table.
type Config struct {
	MaxCosets int
}

// Option configures a Table at construction time.
type Option func(*Config)

// WithMaxCosets overrides the coset-count bound used to detect
// divergence. n must be positive; non-positive values are ignored.
func WithMaxCosets(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxCosets = n
		}
	}
}

// defaultConfig returns the Config used when no options are supplied.
func defaultConfig() Config {
	return Config{MaxCosets: defaultMaxCosets}
}
