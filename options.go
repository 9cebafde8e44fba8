package hashtable

import "fmt"

const (
	DefaultMaxLoadFactor = 0.7
	DefaultGrowthFactor  = 2
	MaxGrowthFactor      = 16
)

type config struct {
	hashFunc      HashFunc
	maxLoadFactor float64
	growthFactor  int
}

type Option func(c *config)

// Override default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(c *config) {
		c.hashFunc = f
	}
}

// WithMaxLoadFactor sets the load factor at which an open table grows
// before the next insert. Ignored by the chained table, which never grows.
func WithMaxLoadFactor(f float64) Option {
	return func(c *config) {
		c.maxLoadFactor = f
	}
}

// WithGrowthFactor sets the capacity multiplier applied on every resize
// of an open table.
func WithGrowthFactor(n int) Option {
	return func(c *config) {
		c.growthFactor = n
	}
}

func newConfig(capacity int, opts []Option) (config, error) {
	c := config{
		hashFunc:      SimpleHash,
		maxLoadFactor: DefaultMaxLoadFactor,
		growthFactor:  DefaultGrowthFactor,
	}

	if capacity <= 0 {
		return c, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.hashFunc == nil {
		c.hashFunc = SimpleHash
	}

	if !(c.maxLoadFactor > 0 && c.maxLoadFactor < 1) {
		return c, fmt.Errorf("%w: got %v", ErrInvalidLoadFactor, c.maxLoadFactor)
	}

	if c.growthFactor < 2 || c.growthFactor > MaxGrowthFactor {
		return c, fmt.Errorf("%w: got %d", ErrInvalidGrowthFactor, c.growthFactor)
	}

	return c, nil
}
