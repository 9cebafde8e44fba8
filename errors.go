package hashtable

import "errors"

var (
	ErrInvalidCapacity     = errors.New("capacity must be positive")
	ErrInvalidLoadFactor   = errors.New("max load factor must be within (0, 1)")
	ErrInvalidGrowthFactor = errors.New("growth factor must be within [2, 16]")
	ErrUnknownKind         = errors.New("unknown table kind")
)
