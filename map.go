package hashtable

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Map is the contract shared by both table variants: a mapping from string
// keys to values of type V. Tables are not safe for concurrent use.
type Map[V any] interface {
	// Insert stores the value under the key. Returns whether the key is new.
	Insert(key string, value V) bool
	// Search returns the value stored under the key and whether it was found.
	Search(key string) (V, bool)
	// Delete removes the key. Returns whether it was present.
	Delete(key string) bool

	LoadFactor() float64
	Len() int
	Cap() int

	All() iter.Seq2[string, V]
	Stats() Stats
	Reset()

	// Dump writes a human-readable listing of every bucket or slot.
	// The format is meant for debugging only.
	Dump(w io.Writer) error
}

var (
	_ Map[int] = (*ChainedTable[int])(nil)
	_ Map[int] = (*OpenTable[int])(nil)
)

// Kind selects a collision-resolution strategy.
type Kind uint8

const (
	KindChained Kind = iota + 1
	KindOpen
)

func (k Kind) String() string {
	switch k {
	case KindChained:
		return "chained"
	case KindOpen:
		return "open"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "chained", "chaining":
		return KindChained, nil
	case "open", "open-addressing":
		return KindOpen, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New returns an empty table of the given kind.
func New[V any](kind Kind, capacity int, opts ...Option) (Map[V], error) {
	switch kind {
	case KindChained:
		return NewChained[V](capacity, opts...)
	case KindOpen:
		return NewOpen[V](capacity, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}
