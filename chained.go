package hashtable

import (
	"iter"
	"slices"
)

type entry[V any] struct {
	key   string
	value V
}

// ChainedTable resolves collisions by separate chaining: every bucket owns
// the slice of entries whose keys hash to it.
// The capacity is fixed at construction, so the load factor may exceed 1.
type ChainedTable[V any] struct {
	buckets [][]entry[V]

	capacity int
	size     int

	hashFunc HashFunc

	emptyV V
}

// Returns a new chained table with the given number of buckets.
func NewChained[V any](capacity int, opts ...Option) (*ChainedTable[V], error) {
	c, err := newConfig(capacity, opts)
	if err != nil {
		return nil, err
	}

	return &ChainedTable[V]{
		buckets:  make([][]entry[V], capacity),
		capacity: capacity,
		hashFunc: c.hashFunc,
	}, nil
}

// Insert stores the value under the key, overwriting any previous value.
// Returns whether the key is new.
func (ct *ChainedTable[V]) Insert(key string, value V) bool {
	idx := ct.hashFunc(key, ct.capacity)
	bucket := ct.buckets[idx]

	for i := range bucket {
		if bucket[i].key == key {
			bucket[i].value = value
			return false
		}
	}

	ct.buckets[idx] = append(bucket, entry[V]{key: key, value: value})
	ct.size++

	return true
}

func (ct *ChainedTable[V]) Search(key string) (V, bool) {
	if i, bucket := ct.lookup(key); i >= 0 {
		return ct.buckets[bucket][i].value, true
	}

	return ct.emptyV, false
}

// Delete removes the key, keeping the order of its bucket-mates.
func (ct *ChainedTable[V]) Delete(key string) bool {
	i, bucket := ct.lookup(key)
	if i < 0 {
		return false
	}

	ct.buckets[bucket] = slices.Delete(ct.buckets[bucket], i, i+1)
	ct.size--

	return true
}

func (ct *ChainedTable[V]) lookup(key string) (int, int) {
	idx := ct.hashFunc(key, ct.capacity)

	for i := range ct.buckets[idx] {
		if ct.buckets[idx][i].key == key {
			return i, idx
		}
	}

	return -1, idx
}

func (ct *ChainedTable[V]) LoadFactor() float64 {
	return float64(ct.size) / float64(ct.capacity)
}

func (ct *ChainedTable[V]) Len() int {
	return ct.size
}

func (ct *ChainedTable[V]) Cap() int {
	return ct.capacity
}

// All yields live entries bucket by bucket, in chain order.
func (ct *ChainedTable[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, bucket := range ct.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (ct *ChainedTable[V]) Stats() Stats {
	longest := 0
	for _, bucket := range ct.buckets {
		longest = max(longest, len(bucket))
	}

	return Stats{
		Size:       ct.size,
		Capacity:   ct.capacity,
		LoadFactor: ct.LoadFactor(),
		LongestRun: longest,
	}
}

func (ct *ChainedTable[V]) Reset() {
	clear(ct.buckets)
	ct.size = 0
}
