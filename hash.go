package hashtable

import "fmt"

// HashFunc maps a key onto a slot index in [0, capacity).
// Implementations must be pure: the same key and capacity always yield the same index.
type HashFunc func(key string, capacity int) int

// SimpleHash sums the code points of the key and reduces the sum modulo capacity.
// The distribution is poor for similar keys and every anagram collides.
//
// Panics if capacity is not positive.
func SimpleHash(key string, capacity int) int {
	if capacity <= 0 {
		panic(fmt.Sprintf("hashtable: SimpleHash called with capacity %d", capacity))
	}

	var sum uint64
	for _, r := range key {
		sum += uint64(r)
	}

	return int(sum % uint64(capacity))
}
