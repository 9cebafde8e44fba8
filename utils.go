package hashtable

// CapacityFor returns the smallest open-table capacity that accepts n
// distinct keys without resizing under the given max load factor.
func CapacityFor(n int, maxLoadFactor float64) int {
	if n <= 1 || maxLoadFactor <= 0 || maxLoadFactor >= 1 {
		return 1
	}

	// An insert resizes once size >= capacity*maxLoadFactor, and the
	// last of n inserts sees size n-1.
	last := float64(n - 1)

	c := max(1, int(last/maxLoadFactor))
	for c > 1 && last < float64(c-1)*maxLoadFactor {
		c--
	}

	for last >= float64(c)*maxLoadFactor {
		c++
	}

	return c
}
