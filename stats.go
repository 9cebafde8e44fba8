package hashtable

// Stats is a point-in-time snapshot of a table's occupancy.
type Stats struct {
	Size       int
	Capacity   int
	Tombstones int
	LoadFactor float64

	TombstonesCapacityRatio float64

	// LongestRun is the longest bucket for a chained table
	// and the longest cluster of non-empty slots for an open table.
	LongestRun int

	// Resizes counts rebuilds that grew the table, Rehashes the ones
	// that only dropped tombstones at the same capacity.
	Resizes  int
	Rehashes int
}
