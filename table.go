package hashtable

import (
	"fmt"
	"iter"
	"math"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	// Deleted slots keep probe chains intact: a probe walks past them,
	// while an insert may reuse them.
	slotDeleted
	slotOccupied
)

type slot[V any] struct {
	state slotState
	key   string
	value V
}

// OpenTable resolves collisions by open addressing with linear probing.
// Deletes leave tombstones behind. Once live entries and tombstones together
// reach 70% of the slots, the table is rebuilt before the next insert: it
// doubles (by default) when live entries alone are over the threshold, and
// is rehashed at the same capacity otherwise. Either way every tombstone
// is dropped, so a probe always meets an empty slot.
type OpenTable[V any] struct {
	slots []slot[V]

	capacity   int
	size       int
	tombstones int
	resizes    int
	rehashes   int

	hashFunc      HashFunc
	maxLoadFactor float64
	growthFactor  int

	emptyV V
}

// Returns a new open-addressing table with the given initial number of slots.
func NewOpen[V any](capacity int, opts ...Option) (*OpenTable[V], error) {
	c, err := newConfig(capacity, opts)
	if err != nil {
		return nil, err
	}

	return &OpenTable[V]{
		slots:         make([]slot[V], capacity),
		capacity:      capacity,
		hashFunc:      c.hashFunc,
		maxLoadFactor: c.maxLoadFactor,
		growthFactor:  c.growthFactor,
	}, nil
}

// Insert stores the value under the key, overwriting any previous value.
// Returns whether the key is new.
func (t *OpenTable[V]) Insert(key string, value V) bool {
	threshold := float64(t.capacity) * t.maxLoadFactor

	switch {
	case float64(t.size) >= threshold:
		t.grow(false)
	case float64(t.size+t.tombstones) >= threshold:
		t.rehash(t.capacity)
	}

	return t.insert(key, value)
}

func (t *OpenTable[V]) insert(key string, value V) bool {
	for {
		isNew, ok := t.put(key, value)
		if ok {
			return isNew
		}

		// Every slot holds some other key.
		t.grow(true)
	}
}

// put probes for the key and either updates it in place or claims the first
// free slot seen on the way. Returns whether the key is new and whether the
// write happened at all; the latter is false only when a full cycle met
// neither the key nor a free slot.
func (t *OpenTable[V]) put(key string, value V) (bool, bool) {
	var (
		home   = t.hashFunc(key, t.capacity)
		target = -1
	)

	for p := 0; p < t.capacity; p++ {
		idx := (home + p) % t.capacity
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			if target < 0 {
				target = idx
			}

			t.claim(target, key, value)
			return true, true
		case slotDeleted:
			// The key may still live further along the chain,
			// so keep probing and remember the first reusable slot.
			if target < 0 {
				target = idx
			}
		case slotOccupied:
			if s.key == key {
				s.value = value
				return false, true
			}
		}
	}

	if target >= 0 {
		t.claim(target, key, value)
		return true, true
	}

	return false, false
}

func (t *OpenTable[V]) claim(idx int, key string, value V) {
	if t.slots[idx].state == slotDeleted {
		t.tombstones--
	}

	t.slots[idx] = slot[V]{state: slotOccupied, key: key, value: value}
	t.size++
}

func (t *OpenTable[V]) Search(key string) (V, bool) {
	if idx := t.find(key); idx >= 0 {
		return t.slots[idx].value, true
	}

	return t.emptyV, false
}

// Delete turns the key's slot into a tombstone.
func (t *OpenTable[V]) Delete(key string) bool {
	idx := t.find(key)
	if idx < 0 {
		return false
	}

	t.slots[idx] = slot[V]{state: slotDeleted}
	t.size--
	t.tombstones++

	return true
}

// find returns the slot index holding the key, or -1.
func (t *OpenTable[V]) find(key string) int {
	home := t.hashFunc(key, t.capacity)

	for p := 0; p < t.capacity; p++ {
		idx := (home + p) % t.capacity
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			return -1
		case slotOccupied:
			if s.key == key {
				return idx
			}
		}
	}

	return -1
}

// grownCapacity multiplies the capacity by the growth factor.
// Reports false if the product does not fit in an int.
func grownCapacity(capacity, growthFactor int) (int, bool) {
	if capacity > math.MaxInt/growthFactor {
		return 0, false
	}

	return capacity * growthFactor, true
}

// grow rebuilds the table into a larger slot array.
//
// Panics if the new capacity overflows an int.
func (t *OpenTable[V]) grow(forced bool) {
	newCapacity, ok := grownCapacity(t.capacity, t.growthFactor)
	if !ok {
		panic(fmt.Sprintf("hashtable: capacity %d * %d overflows", t.capacity, t.growthFactor))
	}

	if forced {
		log.Warningf("probe cycle exhausted, forcing resize %d -> %d", t.capacity, newCapacity)
	} else {
		log.Debugf("resize %d -> %d (size %d, tombstones %d)", t.capacity, newCapacity, t.size, t.tombstones)
	}

	t.resizes++
	t.rehash(newCapacity)
}

// rehash re-inserts live entries in slot order into a fresh array of the
// given capacity, dropping every tombstone.
func (t *OpenTable[V]) rehash(capacity int) {
	if capacity == t.capacity {
		log.Debugf("rehash in place at %d (size %d, tombstones %d)", capacity, t.size, t.tombstones)
		t.rehashes++
	}

	old := t.slots

	t.slots = make([]slot[V], capacity)
	t.capacity = capacity
	t.size = 0
	t.tombstones = 0

	for i := range old {
		if old[i].state == slotOccupied {
			t.put(old[i].key, old[i].value)
		}
	}
}

func (t *OpenTable[V]) LoadFactor() float64 {
	return float64(t.size) / float64(t.capacity)
}

func (t *OpenTable[V]) Len() int {
	return t.size
}

func (t *OpenTable[V]) Cap() int {
	return t.capacity
}

// All yields live entries in slot order.
func (t *OpenTable[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := range t.slots {
			s := &t.slots[i]
			if s.state != slotOccupied {
				continue
			}

			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

func (t *OpenTable[V]) Stats() Stats {
	var (
		tombstones int
		longest    int
		run        int
		leading    = -1
	)

	for i := range t.slots {
		switch t.slots[i].state {
		case slotEmpty:
			if leading < 0 {
				leading = run
			}

			longest = max(longest, run)
			run = 0
		case slotDeleted:
			tombstones++
			run++
		default:
			run++
		}
	}

	if leading < 0 {
		// No empty slot at all.
		longest = t.capacity
	} else {
		// The trailing run wraps around into the leading one.
		longest = max(longest, run+leading)
	}

	return Stats{
		Size:       t.size,
		Capacity:   t.capacity,
		Tombstones: tombstones,
		LoadFactor: t.LoadFactor(),

		TombstonesCapacityRatio: float64(tombstones) / float64(t.capacity),

		LongestRun: longest,
		Resizes:    t.resizes,
		Rehashes:   t.rehashes,
	}
}

// Reset empties every slot, tombstones included, keeping the current capacity.
func (t *OpenTable[V]) Reset() {
	clear(t.slots)
	t.size = 0
	t.tombstones = 0
}
