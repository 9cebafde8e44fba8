package hashtable

import (
	"bufio"
	"fmt"
	"io"
)

func dumpHeader(w *bufio.Writer, size, capacity int, loadFactor float64) {
	fmt.Fprintf(w, "size: %d/%d\n", size, capacity)
	fmt.Fprintf(w, "load factor: %.2f\n", loadFactor)
}

func (ct *ChainedTable[V]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	dumpHeader(bw, ct.size, ct.capacity, ct.LoadFactor())

	for i, bucket := range ct.buckets {
		if len(bucket) == 0 {
			fmt.Fprintf(bw, "bucket %d: empty\n", i)
			continue
		}

		fmt.Fprintf(bw, "bucket %d: ", i)
		for _, e := range bucket {
			fmt.Fprintf(bw, "[%s: %v] -> ", e.key, e.value)
		}
		bw.WriteString("nil\n")
	}

	return bw.Flush()
}

func (t *OpenTable[V]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	dumpHeader(bw, t.size, t.capacity, t.LoadFactor())

	for i := range t.slots {
		s := &t.slots[i]

		switch s.state {
		case slotEmpty:
			fmt.Fprintf(bw, "[%d]: empty\n", i)
		case slotDeleted:
			fmt.Fprintf(bw, "[%d]: deleted\n", i)
		default:
			fmt.Fprintf(bw, "[%d]: %s -> %v\n", i, s.key, s.value)
		}
	}

	return bw.Flush()
}
