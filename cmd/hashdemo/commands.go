package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/homier/hashtable"
)

type pair[V any] struct {
	key   string
	value V
}

var fruitPrices = []pair[int]{
	{"apple", 10},
	{"banana", 20},
	{"orange", 30},
	{"grape", 40},
	{"kiwi", 50},
	{"melon", 60},
}

var fruitColours = []pair[string]{
	{"apple", "red"},
	{"banana", "yellow"},
	{"orange", "orange"},
	{"grape", "purple"},
	{"kiwi", "green"},
	{"melon", "green"},
	{"strawberry", "red"},
	{"blueberry", "blue"},
	{"peach", "orange"},
	{"pear", "green"},
	{"mango", "yellow"},
	{"pineapple", "brown"},
	{"watermelon", "green"},
	{"cherry", "red"},
	{"plum", "purple"},
}

type Demo struct {
	Kind     string `short:"k" long:"kind" default:"chained" description:"table kind [chained, open]"`
	Capacity int    `short:"c" long:"capacity" default:"5" description:"initial capacity"`

	out io.Writer
}

func (x *Demo) Execute(args []string) error {
	kind, err := hashtable.ParseKind(x.Kind)
	if err != nil {
		return err
	}

	m, err := hashtable.New[int](kind, x.Capacity)
	if err != nil {
		return err
	}
	log.Infof("created %s table with capacity %d", kind, x.Capacity)

	data := fruitPrices
	if kind == hashtable.KindOpen {
		data = data[:5]
	}

	fmt.Fprintln(x.out, "inserting:")
	for _, p := range data {
		m.Insert(p.key, p.value)
		fmt.Fprintf(x.out, "  %s: %d\n", p.key, p.value)
	}

	if err := m.Dump(x.out); err != nil {
		return err
	}

	fmt.Fprintln(x.out, "searching:")
	for _, key := range []string{"apple", "banana", "cherry"} {
		x.printSearch(m, key)
	}

	fmt.Fprintln(x.out, "deleting:")
	if m.Delete("orange") {
		fmt.Fprintln(x.out, "  orange deleted")
	} else {
		fmt.Fprintln(x.out, "  orange not found")
	}

	if err := m.Dump(x.out); err != nil {
		return err
	}

	fmt.Fprintln(x.out, "searching after delete:")
	x.printSearch(m, "orange")

	return nil
}

func (x *Demo) printSearch(m hashtable.Map[int], key string) {
	if v, ok := m.Search(key); ok {
		fmt.Fprintf(x.out, "  %s found: %d\n", key, v)
	} else {
		fmt.Fprintf(x.out, "  %s not found\n", key)
	}
}

type Resize struct {
	Capacity int `short:"c" long:"capacity" default:"5" description:"initial capacity"`
	Count    int `short:"n" long:"count" default:"10" description:"number of keys to insert"`

	out io.Writer
}

func (x *Resize) Execute(args []string) error {
	t, err := hashtable.NewOpen[string](x.Capacity)
	if err != nil {
		return err
	}

	fmt.Fprintf(x.out, "initial capacity: %d\n", t.Cap())

	for i := range x.Count {
		key := "key_" + strconv.Itoa(i)

		before := t.Cap()
		t.Insert(key, "value_"+strconv.Itoa(i))
		if t.Cap() != before {
			log.Infof("table grew %d -> %d on %s", before, t.Cap(), key)
		}

		fmt.Fprintf(x.out, "  added %s, size: %d/%d\n", key, t.Len(), t.Cap())
	}

	stats := t.Stats()
	fmt.Fprintf(x.out, "final capacity: %d after %d resizes\n", stats.Capacity, stats.Resizes)
	fmt.Fprintf(x.out, "capacity needed to avoid resizing: %d\n",
		hashtable.CapacityFor(x.Count, hashtable.DefaultMaxLoadFactor))

	return nil
}

type Compare struct {
	Capacity int `short:"c" long:"capacity" default:"10" description:"initial capacity of both tables"`

	out io.Writer
}

func (x *Compare) Execute(args []string) error {
	var insertTimes, searchTimes [2]time.Duration

	for i, kind := range []hashtable.Kind{hashtable.KindChained, hashtable.KindOpen} {
		m, err := hashtable.New[string](kind, x.Capacity)
		if err != nil {
			return err
		}

		start := time.Now()
		for _, p := range fruitColours {
			m.Insert(p.key, p.value)
		}
		insertTimes[i] = time.Since(start)

		start = time.Now()
		for _, p := range fruitColours {
			m.Search(p.key)
		}
		searchTimes[i] = time.Since(start)

		stats := m.Stats()
		fmt.Fprintf(x.out, "%s:\n", kind)
		fmt.Fprintf(x.out, "  insert: %s\n", insertTimes[i])
		fmt.Fprintf(x.out, "  search: %s\n", searchTimes[i])
		fmt.Fprintf(x.out, "  load factor: %.2f\n", stats.LoadFactor)
		fmt.Fprintf(x.out, "  longest run: %d\n", stats.LongestRun)
	}

	fmt.Fprintln(x.out, "chained/open:")
	x.printRatio("insert", insertTimes)
	x.printRatio("search", searchTimes)

	return nil
}

func (x *Compare) printRatio(op string, d [2]time.Duration) {
	if d[1] == 0 {
		fmt.Fprintf(x.out, "  %s: open addressing below timer resolution\n", op)
		return
	}

	fmt.Fprintf(x.out, "  %s: %.2f\n", op, float64(d[0])/float64(d[1]))
}

type LoadFactor struct {
	Capacity int `short:"c" long:"capacity" default:"100" description:"capacity of the chained table"`

	out io.Writer
}

var loadFactors = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

func (x *LoadFactor) Execute(args []string) error {
	w := tabwriter.NewWriter(x.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "alpha\tkeys\tinsert\tsearch\tdelete\tlongest chain")

	for _, alpha := range loadFactors {
		t, err := hashtable.NewChained[string](x.Capacity)
		if err != nil {
			return err
		}

		n := int(float64(x.Capacity) * alpha)
		keys := make([]string, n)
		for i := range keys {
			keys[i] = "key_" + strconv.Itoa(i)
		}

		start := time.Now()
		for i, k := range keys {
			t.Insert(k, "value_"+strconv.Itoa(i))
		}
		insert := time.Since(start)
		longest := t.Stats().LongestRun

		start = time.Now()
		for _, k := range keys {
			t.Search(k)
		}
		search := time.Since(start)

		start = time.Now()
		for _, k := range keys {
			t.Delete(k)
		}
		del := time.Since(start)

		log.Debugf("alpha %.1f: %d keys, %d left after delete", alpha, n, t.Len())
		fmt.Fprintf(w, "%.1f\t%d\t%s\t%s\t%s\t%d\n", alpha, n, insert, search, del, longest)
	}

	return w.Flush()
}
