package brc

import (
	"bytes"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/swiss"
)

// MaxRows is the largest input, in records, whose sums are guaranteed
// to fit an Entry: MaxRows * 999 <= math.MaxInt64.
const MaxRows = math.MaxInt64 / 999

// Entry holds the running statistics of one station, in tenths.
type Entry struct {
	Min   int
	Max   int
	Sum   int64
	Count uint64
}

func (e *Entry) update(t int) {
	if t < e.Min {
		e.Min = t
	}
	if t > e.Max {
		e.Max = t
	}
	e.Sum += int64(t)
	e.Count++
}

func (e *Entry) merge(other Entry) {
	if other.Min < e.Min {
		e.Min = other.Min
	}
	if other.Max > e.Max {
		e.Max = other.Max
	}
	e.Sum += other.Sum
	e.Count += other.Count
}

// Mean returns Sum/Count in tenths.
func (e Entry) Mean() float64 {
	return float64(e.Sum) / float64(e.Count)
}

type slot struct {
	name  []byte
	entry Entry
	next  int32 // next slot with the same hash, -1 terminates
}

// Table maps station names to their Entry.
//
// Names are hashed as raw bytes and looked up without converting them to
// strings, so updating a known station does not allocate. Slots are
// kept in first-insertion order. A Table is not safe for concurrent use.
type Table struct {
	index *swiss.Map[uint64, int32]
	slots []slot
}

const defaultStations = 1 << 10

// NewTable returns an empty table sized for about size stations.
func NewTable(size int) *Table {
	if size <= 0 {
		size = defaultStations
	}
	return &Table{
		index: swiss.NewMap[uint64, int32](uint32(size)),
		slots: make([]slot, 0, size),
	}
}

func (t *Table) lookup(name []byte) (h uint64, head int32, at int32) {
	h = xxhash.Sum64(name)
	head, ok := t.index.Get(h)
	if !ok {
		return h, -1, -1
	}
	for i := head; i != -1; i = t.slots[i].next {
		if bytes.Equal(t.slots[i].name, name) {
			return h, head, i
		}
	}
	return h, head, -1
}

func (t *Table) insert(h uint64, head int32, name []byte, e Entry) {
	i := int32(len(t.slots))
	t.slots = append(t.slots, slot{
		name:  bytes.Clone(name),
		entry: e,
		next:  head,
	})
	t.index.Put(h, i)
}

// Observe records one temperature for name. name is copied on first
// sight only, so it may alias a buffer that is reused afterwards.
func (t *Table) Observe(name []byte, temp int) {
	h, head, i := t.lookup(name)
	if i != -1 {
		t.slots[i].entry.update(temp)
		return
	}
	t.insert(h, head, name, Entry{Min: temp, Max: temp, Sum: int64(temp), Count: 1})
}

// MergeEntry folds e into the entry for name, inserting it if absent.
func (t *Table) MergeEntry(name []byte, e Entry) {
	h, head, i := t.lookup(name)
	if i != -1 {
		t.slots[i].entry.merge(e)
		return
	}
	t.insert(h, head, name, e)
}

// Get returns the entry for name.
func (t *Table) Get(name string) (Entry, bool) {
	_, _, i := t.lookup([]byte(name))
	if i == -1 {
		return Entry{}, false
	}
	return t.slots[i].entry, true
}

// Len returns the number of stations.
func (t *Table) Len() int {
	return len(t.slots)
}

// Each calls fn for every station in first-insertion order until fn
// returns false. name must not be modified or retained.
func (t *Table) Each(fn func(name []byte, e Entry) bool) {
	for i := range t.slots {
		if !fn(t.slots[i].name, t.slots[i].entry) {
			return
		}
	}
}
