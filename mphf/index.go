package mphf

import "fmt"

// Index is a frozen intermediate table G of a minimal perfect hash function
// over n keys.
//   - A key's primary position is p := HashKey(key, Offset) mod n.
//   - If G[p] is direct, the key's slot is G[p].Slot().
//   - Otherwise the slot is HashKey(key, G[p].SeedValue()) mod n.
//
// Resolving never fails: every key, whether part of the construction key
// set or not, lands on some slot in [0, n). Callers have to compare the key
// stored at that slot to detect misses.
//
// An Index is immutable and may be shared between goroutines.
type Index struct {
	g []Indirection
}

// NewIndex creates an Index from an existing table, as read from a file.
// It rejects empty tables and direct entries pointing outside the table.
// The table is copied.
func NewIndex(g []Indirection) (*Index, error) {
	if len(g) == 0 {
		return nil, fmt.Errorf("empty indirection table")
	}
	if len(g) > Mask31 {
		return nil, fmt.Errorf("indirection table too large: %d entries", len(g))
	}
	for i, ind := range g {
		if ind.direct && int(ind.value) >= len(g) {
			return nil, fmt.Errorf("indirection %d points to slot %d beyond table size %d",
				i, ind.value, len(g))
		}
	}
	x := &Index{g: make([]Indirection, len(g))}
	copy(x.g, g)
	return x, nil
}

// Len returns the number of slots n.
func (x *Index) Len() int { return len(x.g) }

// Entry returns G[i].
func (x *Index) Entry(i int) Indirection { return x.g[i] }

// Primary returns the position of key in G.
func (x *Index) Primary(key Key) int {
	return int(HashKey(key, Offset) % uint32(len(x.g)))
}

// Resolve returns the value slot for key, using one or two hash evaluations.
func (x *Index) Resolve(key Key) int {
	ind := x.g[x.Primary(key)]
	if ind.direct {
		return int(ind.value)
	}
	return int(HashKey(key, ind.value) % uint32(len(x.g)))
}
