package mphf

import (
	"errors"
	"fmt"
	"sort"
)

// ErrConstruction is matched by every *ConstructionError.
var ErrConstruction = errors.New("perfect hash construction failed")

// ConstructionError is returned when no minimal perfect hash function could
// be built for a key set.
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return "cannot construct perfect hash: " + e.Reason
}

// Is makes errors.Is(err, ErrConstruction) hold.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}

// Option configures Build.
type Option func(*builder)

// WithSeedLimit bounds the second-level seed search to seeds in [1, limit].
// Limits of 0 or above Mask31 select Mask31.
func WithSeedLimit(limit uint32) Option {
	return func(b *builder) {
		if limit == 0 || limit > Mask31 {
			limit = Mask31
		}
		b.seedLimit = limit
	}
}

type bucket struct {
	primary int
	members []int // indices into keys, in input order
}

type builder struct {
	keys      []Key
	n         int
	seedLimit uint32
	g         []Indirection
	slots     []int // slot per key
	occupied  []bool
	placed    int
	stats     Stats
}

// Build constructs a minimal perfect hash function for keys, which must be
// unique. It returns the index, the slot assigned to each key (by position
// in keys) and construction statistics.
//
// The result depends only on keys and their order, so equal inputs produce
// byte-identical tables.
func Build(keys []Key, opts ...Option) (*Index, []int, Stats, error) {
	b := &builder{
		keys:      keys,
		n:         len(keys),
		seedLimit: Mask31,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.n == 0 {
		return nil, nil, Stats{}, &ConstructionError{Reason: "empty key set"}
	}
	if b.n > Mask31 {
		return nil, nil, Stats{}, &ConstructionError{Reason: "too many keys"}
	}
	if err := checkUnique(keys); err != nil {
		return nil, nil, Stats{}, err
	}
	b.g = make([]Indirection, b.n)
	b.slots = make([]int, b.n)
	b.occupied = make([]bool, b.n)
	b.stats.Keys = b.n
	buckets := b.distribute()
	// first pick of free slots goes to the largest buckets
	sort.SliceStable(buckets, func(i, j int) bool {
		return len(buckets[i].members) > len(buckets[j].members)
	})
	k := 0
	for ; k < len(buckets) && len(buckets[k].members) > 1; k++ {
		if err := b.placeSeeded(&buckets[k]); err != nil {
			tracer().Debugf("bucket %d with %d keys: %v", buckets[k].primary, len(buckets[k].members), err)
			return nil, nil, b.stats, err
		}
	}
	free := 0
	for ; k < len(buckets) && len(buckets[k].members) == 1; k++ {
		for free < b.n && b.occupied[free] {
			free++
		}
		if free >= b.n {
			return nil, nil, b.stats, &ConstructionError{Reason: "no free slots left"}
		}
		b.place(buckets[k].members[0], free)
		b.g[buckets[k].primary] = Direct(free)
		b.stats.DirectPlacements++
	}
	if b.placed != b.n {
		return nil, nil, b.stats, &ConstructionError{Reason: "count mismatch"}
	}
	tracer().Debugf("perfect hash over %d keys: %d buckets, %d seeded, %d collisions",
		b.n, b.stats.Buckets, b.stats.MultiKeyBuckets, b.stats.Collisions)
	return &Index{g: b.g}, b.slots, b.stats, nil
}

// distribute groups keys into n buckets by primary hash and returns the
// non-empty ones in ascending primary order.
func (b *builder) distribute() []bucket {
	all := make([][]int, b.n)
	for i, key := range b.keys {
		p := int(HashKey(key, Offset) % uint32(b.n))
		all[p] = append(all[p], i)
	}
	buckets := make([]bucket, 0, b.n)
	for p, members := range all {
		if len(members) == 0 {
			continue
		}
		buckets = append(buckets, bucket{primary: p, members: members})
		b.stats.LargestBucket = max(b.stats.LargestBucket, len(members))
	}
	b.stats.Buckets = len(buckets)
	return buckets
}

// placeSeeded searches the smallest seed spreading a bucket over distinct
// free slots, then occupies them.
func (b *builder) placeSeeded(bk *bucket) error {
	slots := make([]int, len(bk.members))
	limit := seedCycle(b.n, b.seedLimit)
	for seed := uint32(1); seed <= limit; seed++ {
		if b.tryPlacement(bk, seed, slots) {
			for i, m := range bk.members {
				b.place(m, slots[i])
			}
			b.g[bk.primary] = Seed(seed)
			b.stats.MultiKeyBuckets++
			return nil
		}
		b.stats.Collisions++
	}
	return &ConstructionError{Reason: "seed space exhausted"}
}

// seedCycle caps the seed search for tables of power-of-two size. Prime is
// odd, so the low log2(n) bits of a hash depend only on the low log2(n)
// bits of the seed: seeds 1..n already produce every slot pattern and a
// bucket failing all of them fails for every seed.
func seedCycle(n int, limit uint32) uint32 {
	if n&(n-1) == 0 && uint32(n) < limit {
		return uint32(n)
	}
	return limit
}

func (b *builder) tryPlacement(bk *bucket, seed uint32, slots []int) bool {
	for i, m := range bk.members {
		slot := int(HashKey(b.keys[m], seed) % uint32(b.n))
		if b.occupied[slot] {
			return false
		}
		for _, s := range slots[:i] {
			if s == slot {
				return false
			}
		}
		slots[i] = slot
	}
	return true
}

func (b *builder) place(key int, slot int) {
	assert(!b.occupied[slot], "slot occupied twice")
	b.occupied[slot] = true
	b.slots[key] = slot
	b.placed++
}

func checkUnique(keys []Key) error {
	seen := make(map[Key]struct{}, len(keys))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			return &ConstructionError{Reason: fmt.Sprintf("duplicate key U+%04X", key.Code())}
		}
		seen[key] = struct{}{}
	}
	return nil
}
