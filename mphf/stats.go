package mphf

// Stats reports how a minimal perfect hash function was constructed.
type Stats struct {
	Keys             int // number of keys n
	Buckets          int // non-empty primary buckets
	MultiKeyBuckets  int // buckets placed by seed search
	LargestBucket    int // keys in the largest bucket
	DirectPlacements int // singleton buckets placed directly
	Collisions       int // rejected seeds over all buckets
}

// SeededRatio returns the fraction of keys placed through a second-level
// seed rather than directly.
func (s Stats) SeededRatio() float64 {
	if s.Keys == 0 {
		return 0
	}
	return float64(s.Keys-s.DirectPlacements) / float64(s.Keys)
}
