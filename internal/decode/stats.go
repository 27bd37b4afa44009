package decode

import "github.com/dbclab/candecode/internal/domain"

// Aggregator accumulates per-identifier decode counters for one pipeline
// run. Counters only ever increase. It is not safe for concurrent use; one
// pipeline owns one aggregator, and parallel runs merge their snapshots.
type Aggregator struct {
	seen            map[uint32]uint64
	decoded         map[uint32]uint64
	lengthCorrected map[uint32]uint64
}

// NewAggregator creates an aggregator with all counters at zero.
func NewAggregator() *Aggregator {
	return &Aggregator{
		seen:            make(map[uint32]uint64),
		decoded:         make(map[uint32]uint64),
		lengthCorrected: make(map[uint32]uint64),
	}
}

// RecordSeen counts one frame observed for id, known to the schema or not.
func (a *Aggregator) RecordSeen(id uint32) {
	a.seen[id]++
}

// RecordDecoded counts one frame fully decoded for id.
func (a *Aggregator) RecordDecoded(id uint32) {
	a.decoded[id]++
}

// RecordLengthCorrected counts one padded or truncated payload for id.
func (a *Aggregator) RecordLengthCorrected(id uint32) {
	a.lengthCorrected[id]++
}

// Snapshot returns a copy of the counters. Callers cannot mutate aggregator
// state through the returned view, and the view stays stable if the
// aggregator keeps counting.
func (a *Aggregator) Snapshot() domain.Statistics {
	return domain.Statistics{
		Seen:            copyCounters(a.seen),
		Decoded:         copyCounters(a.decoded),
		LengthCorrected: copyCounters(a.lengthCorrected),
	}
}

// Add merges another snapshot into this aggregator. Counter addition is
// commutative, so shard aggregators can be combined in any order.
func (a *Aggregator) Add(s domain.Statistics) {
	for id, c := range s.Seen {
		a.seen[id] += c
	}
	for id, c := range s.Decoded {
		a.decoded[id] += c
	}
	for id, c := range s.LengthCorrected {
		a.lengthCorrected[id] += c
	}
}

func copyCounters(src map[uint32]uint64) map[uint32]uint64 {
	dst := make(map[uint32]uint64, len(src))
	for id, c := range src {
		dst[id] = c
	}
	return dst
}
