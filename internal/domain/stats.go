package domain

// Statistics is a snapshot of per-identifier decode counters. It is a copy:
// mutating it never affects the aggregator it came from.
//
// For every id, Decoded[id] <= Seen[id] and LengthCorrected[id] <= Seen[id].
type Statistics struct {
	Seen            map[uint32]uint64
	Decoded         map[uint32]uint64
	LengthCorrected map[uint32]uint64
}

// TotalSeen returns the number of frames counted across all identifiers.
func (s Statistics) TotalSeen() uint64 {
	var n uint64
	for _, c := range s.Seen {
		n += c
	}
	return n
}

// TotalDecoded returns the number of decoded frames across all identifiers.
func (s Statistics) TotalDecoded() uint64 {
	var n uint64
	for _, c := range s.Decoded {
		n += c
	}
	return n
}
