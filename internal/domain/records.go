package domain

// LengthAdjustment records one payload pad or truncation performed to
// reconcile a frame with its schema length. Never mutated after creation;
// appended to an ordered sequence in input order.
type LengthAdjustment struct {
	Timestamp   float64
	FrameID     uint32
	ActualLen   int
	ExpectedLen int
	OriginalHex string
	AdjustedHex string
}

// DecodeError records one frame that matched a message definition but could
// not be decoded. Same lifecycle as LengthAdjustment.
type DecodeError struct {
	Timestamp float64
	FrameID   uint32
	Message   string
}
