package domain

// ExtendedIDMask keeps the 29 bits that are meaningful for extended CAN
// identifiers. Higher bits in captured ids carry transport flags and are
// stripped by the line parser.
const ExtendedIDMask = 0x1FFFFFFF

// FrameRecord represents a single logged bus event as parsed from a candump
// line. It is immutable once created and consumed exactly once by the
// decode pipeline.
type FrameRecord struct {
	// Timestamp is the capture time in seconds since epoch. Candump logs
	// are non-decreasing per file but not strictly increasing.
	Timestamp float64

	// ID is the frame identifier (11-bit standard or 29-bit extended).
	ID uint32

	// Data is the raw payload, 0-64 bytes.
	Data []byte

	// OriginalHex is the payload exactly as it appeared in the log line,
	// lowercased. Kept for length-adjustment reporting.
	OriginalHex string
}
