package decode

import (
	"encoding/hex"

	"github.com/dbclab/candecode/internal/domain"
)

// Reconcile normalizes a frame's payload to the message's expected byte
// length. Short payloads are padded with zero bytes at the tail (real
// captures often truncate trailing all-zero bytes, and tail padding keeps
// leading bit positions intact); long payloads are truncated at the tail.
//
// Reconcile is total: it always returns a payload of exactly
// msg.ExpectedLength bytes. The second return value is the adjustment
// record, or nil when the payload already had the expected length. An
// already-correct payload is returned as-is, byte-identical.
func Reconcile(rec domain.FrameRecord, msg *domain.MessageDef) ([]byte, *domain.LengthAdjustment) {
	actual := len(rec.Data)
	expected := int(msg.ExpectedLength)
	if actual == expected {
		return rec.Data, nil
	}

	adjusted := make([]byte, expected)
	copy(adjusted, rec.Data)

	original := rec.OriginalHex
	if original == "" {
		original = hex.EncodeToString(rec.Data)
	}
	return adjusted, &domain.LengthAdjustment{
		Timestamp:   rec.Timestamp,
		FrameID:     rec.ID,
		ActualLen:   actual,
		ExpectedLen: expected,
		OriginalHex: original,
		AdjustedHex: hex.EncodeToString(adjusted),
	}
}
