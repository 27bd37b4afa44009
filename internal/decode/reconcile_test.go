package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbclab/candecode/internal/domain"
)

func TestReconcilePadsShortPayload(t *testing.T) {
	rec := domain.FrameRecord{
		Timestamp:   12.5,
		ID:          0x1A0,
		Data:        []byte{0x11, 0x22, 0x33},
		OriginalHex: "112233",
	}
	msg := &domain.MessageDef{FrameID: 0x1A0, ExpectedLength: 8}

	payload, adj := Reconcile(rec, msg)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x00, 0x00, 0x00, 0x00, 0x00}, payload)
	require.NotNil(t, adj)
	assert.Equal(t, 3, adj.ActualLen)
	assert.Equal(t, 8, adj.ExpectedLen)
	assert.Equal(t, "112233", adj.OriginalHex)
	assert.Equal(t, "1122330000000000", adj.AdjustedHex)
	assert.Equal(t, 12.5, adj.Timestamp)
	assert.Equal(t, uint32(0x1A0), adj.FrameID)
}

func TestReconcileTruncatesLongPayload(t *testing.T) {
	rec := domain.FrameRecord{
		ID:          0x55,
		Data:        []byte{0xAA, 0xBB, 0xCC, 0xDD},
		OriginalHex: "aabbccdd",
	}
	msg := &domain.MessageDef{FrameID: 0x55, ExpectedLength: 2}

	payload, adj := Reconcile(rec, msg)
	assert.Equal(t, []byte{0xAA, 0xBB}, payload)
	require.NotNil(t, adj)
	assert.Equal(t, 4, adj.ActualLen)
	assert.Equal(t, 2, adj.ExpectedLen)
	assert.Equal(t, "aabb", adj.AdjustedHex)
}

func TestReconcileExactLengthIsIdentity(t *testing.T) {
	data := []byte{0x01, 0x02}
	rec := domain.FrameRecord{ID: 0x55, Data: data, OriginalHex: "0102"}
	msg := &domain.MessageDef{FrameID: 0x55, ExpectedLength: 2}

	payload, adj := Reconcile(rec, msg)
	assert.Nil(t, adj, "no adjustment record for a correctly sized payload")
	assert.Equal(t, data, payload)
}

func TestReconcileEmptyPayload(t *testing.T) {
	rec := domain.FrameRecord{ID: 0x1, OriginalHex: ""}
	msg := &domain.MessageDef{FrameID: 0x1, ExpectedLength: 4}

	payload, adj := Reconcile(rec, msg)
	assert.Equal(t, []byte{0, 0, 0, 0}, payload)
	require.NotNil(t, adj)
	assert.Equal(t, 0, adj.ActualLen)
	assert.Equal(t, "00000000", adj.AdjustedHex)
}

func TestReconcileToZeroLength(t *testing.T) {
	rec := domain.FrameRecord{ID: 0x1, Data: []byte{0xFF}, OriginalHex: "ff"}
	msg := &domain.MessageDef{FrameID: 0x1, ExpectedLength: 0}

	payload, adj := Reconcile(rec, msg)
	assert.Len(t, payload, 0)
	require.NotNil(t, adj)
	assert.Equal(t, "", adj.AdjustedHex)
	assert.Equal(t, "ff", adj.OriginalHex)
}
