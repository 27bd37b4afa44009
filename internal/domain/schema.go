package domain

// ByteOrder selects the bit-numbering convention of a signal.
type ByteOrder int

const (
	// LittleEndian (Intel): StartBit is the least significant bit of the
	// raw value; bits advance toward higher bit and byte indices.
	LittleEndian ByteOrder = iota

	// BigEndian (Motorola): StartBit is the most significant bit of the
	// raw value; bits advance downward within a byte, then roll to the
	// most significant bit of the next byte.
	BigEndian
)

// String returns the DBC notation for the byte order.
func (o ByteOrder) String() string {
	if o == BigEndian {
		return "motorola"
	}
	return "intel"
}

// SignalDef describes one bit field within a message payload and how to turn
// its raw integer into a physical value.
type SignalDef struct {
	Name       string
	StartBit   uint
	LengthBits uint
	ByteOrder  ByteOrder
	Signed     bool
	Scale      float64
	Offset     float64

	// Minimum and Maximum are informational bounds from the schema.
	// The decoder never clamps to them.
	Minimum *float64
	Maximum *float64

	Unit string
}

// MessageDef describes one message type: its identifier, expected payload
// length and ordered signal layout.
type MessageDef struct {
	FrameID        uint32
	Name           string
	ExpectedLength uint
	Sender         string
	Signals        []SignalDef
}

// Schema is the immutable catalog mapping frame identifier to message
// definition. At most one MessageDef exists per identifier. A Schema is
// read-only after load and safe to share across pipelines.
type Schema struct {
	messages map[uint32]*MessageDef
}

// NewSchema builds a schema from message definitions. A duplicate frame id
// keeps the first definition, matching DBC loader behaviour.
func NewSchema(msgs []*MessageDef) *Schema {
	m := make(map[uint32]*MessageDef, len(msgs))
	for _, msg := range msgs {
		if _, ok := m[msg.FrameID]; !ok {
			m[msg.FrameID] = msg
		}
	}
	return &Schema{messages: m}
}

// Lookup returns the message definition for id, or nil if the schema does
// not know the identifier.
func (s *Schema) Lookup(id uint32) *MessageDef {
	return s.messages[id]
}

// Len returns the number of message definitions in the schema.
func (s *Schema) Len() int {
	return len(s.messages)
}

// IDs returns all frame identifiers in the schema, in unspecified order.
func (s *Schema) IDs() []uint32 {
	ids := make([]uint32, 0, len(s.messages))
	for id := range s.messages {
		ids = append(ids, id)
	}
	return ids
}
