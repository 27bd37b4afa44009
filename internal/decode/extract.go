package decode

import (
	"fmt"

	"github.com/dbclab/candecode/internal/domain"
)

// maxSignalBits is the widest raw value the extractor supports. Signals are
// accumulated in a uint64, so wider declarations fail the whole frame.
const maxSignalBits = 64

// Extract decodes every signal of msg from a reconciled payload and returns
// the physical values keyed by signal name.
//
// The payload must already be exactly msg.ExpectedLength bytes (see
// Reconcile). Extraction is all-or-nothing: if any signal's bit span falls
// outside the payload, or declares an unsupported width, the whole frame
// fails and no partial result is returned.
func Extract(payload []byte, msg *domain.MessageDef) (map[string]float64, error) {
	values := make(map[string]float64, len(msg.Signals))
	for i := range msg.Signals {
		sig := &msg.Signals[i]
		if sig.LengthBits == 0 || sig.LengthBits > maxSignalBits {
			return nil, fmt.Errorf("%w: signal %q declares %d bits", domain.ErrSignalRange, sig.Name, sig.LengthBits)
		}

		var raw uint64
		var err error
		switch sig.ByteOrder {
		case domain.BigEndian:
			raw, err = rawBigEndian(payload, sig.StartBit, sig.LengthBits)
		default:
			raw, err = rawLittleEndian(payload, sig.StartBit, sig.LengthBits)
		}
		if err != nil {
			return nil, fmt.Errorf("signal %q: %w", sig.Name, err)
		}

		var base float64
		if sig.Signed {
			base = float64(signExtend(raw, sig.LengthBits))
		} else {
			base = float64(raw)
		}
		// Out-of-range physical values pass through: Minimum/Maximum are
		// informational and never clamped.
		values[sig.Name] = base*sig.Scale + sig.Offset
	}
	return values, nil
}

// rawLittleEndian extracts length bits starting at the least significant
// bit position start. Bit n of the payload is byte n/8, bit n%8 with the
// least significant bit numbered 0. Bits advance toward higher bit and
// byte indices.
func rawLittleEndian(data []byte, start, length uint) (uint64, error) {
	if start+length > uint(len(data))*8 {
		return 0, fmt.Errorf("%w: bits %d..%d of %d", domain.ErrSignalRange, start, start+length-1, uint(len(data))*8)
	}
	var v uint64
	for i := uint(0); i < length; i++ {
		pos := start + i
		if data[pos>>3]>>(pos&7)&1 == 1 {
			v |= 1 << i
		}
	}
	return v, nil
}

// rawBigEndian extracts length bits starting at the most significant bit
// position start, walking the Motorola "sawtooth": downward within a byte,
// then to the most significant bit of the next byte. Accumulation is
// MSB-first.
func rawBigEndian(data []byte, start, length uint) (uint64, error) {
	total := uint(len(data)) * 8
	pos := start
	var v uint64
	for i := uint(0); i < length; i++ {
		if pos >= total {
			return 0, fmt.Errorf("%w: walk from bit %d leaves %d-bit payload", domain.ErrSignalRange, start, total)
		}
		v = v<<1 | uint64(data[pos>>3]>>(pos&7))&1
		if pos&7 == 0 {
			pos += 15
		} else {
			pos--
		}
	}
	return v, nil
}

// signExtend interprets v as a two's-complement value of the given bit
// width. Width 64 is already full width.
func signExtend(v uint64, length uint) int64 {
	if length < 64 && v&(1<<(length-1)) != 0 {
		v |= ^uint64(0) << length
	}
	return int64(v)
}
