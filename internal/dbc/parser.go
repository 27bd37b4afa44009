// Package dbc loads the subset of the Vector DBC format the decoder needs:
// message (BO_) and signal (SG_) definitions. Everything else in a DBC file
// (nodes, comments, attributes, value tables) is passed over.
package dbc

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/dbclab/candecode/internal/domain"
)

var (
	// BO_ 2364540158 EEC1: 8 Engine
	messageRe = regexp.MustCompile(`^BO_\s+(\d+)\s+(\w+)\s*:\s*(\d+)\s+(\S+)`)

	// SG_ EngineSpeed : 24|16@1+ (0.125,0) [0|8031.875] "rpm" Vector__XXX
	// The optional m12/M token marks multiplexed signals.
	signalRe = regexp.MustCompile(`^SG_\s+(\w+)\s*(m\d+|M)?\s*:\s*(\d+)\|(\d+)@([01])([+-])\s*\(\s*([^,\s]+)\s*,\s*([^)\s]+)\s*\)\s*\[\s*([^|\s]+)\s*\|\s*([^\]\s]+)\s*\]\s*"([^"]*)"`)
)

// Load reads a DBC file and builds the immutable signal schema.
//
// Any BO_ or SG_ line that looks like a definition but does not parse is a
// load failure: a broken schema is fatal before decoding starts, unlike the
// per-frame errors the pipeline recovers from.
func Load(path string) (*domain.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaLoad, err)
	}
	defer f.Close()

	var (
		msgs    []*domain.MessageDef
		current *domain.MessageDef
		lineNo  int
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "BO_ "):
			msg, err := parseMessage(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", domain.ErrSchemaLoad, lineNo, err)
			}
			current = msg
			msgs = append(msgs, msg)

		case strings.HasPrefix(line, "SG_ "):
			if current == nil {
				return nil, fmt.Errorf("%w: line %d: signal before any message", domain.ErrSchemaLoad, lineNo)
			}
			sig, err := parseSignal(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", domain.ErrSchemaLoad, lineNo, err)
			}
			current.Signals = append(current.Signals, sig)

		default:
			// A blank line ends the current message block.
			if line == "" {
				current = nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaLoad, err)
	}

	return domain.NewSchema(msgs), nil
}

func parseMessage(line string) (*domain.MessageDef, error) {
	m := messageRe.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("malformed message definition %q", line)
	}
	id, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("message id: %v", err)
	}
	length, err := strconv.ParseUint(m[3], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("message length: %v", err)
	}
	return &domain.MessageDef{
		// DBC sets bit 31 on extended identifiers; captured ids never
		// carry it, so strip down to the 29 meaningful bits.
		FrameID:        uint32(id) & domain.ExtendedIDMask,
		Name:           m[2],
		ExpectedLength: uint(length),
		Sender:         m[4],
	}, nil
}

func parseSignal(line string) (domain.SignalDef, error) {
	m := signalRe.FindStringSubmatch(line)
	if m == nil {
		return domain.SignalDef{}, fmt.Errorf("malformed signal definition %q", line)
	}

	startBit, err := strconv.ParseUint(m[3], 10, 16)
	if err != nil {
		return domain.SignalDef{}, fmt.Errorf("start bit: %v", err)
	}
	lengthBits, err := strconv.ParseUint(m[4], 10, 16)
	if err != nil {
		return domain.SignalDef{}, fmt.Errorf("bit length: %v", err)
	}
	scale, err := strconv.ParseFloat(m[7], 64)
	if err != nil {
		return domain.SignalDef{}, fmt.Errorf("scale: %v", err)
	}
	offset, err := strconv.ParseFloat(m[8], 64)
	if err != nil {
		return domain.SignalDef{}, fmt.Errorf("offset: %v", err)
	}
	min, err := strconv.ParseFloat(m[9], 64)
	if err != nil {
		return domain.SignalDef{}, fmt.Errorf("minimum: %v", err)
	}
	max, err := strconv.ParseFloat(m[10], 64)
	if err != nil {
		return domain.SignalDef{}, fmt.Errorf("maximum: %v", err)
	}

	order := domain.BigEndian
	if m[5] == "1" {
		order = domain.LittleEndian
	}

	sig := domain.SignalDef{
		Name:       m[1],
		StartBit:   uint(startBit),
		LengthBits: uint(lengthBits),
		ByteOrder:  order,
		Signed:     m[6] == "-",
		Scale:      scale,
		Offset:     offset,
		Unit:       m[11],
	}
	// [0|0] is the DBC convention for unspecified bounds.
	if min != 0 || max != 0 {
		sig.Minimum = &min
		sig.Maximum = &max
	}
	return sig, nil
}
