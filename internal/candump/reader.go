// Package candump reads candump-format CAN log files and turns matching
// lines into frame records. Lines that do not match the format, or carry
// odd-length hex payloads, are dropped before they reach the decode engine.
package candump

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/dbclab/candecode/internal/domain"
)

// lineRe matches one candump log line: (<float-seconds>) <iface> <hex-id>#<hex-data>
var lineRe = regexp.MustCompile(`\(([\d.]+)\)\s+\S+\s+([0-9A-Fa-f]+)#([0-9A-Fa-f]*)`)

// maxPayloadBytes bounds a single frame payload (CAN FD is 64 bytes).
const maxPayloadBytes = 64

// ParseLine parses one log line into a frame record. The second return
// value is false for lines that must be dropped: wrong shape, oversized id,
// odd-length or oversized hex payload.
func ParseLine(line string) (domain.FrameRecord, bool) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return domain.FrameRecord{}, false
	}

	ts, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return domain.FrameRecord{}, false
	}
	id, err := strconv.ParseUint(m[2], 16, 32)
	if err != nil {
		return domain.FrameRecord{}, false
	}

	dataStr := strings.ToLower(m[3])
	if len(dataStr)%2 != 0 || len(dataStr)/2 > maxPayloadBytes {
		return domain.FrameRecord{}, false
	}
	data, err := hex.DecodeString(dataStr)
	if err != nil {
		return domain.FrameRecord{}, false
	}

	return domain.FrameRecord{
		Timestamp:   ts,
		ID:          uint32(id) & domain.ExtendedIDMask,
		Data:        data,
		OriginalHex: dataStr,
	}, true
}

// Reader streams frame records from a finite candump log file. It
// implements ports.FrameSource.
type Reader struct {
	f       *os.File
	scanner *bufio.Scanner
	dropped int
}

// Open opens a candump log for one-shot reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{f: f, scanner: scanner}, nil
}

// Next returns the next parseable frame record, skipping dropped lines.
// Returns io.EOF at end of file.
func (r *Reader) Next(ctx context.Context) (domain.FrameRecord, error) {
	for {
		if err := ctx.Err(); err != nil {
			return domain.FrameRecord{}, err
		}
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return domain.FrameRecord{}, fmt.Errorf("read log: %w", err)
			}
			return domain.FrameRecord{}, io.EOF
		}
		rec, ok := ParseLine(r.scanner.Text())
		if !ok {
			r.dropped++
			continue
		}
		return rec, nil
	}
}

// Dropped returns the number of unparseable lines skipped so far.
func (r *Reader) Dropped() int {
	return r.dropped
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}
