package candump

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantOK   bool
		wantTS   float64
		wantID   uint32
		wantData []byte
		wantHex  string
	}{
		{
			name:     "standard frame",
			line:     "(1625147745.123456) can0 123#DEADBEEF",
			wantOK:   true,
			wantTS:   1625147745.123456,
			wantID:   0x123,
			wantData: []byte{0xDE, 0xAD, 0xBE, 0xEF},
			wantHex:  "deadbeef",
		},
		{
			name:     "extended id",
			line:     "(10.5) vcan0 18FEF100#0102030405060708",
			wantOK:   true,
			wantTS:   10.5,
			wantID:   0x18FEF100,
			wantData: []byte{1, 2, 3, 4, 5, 6, 7, 8},
			wantHex:  "0102030405060708",
		},
		{
			name:     "empty payload",
			line:     "(1.0) can0 7FF#",
			wantOK:   true,
			wantTS:   1.0,
			wantID:   0x7FF,
			wantData: []byte{},
			wantHex:  "",
		},
		{
			name:   "odd length hex dropped",
			line:   "(1.0) can0 123#ABC",
			wantOK: false,
		},
		{
			name:   "missing hash dropped",
			line:   "(1.0) can0 123 AABB",
			wantOK: false,
		},
		{
			name:   "no timestamp dropped",
			line:   "can0 123#AABB",
			wantOK: false,
		},
		{
			name:   "garbage dropped",
			line:   "interface state changed to UP",
			wantOK: false,
		},
		{
			name:   "empty line dropped",
			line:   "",
			wantOK: false,
		},
		{
			name:   "id wider than 32 bits dropped",
			line:   "(1.0) can0 123456789A#00",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := ParseLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if rec.Timestamp != tt.wantTS {
				t.Errorf("timestamp = %v, want %v", rec.Timestamp, tt.wantTS)
			}
			if rec.ID != tt.wantID {
				t.Errorf("id = 0x%X, want 0x%X", rec.ID, tt.wantID)
			}
			if !bytes.Equal(rec.Data, tt.wantData) {
				t.Errorf("data = %x, want %x", rec.Data, tt.wantData)
			}
			if rec.OriginalHex != tt.wantHex {
				t.Errorf("hex = %q, want %q", rec.OriginalHex, tt.wantHex)
			}
		})
	}
}

func TestParseLineMasksIDFlags(t *testing.T) {
	rec, ok := ParseLine("(1.0) can0 9FFFFFFF#00")
	if !ok {
		t.Fatal("expected line to parse")
	}
	if rec.ID != 0x1FFFFFFF {
		t.Fatalf("id = 0x%X, want 29-bit masked 0x1FFFFFFF", rec.ID)
	}
}

func TestReaderStreamsFile(t *testing.T) {
	content := `(1.0) can0 100#01
garbage line
(2.0) can0 200#0203
(3.0) can0 300#ABC
(4.0) can0 400#
`
	path := filepath.Join(t.TempDir(), "dump.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	ctx := context.Background()
	var ids []uint32
	for {
		rec, err := r.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		ids = append(ids, rec.ID)
	}

	want := []uint32{0x100, 0x200, 0x400}
	if len(ids) != len(want) {
		t.Fatalf("got %d frames, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("frame %d: id 0x%X, want 0x%X", i, ids[i], want[i])
		}
	}
	// "garbage line" and the odd-length payload.
	if r.Dropped() != 2 {
		t.Errorf("dropped = %d, want 2", r.Dropped())
	}
}

func TestReaderCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.log")
	if err := os.WriteFile(path, []byte("(1.0) can0 100#01\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Next(ctx); err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
