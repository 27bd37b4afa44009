package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dbclab/candecode/internal/domain"
)

// RunReport is the machine-readable summary of one decode run, written as
// JSON when --stats-out is set.
type RunReport struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	LogFile     string    `json:"log_file"`
	DBCFile     string    `json:"dbc_file"`

	FramesSeen        uint64 `json:"frames_seen"`
	FramesDecoded     uint64 `json:"frames_decoded"`
	SignalsDecoded    int    `json:"signals_decoded"`
	DroppedLines      int    `json:"dropped_lines"`
	LengthAdjustments int    `json:"length_adjustments"`
	DecodeErrors      int    `json:"decode_errors"`

	PerID []IDCounters `json:"per_id"`
}

// IDCounters carries the three per-identifier counters, with the id in the
// 0x-prefixed form the console report uses.
type IDCounters struct {
	ID              string `json:"id"`
	Seen            uint64 `json:"seen"`
	Decoded         uint64 `json:"decoded"`
	LengthCorrected uint64 `json:"length_corrected"`
}

// PerIDCounters flattens a statistics snapshot into id-sorted counter rows.
func PerIDCounters(stats domain.Statistics) []IDCounters {
	ids := make([]uint32, 0, len(stats.Seen))
	for id := range stats.Seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]IDCounters, 0, len(ids))
	for _, id := range ids {
		out = append(out, IDCounters{
			ID:              fmt.Sprintf("0x%X", id),
			Seen:            stats.Seen[id],
			Decoded:         stats.Decoded[id],
			LengthCorrected: stats.LengthCorrected[id],
		})
	}
	return out
}

// WriteRunReport persists the report as indented JSON. The write is atomic
// (temp file plus rename) so a crash never leaves a truncated report.
func WriteRunReport(path string, r RunReport) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run report: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write run report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename run report: %w", err)
	}
	return nil
}
