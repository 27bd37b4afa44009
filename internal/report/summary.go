package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/dbclab/candecode/internal/decode"
	"github.com/dbclab/candecode/internal/domain"
)

// DefaultErrorPreview is how many decode errors the summary prints before
// eliding the rest.
const DefaultErrorPreview = 30

// WriteSummary prints the human-readable decode report: overall totals, the
// per-identifier counter table, a per-identifier compression of the length
// adjustments (count plus first example), and a bounded preview of the
// decode errors.
func WriteSummary(w io.Writer, res decode.Result, errorPreview int) error {
	columns := signalColumns(res.Rows)

	fmt.Fprintln(w, "\n===== SUMMARY =====")
	fmt.Fprintf(w, "  Total CAN frames in log: %d\n", res.Stats.TotalSeen())
	fmt.Fprintf(w, "  Total frames decoded (found in DBC): %d\n", res.Stats.TotalDecoded())
	fmt.Fprintf(w, "  Total signals decoded: %d\n\n", len(columns))

	writeCounterTable(w, res.Stats)

	if len(res.Adjustments) > 0 {
		writeAdjustmentOverview(w, res.Adjustments)
	}

	if len(res.Errors) > 0 {
		fmt.Fprintln(w, "\nDecoding errors (after DLC adjustment):")
		for i, e := range res.Errors {
			if i >= errorPreview {
				fmt.Fprintf(w, "  ... %d more\n", len(res.Errors)-errorPreview)
				break
			}
			fmt.Fprintf(w, "  %v: 0x%X - %s\n", e.Timestamp, e.FrameID, e.Message)
		}
	}

	fmt.Fprintln(w, "===== END INFO =====")
	return nil
}

func writeCounterTable(w io.Writer, stats domain.Statistics) {
	ids := make([]uint32, 0, len(stats.Seen))
	for id := range stats.Seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	fmt.Fprintln(w, "Per-CAN-ID statistics:")
	fmt.Fprintf(w, "%8s | %10s | %8s | %13s\n", "CAN-ID", "Total Msgs", "Decoded", "DLC Corrected")
	fmt.Fprintln(w, "--------------------------------------------------")
	for _, id := range ids {
		fmt.Fprintf(w, "0x%06X | %10d | %8d | %13d\n",
			id, stats.Seen[id], stats.Decoded[id], stats.LengthCorrected[id])
	}
}

func writeAdjustmentOverview(w io.Writer, adjustments []domain.LengthAdjustment) {
	byID := make(map[uint32][]domain.LengthAdjustment)
	for _, adj := range adjustments {
		byID[adj.FrameID] = append(byID[adj.FrameID], adj)
	}

	ids := make([]uint32, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	fmt.Fprintln(w, "\nDLC adjustments (compressed overview):")
	for _, id := range ids {
		list := byID[id]
		first := list[0]
		fmt.Fprintf(w, "  CAN-ID 0x%X: %d frames corrected, first example:\n", id, len(list))
		fmt.Fprintf(w, "    Timestamp: %v\n", first.Timestamp)
		fmt.Fprintf(w, "    DLC: %d -> %d\n", first.ActualLen, first.ExpectedLen)
		fmt.Fprintf(w, "    Original: %s\n", first.OriginalHex)
		fmt.Fprintf(w, "    Adjusted: %s\n", first.AdjustedHex)
	}
}
