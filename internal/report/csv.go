// Package report serializes decode results: the wide CSV table, the
// human-readable console summary, and the JSON run report.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/dbclab/candecode/internal/domain"
)

// CSVWriter writes decoded rows as a wide CSV file: one row per decoded
// frame, one column per signal. It implements ports.TableWriter.
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a writer targeting the given file path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// WriteTable writes the rows to the target file, creating or truncating it.
func (w *CSVWriter) WriteTable(rows []domain.DecodedRow) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := WriteWideCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteWideCSV writes rows in wide format: the header is "timestamp"
// followed by the sorted union of all signal names seen, rows are sorted by
// timestamp ascending (stable, so equal timestamps keep input order), and
// signals absent from a row are left empty.
func WriteWideCSV(w io.Writer, rows []domain.DecodedRow) error {
	columns := signalColumns(rows)

	sorted := make([]domain.DecodedRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	cw := csv.NewWriter(w)

	header := append([]string{"timestamp"}, columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(header))
	for _, row := range sorted {
		record[0] = formatFloat(row.Timestamp)
		for i, name := range columns {
			if v, ok := row.Values[name]; ok {
				record[i+1] = formatFloat(v)
			} else {
				record[i+1] = ""
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// signalColumns returns the sorted union of signal names across all rows.
func signalColumns(rows []domain.DecodedRow) []string {
	set := make(map[string]struct{})
	for _, row := range rows {
		for name := range row.Values {
			set[name] = struct{}{}
		}
	}
	columns := make([]string, 0, len(set))
	for name := range set {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	return columns
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
