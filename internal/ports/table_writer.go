package ports

import "github.com/dbclab/candecode/internal/domain"

// TableWriter serializes the decoded rows to a tabular sink. Columns are
// the union of all signal names seen plus the timestamp; rows are sorted by
// timestamp for presentation.
type TableWriter interface {
	WriteTable(rows []domain.DecodedRow) error
}
