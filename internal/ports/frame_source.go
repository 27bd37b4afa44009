package ports

import (
	"context"
	"io"

	"github.com/dbclab/candecode/internal/domain"
)

// FrameSource provides a lazy, finite or tailed, forward-only stream of
// frame records. Implementations parse candump-style log lines and drop
// unparseable lines internally; a partial record never crosses this
// boundary.
type FrameSource interface {
	// Next returns the next parsed frame record.
	// Returns io.EOF when the input is exhausted. Tailing implementations
	// block until more data arrives or the context is cancelled.
	Next(ctx context.Context) (domain.FrameRecord, error)

	// Dropped returns the number of lines skipped as unparseable so far.
	Dropped() int

	// Close releases all resources held by the source.
	Close() error
}

// ErrEndOfStream indicates that the source has no more frames.
var ErrEndOfStream = io.EOF
