package decode

import (
	"context"
	"errors"

	"github.com/dbclab/candecode/internal/domain"
	"github.com/dbclab/candecode/internal/ports"
)

// Pipeline decodes an ordered stream of frame records against a schema. It
// runs a single pass with no backtracking: rows, length adjustments and
// decode errors each come out in input frame order.
//
// Per-frame failures never abort the stream; they are captured as data in
// the Result. A Pipeline is single-use and not safe for concurrent use.
type Pipeline struct {
	schema *domain.Schema
	stats  *Aggregator

	rows        []domain.DecodedRow
	adjustments []domain.LengthAdjustment
	errs        []domain.DecodeError
}

// Result is the terminal output of a pipeline run.
type Result struct {
	Rows        []domain.DecodedRow
	Adjustments []domain.LengthAdjustment
	Errors      []domain.DecodeError
	Stats       domain.Statistics
}

// NewPipeline creates a pipeline for the given schema. The schema must be
// fully loaded and is never mutated.
func NewPipeline(schema *domain.Schema) *Pipeline {
	return &Pipeline{
		schema: schema,
		stats:  NewAggregator(),
	}
}

// Process decodes one frame record.
//
// The frame is always counted as seen. Identifiers unknown to the schema
// are skipped without further processing or error. Known frames have their
// payload reconciled to the schema length, then every signal extracted; a
// frame either yields a complete row or a decode error, never both and
// never a partial row.
func (p *Pipeline) Process(rec domain.FrameRecord) {
	p.stats.RecordSeen(rec.ID)

	msg := p.schema.Lookup(rec.ID)
	if msg == nil {
		return
	}

	payload, adj := Reconcile(rec, msg)
	if adj != nil {
		p.adjustments = append(p.adjustments, *adj)
		p.stats.RecordLengthCorrected(rec.ID)
	}

	values, err := Extract(payload, msg)
	if err != nil {
		p.errs = append(p.errs, domain.DecodeError{
			Timestamp: rec.Timestamp,
			FrameID:   rec.ID,
			Message:   err.Error(),
		})
		return
	}

	p.rows = append(p.rows, domain.DecodedRow{Timestamp: rec.Timestamp, Values: values})
	p.stats.RecordDecoded(rec.ID)
}

// Run drains a frame source through the pipeline until it reports
// end-of-stream. Context cancellation stops the run cleanly; for tailing
// sources that is the normal way to finish.
func (p *Pipeline) Run(ctx context.Context, src ports.FrameSource) error {
	for {
		rec, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, ports.ErrEndOfStream) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		p.Process(rec)
	}
}

// Result returns the accumulated rows, adjustment and error sequences, and
// a statistics snapshot. The slices are the pipeline's own accumulation;
// call once, after the run is finished.
func (p *Pipeline) Result() Result {
	return Result{
		Rows:        p.rows,
		Adjustments: p.adjustments,
		Errors:      p.errs,
		Stats:       p.stats.Snapshot(),
	}
}

// MergeResults combines results from pipelines that decoded consecutive
// shards of one input. Passing the parts in shard order preserves original
// frame order in the concatenated sequences; counters merge commutatively.
func MergeResults(parts ...Result) Result {
	agg := NewAggregator()
	var merged Result
	for _, part := range parts {
		merged.Rows = append(merged.Rows, part.Rows...)
		merged.Adjustments = append(merged.Adjustments, part.Adjustments...)
		merged.Errors = append(merged.Errors, part.Errors...)
		agg.Add(part.Stats)
	}
	merged.Stats = agg.Snapshot()
	return merged
}
