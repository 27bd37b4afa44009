// Package app wires the decode pipeline to its collaborators: the DBC
// loader, the candump frame source and the report writers.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dbclab/candecode/internal/candump"
	"github.com/dbclab/candecode/internal/dbc"
	"github.com/dbclab/candecode/internal/decode"
	"github.com/dbclab/candecode/internal/ports"
	"github.com/dbclab/candecode/internal/report"
)

// Run decodes one CAN log end to end: load the schema, stream the frames
// through the pipeline, then write the CSV table, the console summary and
// the optional JSON run report.
//
// In follow mode Run blocks until the context is cancelled, then writes
// the outputs for everything decoded so far.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.NewString()
	start := time.Now()
	log := logger.With().Str("run_id", runID).Logger()

	log.Info().Str("dbc", cfg.DBCFile).Msg("loading DBC schema")
	schema, err := dbc.Load(cfg.DBCFile)
	if err != nil {
		return err
	}
	log.Info().Int("messages", schema.Len()).Msg("schema loaded")

	var src ports.FrameSource
	if cfg.Follow {
		src, err = candump.Follow(cfg.LogFile, cfg.PollInterval)
	} else {
		src, err = candump.Open(cfg.LogFile)
	}
	if err != nil {
		return err
	}
	defer src.Close()

	log.Info().Str("log", cfg.LogFile).Bool("follow", cfg.Follow).Msg("reading CAN log")
	pipeline := decode.NewPipeline(schema)
	if err := pipeline.Run(ctx, src); err != nil {
		return fmt.Errorf("decode stream: %w", err)
	}
	res := pipeline.Result()

	log.Info().
		Uint64("seen", res.Stats.TotalSeen()).
		Uint64("decoded", res.Stats.TotalDecoded()).
		Int("length_adjustments", len(res.Adjustments)).
		Int("decode_errors", len(res.Errors)).
		Int("dropped_lines", src.Dropped()).
		Dur("elapsed", time.Since(start)).
		Msg("decode finished")

	var table ports.TableWriter = report.NewCSVWriter(cfg.OutFile)
	if err := table.WriteTable(res.Rows); err != nil {
		return err
	}
	log.Info().Str("out", cfg.OutFile).Int("rows", len(res.Rows)).Msg("CSV exported")

	if !cfg.Quiet {
		out := cfg.SummaryWriter
		if out == nil {
			out = os.Stdout
		}
		if err := report.WriteSummary(out, res, cfg.ErrorsPreview); err != nil {
			return err
		}
	}

	if cfg.StatsOut != "" {
		rr := report.RunReport{
			RunID:             runID,
			GeneratedAt:       time.Now().UTC(),
			LogFile:           cfg.LogFile,
			DBCFile:           cfg.DBCFile,
			FramesSeen:        res.Stats.TotalSeen(),
			FramesDecoded:     res.Stats.TotalDecoded(),
			SignalsDecoded:    countSignals(res),
			DroppedLines:      src.Dropped(),
			LengthAdjustments: len(res.Adjustments),
			DecodeErrors:      len(res.Errors),
			PerID:             report.PerIDCounters(res.Stats),
		}
		if err := report.WriteRunReport(cfg.StatsOut, rr); err != nil {
			return err
		}
		log.Info().Str("stats_out", cfg.StatsOut).Msg("run report written")
	}

	return nil
}

// countSignals returns the number of distinct signal columns decoded.
func countSignals(res decode.Result) int {
	set := make(map[string]struct{})
	for _, row := range res.Rows {
		for name := range row.Values {
			set[name] = struct{}{}
		}
	}
	return len(set)
}
