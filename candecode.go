// Package candecode decodes candump-format CAN bus logs into per-signal
// physical values using a DBC schema, producing a wide CSV table and
// per-identifier decode statistics.
//
// Example usage:
//
//	cfg := candecode.DefaultConfig()
//	cfg.LogFile = "capture.log"
//	cfg.DBCFile = "vehicle.dbc"
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := candecode.Run(context.Background(), cfg); err != nil {
//	    log.Fatal(err)
//	}
package candecode

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dbclab/candecode/internal/app"
)

// Config holds the configuration for one decode run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = app.Config

// Run decodes the configured CAN log and writes the CSV table, console
// summary and optional JSON run report. In follow mode it blocks until the
// context is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return app.Run(ctx, cfg)
}

// DefaultConfig returns a Config with sensible default values.
// At minimum, you must set LogFile and DBCFile before calling Run.
func DefaultConfig() Config {
	return app.DefaultConfig()
}

// Logger returns the package-level zerolog logger used by the decoder.
func Logger() zerolog.Logger {
	return app.Logger()
}
