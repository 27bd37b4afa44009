package app

import (
	"fmt"
	"io"
	"time"

	"github.com/dbclab/candecode/internal/domain"
)

// Config holds the configuration for one decode run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// LogFile is the candump-format CAN log to decode.
	LogFile string

	// DBCFile is the schema describing messages and signals.
	DBCFile string

	// OutFile is the wide CSV output path.
	OutFile string

	// StatsOut, when set, is the path for the JSON run report.
	StatsOut string

	// ErrorsPreview caps how many decode errors the summary prints.
	ErrorsPreview int

	// Follow tails the log instead of reading it once; the run ends on
	// context cancellation.
	Follow bool

	// PollInterval is the follow-mode fallback wake-up when no file
	// system event arrives.
	PollInterval time.Duration

	// Quiet suppresses the console summary.
	Quiet bool

	// SummaryWriter receives the console summary. Defaults to stdout.
	SummaryWriter io.Writer
}

// DefaultConfig returns a Config with sensible default values.
// At minimum, you must set LogFile and DBCFile before calling Run.
func DefaultConfig() Config {
	return Config{
		OutFile:       "decoded.csv",
		ErrorsPreview: 30,
		PollInterval:  500 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.LogFile == "" {
		return fmt.Errorf("%w: log file is required", domain.ErrInvalidConfig)
	}
	if c.DBCFile == "" {
		return fmt.Errorf("%w: dbc file is required", domain.ErrInvalidConfig)
	}
	if c.OutFile == "" {
		return fmt.Errorf("%w: output file is required", domain.ErrInvalidConfig)
	}
	if c.ErrorsPreview < 0 {
		return fmt.Errorf("%w: errors preview must not be negative", domain.ErrInvalidConfig)
	}
	if c.Follow && c.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive", domain.ErrInvalidConfig)
	}
	return nil
}
