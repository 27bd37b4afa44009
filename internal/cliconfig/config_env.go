package cliconfig

import "os"

// Environment variable names understood by candecode. They override the
// config file and are overridden by explicitly set flags.
const (
	envLogFile       = "CANDECODE_LOG"
	envDBCFile       = "CANDECODE_DBC"
	envOutFile       = "CANDECODE_OUT"
	envStatsOut      = "CANDECODE_STATS_OUT"
	envErrorsPreview = "CANDECODE_ERRORS_PREVIEW"
	envFollow        = "CANDECODE_FOLLOW"
	envPollInterval  = "CANDECODE_POLL_INTERVAL"
	envQuiet         = "CANDECODE_QUIET"
)

// ApplyEnvConfig applies CANDECODE_* environment variables to the Config.
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log", os.Getenv(envLogFile), &cfg.LogFile)
	s.setString("dbc", os.Getenv(envDBCFile), &cfg.DBCFile)
	s.setString("out", os.Getenv(envOutFile), &cfg.OutFile)
	s.setString("stats-out", os.Getenv(envStatsOut), &cfg.StatsOut)

	if err := s.setIntFromString("errors-preview", os.Getenv(envErrorsPreview), &cfg.ErrorsPreview); err != nil {
		return err
	}
	if err := s.setDuration("poll", os.Getenv(envPollInterval), &cfg.PollInterval); err != nil {
		return err
	}
	if err := s.setBoolFromString("follow", os.Getenv(envFollow), &cfg.Follow); err != nil {
		return err
	}
	if err := s.setBoolFromString("quiet", os.Getenv(envQuiet), &cfg.Quiet); err != nil {
		return err
	}
	return nil
}
