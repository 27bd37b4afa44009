package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	LogFile       string `toml:"log_file"`
	DBCFile       string `toml:"dbc_file"`
	OutFile       string `toml:"out_file"`
	StatsOut      string `toml:"stats_out"`
	ErrorsPreview int    `toml:"errors_preview"`
	Follow        *bool  `toml:"follow"`
	PollInterval  string `toml:"poll_interval"`
	Quiet         *bool  `toml:"quiet"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.candecode/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".candecode", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log", fc.LogFile, &cfg.LogFile)
	s.setString("dbc", fc.DBCFile, &cfg.DBCFile)
	s.setString("out", fc.OutFile, &cfg.OutFile)
	s.setString("stats-out", fc.StatsOut, &cfg.StatsOut)

	s.setInt("errors-preview", fc.ErrorsPreview, &cfg.ErrorsPreview)

	if err := s.setDuration("poll", fc.PollInterval, &cfg.PollInterval); err != nil {
		return err
	}

	s.setBool("follow", fc.Follow, &cfg.Follow)
	s.setBool("quiet", fc.Quiet, &cfg.Quiet)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
