package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfigFile(t, `
log_file = "/data/dump.log"
dbc_file = "/data/vehicle.dbc"
out_file = "/data/out.csv"
stats_out = "/data/stats.json"
errors_preview = 10
follow = true
poll_interval = "250ms"
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.LogFile != "/data/dump.log" {
		t.Errorf("LogFile = %q", fc.LogFile)
	}
	if fc.ErrorsPreview != 10 {
		t.Errorf("ErrorsPreview = %d", fc.ErrorsPreview)
	}
	if fc.Follow == nil || !*fc.Follow {
		t.Error("Follow not parsed")
	}
	if fc.PollInterval != "250ms" {
		t.Errorf("PollInterval = %q", fc.PollInterval)
	}
}

func TestLoadFileConfigInvalidTOML(t *testing.T) {
	path := writeConfigFile(t, "log_file = [broken\n")
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyFileConfig(t *testing.T) {
	follow := true
	fc := FileConfig{
		LogFile:       "/file/dump.log",
		DBCFile:       "/file/vehicle.dbc",
		OutFile:       "/file/out.csv",
		ErrorsPreview: 7,
		Follow:        &follow,
		PollInterval:  "1s",
	}

	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
		t.Fatal(err)
	}
	if cfg.LogFile != "/file/dump.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.ErrorsPreview != 7 {
		t.Errorf("ErrorsPreview = %d", cfg.ErrorsPreview)
	}
	if !cfg.Follow {
		t.Error("Follow not applied")
	}
	if cfg.PollInterval != time.Second {
		t.Errorf("PollInterval = %v", cfg.PollInterval)
	}
}

func TestApplyFileConfigRespectsChangedFlags(t *testing.T) {
	fc := FileConfig{
		LogFile: "/file/dump.log",
		OutFile: "/file/out.csv",
	}

	cfg := DefaultConfig()
	cfg.LogFile = "/flag/dump.log"
	changed := map[string]bool{"log": true}
	if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
		t.Fatal(err)
	}
	if cfg.LogFile != "/flag/dump.log" {
		t.Errorf("flag value overridden: %q", cfg.LogFile)
	}
	if cfg.OutFile != "/file/out.csv" {
		t.Errorf("file value not applied: %q", cfg.OutFile)
	}
}

func TestApplyFileConfigInvalidDuration(t *testing.T) {
	fc := FileConfig{PollInterval: "nope"}
	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err == nil {
		t.Error("expected duration parse error")
	}
}

func TestFileExists(t *testing.T) {
	path := writeConfigFile(t, "")
	if !FileExists(path) {
		t.Error("existing file reported missing")
	}
	if FileExists(filepath.Join(t.TempDir(), "absent.toml")) {
		t.Error("missing file reported existing")
	}
}
