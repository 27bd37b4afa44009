package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/dbclab/candecode"
	"github.com/dbclab/candecode/internal/cliconfig"
)

const helpBanner = `
  ██████╗ █████╗ ███╗   ██╗██████╗ ███████╗ ██████╗ ██████╗ ██████╗ ███████╗
 ██╔════╝██╔══██╗████╗  ██║██╔══██╗██╔════╝██╔════╝██╔═══██╗██╔══██╗██╔════╝
 ██║     ███████║██╔██╗ ██║██║  ██║█████╗  ██║     ██║   ██║██║  ██║█████╗
 ██║     ██╔══██║██║╚██╗██║██║  ██║██╔══╝  ██║     ██║   ██║██║  ██║██╔══╝
 ╚██████╗██║  ██║██║ ╚████║██████╔╝███████╗╚██████╗╚██████╔╝██████╔╝███████╗
  ╚═════╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═════╝ ╚══════╝ ╚═════╝ ╚═════╝ ╚═════╝ ╚══════╝
`

const helpDescription = `
Decode candump CAN logs into per-signal physical values using a DBC schema.

Highlights:
  - Wide CSV output: one row per frame, one column per signal.
  - Pads or truncates payloads that disagree with the DBC length, and
    reports every adjustment.
  - Per-identifier statistics: frames seen, decoded and DLC-corrected.
  - Follow mode tails a growing log like tail -f.

Configure via flags, CANDECODE_* environment variables, or a TOML file.
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  candecode --log capture.log --dbc vehicle.dbc
  candecode --log capture.log --dbc vehicle.dbc --out trip.csv --stats-out stats.json
  candecode --log /var/log/can0.log --dbc vehicle.dbc --follow
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "candecode",
		Short:   "Decode candump CAN logs into per-signal CSV using a DBC schema",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.candecode/config.toml),
			// then env vars, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Environment variables override file config but are
			// overridden by flags (checked via changed map).
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log.Info().Interface("config", cfg).Msg("configuration")

			runCfg := candecode.Config{
				LogFile:       cfg.LogFile,
				DBCFile:       cfg.DBCFile,
				OutFile:       cfg.OutFile,
				StatsOut:      cfg.StatsOut,
				ErrorsPreview: cfg.ErrorsPreview,
				Follow:        cfg.Follow,
				PollInterval:  cfg.PollInterval,
				Quiet:         cfg.Quiet,
			}

			// SIGINT/SIGTERM cancel the context; in follow mode that is
			// the normal way to finish and flush the outputs.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return candecode.Run(ctx, runCfg)
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.candecode/config.toml)")
	root.Flags().StringVar(&cfg.LogFile, "log", cfg.LogFile, "CAN log file (candump format)")
	root.Flags().StringVar(&cfg.DBCFile, "dbc", cfg.DBCFile, "DBC schema file")
	root.Flags().StringVar(&cfg.OutFile, "out", cfg.OutFile, "output CSV file")
	root.Flags().StringVar(&cfg.StatsOut, "stats-out", cfg.StatsOut, "write a JSON run report to this path")
	root.Flags().IntVar(&cfg.ErrorsPreview, "errors-preview", cfg.ErrorsPreview, "max decode errors shown in the summary")
	root.Flags().BoolVar(&cfg.Follow, "follow", cfg.Follow, "tail the log and decode appended frames until interrupted")
	root.Flags().DurationVar(&cfg.PollInterval, "poll", cfg.PollInterval, "follow-mode poll interval when no file event arrives")
	root.Flags().BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress the console summary")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("candecode")
		os.Exit(1)
	}
}
