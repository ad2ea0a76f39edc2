package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/logview/internal/app"
	"github.com/five82/logview/internal/config"
)

var errUsage = errors.New("expected exactly one file argument")

type rootFlags struct {
	configPath string
	poll       time.Duration
	backlog    int
	logFile    string
	noNotify   bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "logview <path-to-file>",
		Short: "Follow a log file and color its severity tags",
		Long: `logview shows lines appended to a log file as they are written.

Bracketed tags are colored by severity: [debug] blue, [info] green,
[warn] yellow, [error] red, anything else grey. When the file shrinks
(truncated or rotated) a notice is printed and reading restarts at the top.

Press 'q' or Escape to exit.`,
		Example: `  logview /var/log/app.log
  logview -n 20 ./server.log
  logview --poll 500ms --no-notify /mnt/share/app.log`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), app.Options{Path: args[0], Config: cfg})
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file path (default: ~/.config/logview/config.toml)")
	cmd.Flags().DurationVar(&flags.poll, "poll", config.DefaultPollInterval, "interval between file checks")
	cmd.Flags().IntVarP(&flags.backlog, "backlog", "n", 0, "show the last N existing lines before following")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write diagnostics to this file")
	cmd.Flags().BoolVar(&flags.noNotify, "no-notify", false, "disable filesystem notifications and rely on polling")

	return cmd
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}

	f := cmd.Flags()
	if f.Changed("poll") {
		cfg.PollInterval = flags.poll
	}
	if f.Changed("backlog") {
		cfg.Backlog = flags.backlog
	}
	if f.Changed("log-file") {
		path, err := config.ExpandPath(flags.logFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg.LogFile = path
	}
	if flags.noNotify {
		cfg.Notify = false
	}
	return cfg.Normalize(), nil
}
