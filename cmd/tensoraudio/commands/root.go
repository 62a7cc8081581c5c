// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/tensoraudio/internal/config"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	envPath    string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tensoraudio",
		Short: "Fill fixed-size audio windows for audio models",
		Long: `tensoraudio - load audio into model-sized windows.

A window holds the newest sample_count frames at the configured rate and
channel count. Files are decoded by extension (wav, aiff, mp3, ogg).

Configuration is read from a YAML file (--config) and TENSORAUDIO_*
environment variables, which may also come from a .env file.

Examples:
  tensoraudio info speech.wav music.mp3
  tensoraudio load speech.wav --samples 16000 --out window.wav
  tensoraudio load music.mp3 --resample
  tensoraudio listen --duration 3s --out mic.wav`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.envPath, "env", ".env", "dotenv file with TENSORAUDIO_* variables")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	root.AddCommand(newInfoCmd(a), newLoadCmd(a), newListenCmd(a))

	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func (a *app) init() error {
	if err := config.LoadEnvFile(a.envPath); err != nil {
		return err
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = config.LogLevel(a.logLevel)
		if !cfg.LogLevel.IsValid() {
			return fmt.Errorf("invalid --log-level %q", a.logLevel)
		}
	}

	a.cfg = cfg
	a.logger = newLogger(cfg.LogLevel)
	slog.SetDefault(a.logger)

	return nil
}

func newLogger(level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
