package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spf13/cobra"

	"github.com/wippyai/recordgen/config"
	"github.com/wippyai/recordgen/gen"
	"github.com/wippyai/recordgen/source/gosrc"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "recordgen",
	Short: "recordgen - binary codecs for fixed-layout records",
	Long: `recordgen reads record declarations from Go source or a YAML/JSON schema
file and writes decode, encode, size and indexed load/store methods for them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = loadConfig(cfgFile); err != nil {
			return err
		}
		level, _ := cfg.LogLevel()
		if verbose {
			level = zapcore.DebugLevel
		}
		if logger, err = newLogger(level); err != nil {
			return err
		}
		gen.SetLogger(logger)
		gosrc.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: nearest "+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// loadConfig reads path, or the nearest config file above the working
// directory when path is empty. Without either the defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.Find(".")
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(path)
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	return zc.Build()
}
