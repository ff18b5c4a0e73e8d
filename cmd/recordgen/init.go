package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wippyai/recordgen/config"
	"github.com/wippyai/recordgen/errors"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default " + config.FileName,
	Args:  cobra.MaximumNArgs(1),
	// Runs without loading a config so a broken one can be replaced.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		path, err := writeDefaultConfig(dir, initForce)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

func writeDefaultConfig(dir string, force bool) (string, error) {
	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", errors.InvalidInput(errors.PhaseConfig, path+" already exists (use --force to overwrite)")
	}
	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return "", err
	}
	return path, nil
}
