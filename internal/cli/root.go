// Package cli implements the bulkrename command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/bulkrename/internal/config"
	"github.com/backmassage/bulkrename/internal/version"
)

var (
	colorFlag   string
	verboseFlag bool
	logFileFlag string
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:     "bulkrename",
	Short:   "Batch file renamer with a composable operation chain",
	Version: version.String(),
	Long: `bulkrename applies an ordered chain of text operations (remove
characters, replace, enumerate, ...) to file names, previews the
old → new mapping, and only commits when asked. Applied batches are
journaled and can be undone.`,
	SilenceUsage: true,
}

// Execute runs the command tree; it exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "color mode: auto, always or never")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "show debug output")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "append a plain-text log to this file")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "use this "+config.DirName+" directory instead of searching upward")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(opsCmd)
}

// loadConfig resolves the effective configuration for dir: file values from
// the config directory named by --config, or else the nearest .bulkrename
// directory when one exists (configDir is "" when none does), overridden by
// global flags, then validated.
func loadConfig(dir string) (*config.Config, string, error) {
	cfg := config.DefaultConfig()

	configDir := configFlag
	if configDir == "" {
		found, err := config.FindConfigDir(dir)
		if err == nil {
			configDir = found
		}
	}
	if configDir != "" {
		loaded, err := config.Load(configDir)
		if err != nil {
			return nil, "", err
		}
		cfg = *loaded
	}

	if colorFlag != "" {
		cfg.ColorMode = config.ColorMode(colorFlag)
	}
	if verboseFlag {
		cfg.Verbose = true
	}
	if logFileFlag != "" {
		cfg.LogFile = logFileFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, configDir, nil
}

func targetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
