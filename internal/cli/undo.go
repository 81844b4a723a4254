package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/bulkrename/internal/config"
	"github.com/backmassage/bulkrename/internal/journal"
	"github.com/backmassage/bulkrename/internal/logging"
	"github.com/backmassage/bulkrename/internal/pipeline"
)

var undoCmd = &cobra.Command{
	Use:   "undo [dir]",
	Short: "Revert the most recently applied rename batch",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := targetDir(args)
		cfg, configDir, err := loadConfig(dir)
		if err != nil {
			return err
		}
		if configDir == "" {
			// FindConfigDir already failed; surface its message.
			_, err := config.FindConfigDir(dir)
			return err
		}

		log, err := logging.NewLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Close()

		jnl, err := journal.Open(filepath.Join(configDir, config.DBFile))
		if err != nil {
			return err
		}
		defer jnl.Close()

		_, err = pipeline.Undo(log, jnl)
		return err
	},
}
