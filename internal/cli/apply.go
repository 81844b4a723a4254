package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/bulkrename/internal/config"
	"github.com/backmassage/bulkrename/internal/display"
	"github.com/backmassage/bulkrename/internal/journal"
	"github.com/backmassage/bulkrename/internal/logging"
	"github.com/backmassage/bulkrename/internal/pipeline"
)

var applyCmd = &cobra.Command{
	Use:   "apply [dir]",
	Short: "Commit the rename plan and record it for undo",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := targetDir(args)
		cfg, configDir, err := loadConfig(dir)
		if err != nil {
			return err
		}

		log, err := logging.NewLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Close()

		var jnl *journal.Journal
		if configDir != "" {
			jnl, err = journal.Open(filepath.Join(configDir, config.DBFile))
			if err != nil {
				return err
			}
			defer jnl.Close()
		} else {
			log.Warn("No %s directory; undo will be unavailable (run 'bulkrename init')", config.DirName)
		}

		display.PrintBanner()
		_, err = pipeline.Run(cfg, log, dir, true, jnl)
		return err
	},
}
