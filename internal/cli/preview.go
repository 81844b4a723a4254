package cli

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/bulkrename/internal/display"
	"github.com/backmassage/bulkrename/internal/logging"
	"github.com/backmassage/bulkrename/internal/pipeline"
)

var previewCmd = &cobra.Command{
	Use:   "preview [dir]",
	Short: "Show the rename plan without touching any file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := targetDir(args)
		cfg, _, err := loadConfig(dir)
		if err != nil {
			return err
		}

		log, err := logging.NewLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Close()

		display.PrintBanner()
		_, err = pipeline.Run(cfg, log, dir, false, nil)
		return err
	},
}
