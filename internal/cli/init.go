package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/bulkrename/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .bulkrename directory with a default config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		configDir := filepath.Join(wd, config.DirName)
		if _, err := os.Stat(filepath.Join(configDir, config.ConfigFile)); err == nil {
			return fmt.Errorf("already initialized: %s", configDir)
		}

		cfg := config.DefaultConfig()
		if err := config.Save(configDir, &cfg); err != nil {
			return err
		}
		fmt.Printf("Initialized %s\n", configDir)
		fmt.Println("Edit config.yaml to set up your operation chain, then run 'bulkrename preview'.")
		return nil
	},
}
