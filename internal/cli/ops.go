package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/bulkrename/internal/rename"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List available rename operations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, op := range rename.Registered() {
			fmt.Printf("%2d  %s\n", op.Priority(), op.Label())
		}
	},
}
