package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X ...cmd.version=v1.2.3".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gauge version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gauge", version)
	},
}
