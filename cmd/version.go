package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden through -ldflags on release builds.
var (
	version = "(devel)"
	commit  = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the studyowl version",
	Run: func(cmd *cobra.Command, _ []string) {
		if commit != "" {
			fmt.Printf("studyowl %s (%s)\n", version, commit)
			return
		}
		fmt.Printf("studyowl %s\n", version)
	},
}
