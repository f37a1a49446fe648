package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/repogen"
)

// VersionCmd creates the 'version' command
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show repogen version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "repogen %s (%s, %s/%s)\n", repogen.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
