package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golddranks/scoped-stack/internal/build"
)

// NewVersionCommand returns the command to get the scopedstack version
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Return the scopedstack version",
		Long:  "Return the scopedstack version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}

	return cmd
}

// print out the built version
func version(cmd *cobra.Command, _ []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "scopedstack version %s date %s commit id %s\n", build.Version, build.Date, build.Commit)
	return nil
}
