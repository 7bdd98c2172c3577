package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewReplayCommand returns the command that builds a history script and prints every handle.
func NewReplayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Build a history script and print every handle",
		Long:  "Build a history script and print the debug rendering of every handle, in declaration order.",
		RunE:  replay,
		Args:  cobra.NoArgs,
	}

	addScriptFlag(cmd)
	cmd.Flags().Bool(digestFlag, false, "also print the depth and content digest of every handle")

	return cmd
}

func replay(cmd *cobra.Command, _ []string) error {
	_, log, err := prepare()
	if err != nil {
		return err
	}

	h, err := loadHistory(cmd, log)
	if err != nil {
		return err
	}

	renderings, err := h.Render(cmd.Context())
	if err != nil {
		return err
	}

	withDigest, err := cmd.Flags().GetBool(digestFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range renderings {
		if withDigest {
			fmt.Fprintf(out, "%s\t%d\t%016x\t%s\n", r.Name, r.Depth, r.Digest, r.Debug)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", r.Name, r.Debug)
	}

	return nil
}
