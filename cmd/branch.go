package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewBranchCommand returns the command that finds where two handles diverged.
func NewBranchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch A B",
		Short: "Print the point at which two handles diverged",
		Long:  "Print the deepest sub-stack shared by two handles, with the names of the declared handles it is.",
		RunE:  branch,
		Args:  cobra.ExactArgs(2),
	}

	addScriptFlag(cmd)

	return cmd
}

func branch(cmd *cobra.Command, args []string) error {
	_, log, err := prepare()
	if err != nil {
		return err
	}

	h, err := loadHistory(cmd, log)
	if err != nil {
		return err
	}

	ancestor, err := h.Branch(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", ancestor.Len(), strings.Join(h.NamesOf(ancestor), ","), ancestor)
	return nil
}
