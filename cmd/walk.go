package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/golddranks/scoped-stack/cmd/util"
	"github.com/golddranks/scoped-stack/internal/history"
	"github.com/golddranks/scoped-stack/internal/seq"
)

// NewWalkCommand returns the command that walks one handle back through its history.
func NewWalkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Walk a handle back through its history",
		Long: `Walk a handle back through its history.

Every sub-stack of the handle is printed from the top down, together with the names of the
declared handles it is. With --batch-size the values of the handle are printed instead, that
many per line.`,
		RunE: walk,
		Args: cobra.NoArgs,
	}

	defaultConfig := DefaultConfig()
	flags := cmd.Flags()

	addScriptFlag(cmd)

	flags.String(handleFlag, "", "the name of the handle to walk")
	_ = cmd.MarkFlagRequired(handleFlag)

	flags.Int(batchSizeFlag, defaultConfig.BatchSize, "print the values of the handle this many per line")
	util.MustBindPFlag(batchSizeConf, flags.Lookup(batchSizeFlag))
	util.MustBindEnv(batchSizeConf, "SCOPEDSTACK_BATCH_SIZE")

	return cmd
}

func walk(cmd *cobra.Command, _ []string) error {
	config, log, err := prepare()
	if err != nil {
		return err
	}

	h, err := loadHistory(cmd, log)
	if err != nil {
		return err
	}

	name, err := cmd.Flags().GetString(handleFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if config.BatchSize > 0 {
		s, ok := h.Lookup(name)
		if !ok {
			return fmt.Errorf("%q: %w", name, history.ErrUnknownHandle)
		}
		for batch := range seq.Batches(s.Values(), config.BatchSize) {
			fmt.Fprintln(out, strings.Join(batch, ", "))
		}
		return nil
	}

	steps, err := h.Walk(name)
	if err != nil {
		return err
	}
	for _, step := range steps {
		fmt.Fprintf(out, "%d\t%s\t%s\n", step.Depth, strings.Join(step.Names, ","), step.Debug)
	}

	return nil
}
