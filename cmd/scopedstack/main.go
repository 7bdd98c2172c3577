package main

import (
	"os"

	"github.com/golddranks/scoped-stack/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	rootCmd.AddCommand(cmd.NewReplayCommand())
	rootCmd.AddCommand(cmd.NewWalkCommand())
	rootCmd.AddCommand(cmd.NewBranchCommand())
	rootCmd.AddCommand(cmd.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
