package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/golddranks/scoped-stack/internal/history"
	"github.com/golddranks/scoped-stack/pkg/logger"
)

// prepare reads the configuration and builds the logger shared by all commands.
func prepare() (*Config, logger.Logger, error) {
	config, err := ReadConfig()
	if err != nil {
		return nil, nil, err
	}

	if err := config.Verify(); err != nil {
		return nil, nil, err
	}

	log, err := logger.NewLogger(config.Log.Format, config.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	return config, log, nil
}

// loadHistory builds the history script named by the --script flag.
func loadHistory(cmd *cobra.Command, log logger.Logger) (*history.History, error) {
	path, err := cmd.Flags().GetString(scriptFlag)
	if err != nil {
		return nil, err
	}

	script, err := history.LoadScript(path)
	if err != nil {
		return nil, err
	}

	h, err := history.Build(script, log.With(zap.String("script", path)))
	if err != nil {
		return nil, fmt.Errorf("invalid history script %s: %w", path, err)
	}

	return h, nil
}

func addScriptFlag(cmd *cobra.Command) {
	cmd.Flags().String(scriptFlag, "", "the path of the history script to load")
	_ = cmd.MarkFlagRequired(scriptFlag)
}
