// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/golddranks/scoped-stack/cmd/util"
)

const (
	logFormatFlag = "log-format"
	logFormatConf = "log.format"
	logLevelFlag  = "log-level"
	logLevelConf  = "log.level"
	batchSizeFlag = "batch-size"
	batchSizeConf = "batch-size"

	scriptFlag = "script"
	handleFlag = "handle"
	digestFlag = "digest"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with SCOPEDSTACK, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("SCOPEDSTACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/scopedstack", "$HOME/.scopedstack", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	cmd := &cobra.Command{
		Use:   "scopedstack",
		Short: "Explore trees of persistent stacks",
		Long: `Explore trees of persistent stacks.

A history script names stack handles and derives each one from an earlier handle by pushing
values onto it. scopedstack builds the resulting tree of shared ancestries and prints, walks or
compares its handles.`,
		SilenceUsage: true,
	}

	defaultConfig := DefaultConfig()
	flags := cmd.PersistentFlags()

	flags.String(logFormatFlag, defaultConfig.Log.Format, "the log format to output logs in. Allowed values: text, json")
	util.MustBindPFlag(logFormatConf, flags.Lookup(logFormatFlag))
	util.MustBindEnv(logFormatConf, "SCOPEDSTACK_LOG_FORMAT")

	flags.String(logLevelFlag, defaultConfig.Log.Level, "the log level to use. Allowed values: none, debug, info, warn, error")
	util.MustBindPFlag(logLevelConf, flags.Lookup(logLevelFlag))
	util.MustBindEnv(logLevelConf, "SCOPEDSTACK_LOG_LEVEL")

	return cmd
}
