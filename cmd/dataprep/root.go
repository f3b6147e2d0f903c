package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gobd/dataprep/internal/config"
	"github.com/Gobd/dataprep/internal/logging"
)

var (
	cfgPath  string
	logLevel string
	logJSON  bool

	// cfg holds the merged file/env configuration, loaded before any
	// subcommand runs. Flags that were set explicitly win over it.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:           "dataprep",
	Short:         "Data cleaning and transformation helpers",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		level := cfg.Log.Level
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		json := cfg.Log.JSON
		if cmd.Flags().Changed("log-json") {
			json = logJSON
		}
		logging.Configure(logging.Options{Level: level, JSON: json})
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help() //nolint:errcheck
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(cleaningCmd)
	rootCmd.AddCommand(numericCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(structCmd)
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to an optional YAML config file with flag defaults")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
}
