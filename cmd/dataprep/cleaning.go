package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gobd/dataprep"
	"github.com/Gobd/dataprep/internal/logging"
)

var cleaningCmd = &cobra.Command{
	Use:   "cleaning",
	Short: "Data cleaning operations",
	Args:  cobra.NoArgs,
	// A bare RunE keeps the command runnable so NoArgs fires on unknown
	// subcommands instead of cobra short-circuiting to help.
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean [DATA...]",
	Short: "Remove missing entries (empty, none/null, NaN) from the input",
	RunE: func(cmd *cobra.Command, args []string) error {
		values := coerceValues(args)
		cleaned := dataprep.Clean(values)
		logging.L().Debug("cleaned input", "in", len(values), "out", len(cleaned))
		fmt.Fprintf(cmd.OutOrStdout(), "Cleaned Data: %v\n", cleaned)
		return nil
	},
}

var fillValue string

var fillCmd = &cobra.Command{
	Use:   "fill [DATA...]",
	Short: "Replace missing entries with a fill value",
	RunE: func(cmd *cobra.Command, args []string) error {
		fv := fillValue
		if !cmd.Flags().Changed("fill_value") && cfg.Cleaning.FillValue != "" {
			fv = cfg.Cleaning.FillValue
		}
		filled := dataprep.Fill(coerceValues(args), coerceValue(fv))
		fmt.Fprintf(cmd.OutOrStdout(), "Filled Data: %v\n", filled)
		return nil
	},
}

func init() {
	fillCmd.Flags().StringVar(&fillValue, "fill_value", "0", "Value to fill missing entries with")
	cleaningCmd.AddCommand(cleanCmd)
	cleaningCmd.AddCommand(fillCmd)
}
