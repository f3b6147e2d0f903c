package main

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cobra"

	"github.com/Gobd/dataprep"
	"github.com/Gobd/dataprep/internal/logging"
)

var numericCmd = &cobra.Command{
	Use:   "numeric",
	Short: "Numeric data operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// boundsOptions is the shared lo/hi option pair used by normalize and
// clip. Validate rejects inverted bounds before any data is touched.
type boundsOptions struct {
	Lo float64
	Hi float64
}

func (o boundsOptions) Validate() error {
	return validation.Errors{
		"max": validation.Validate(o.Hi, validation.By(func(any) error {
			if o.Hi < o.Lo {
				return fmt.Errorf("must be >= min (%v)", o.Lo)
			}
			return nil
		})),
	}.Filter()
}

var normalizeOpts = boundsOptions{Lo: 0, Hi: 1}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [DATA...]",
	Short: "Min-max normalize the input against its own extremes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := normalizeOpts.Validate(); err != nil {
			return err
		}
		values, err := coerceFloats(args)
		if err != nil {
			return err
		}
		normalized := dataprep.MinMaxNormalize(values, normalizeOpts.Lo, normalizeOpts.Hi)
		fmt.Fprintf(cmd.OutOrStdout(), "Normalized Data: %v\n", normalized)
		return nil
	},
}

var standardizeCmd = &cobra.Command{
	Use:   "standardize [DATA...]",
	Short: "Z-score standardize the input (population mean and std)",
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := coerceFloats(args)
		if err != nil {
			return err
		}
		standardized := dataprep.ZScoreStandardize(values)
		fmt.Fprintf(cmd.OutOrStdout(), "Standardized Data: %v\n", standardized)
		return nil
	},
}

var clipOpts = boundsOptions{Lo: 0, Hi: 1}

var clipCmd = &cobra.Command{
	Use:   "clip [DATA...]",
	Short: "Clamp the input into the threshold range",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := clipOpts.Validate(); err != nil {
			return err
		}
		values, err := coerceFloats(args)
		if err != nil {
			return err
		}
		clipped := dataprep.Clip(values, clipOpts.Lo, clipOpts.Hi)
		fmt.Fprintf(cmd.OutOrStdout(), "Clipped Data: %v\n", clipped)
		return nil
	},
}

var toIntCmd = &cobra.Command{
	Use:   "to-int [DATA...]",
	Short: "Keep only all-digit tokens, parsed as integers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ints := dataprep.ToInts(args)
		logging.L().Debug("parsed integers", "in", len(args), "out", len(ints))
		fmt.Fprintf(cmd.OutOrStdout(), "Integer Data: %v\n", ints)
		return nil
	},
}

var logScaleCmd = &cobra.Command{
	Use:   "log-scale [DATA...]",
	Short: "Apply the natural logarithm, dropping non-positive values",
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := coerceFloats(args)
		if err != nil {
			return err
		}
		scaled := dataprep.LogTransform(values)
		fmt.Fprintf(cmd.OutOrStdout(), "Log Scaled Data: %v\n", scaled)
		return nil
	},
}

func init() {
	normalizeCmd.Flags().Float64Var(&normalizeOpts.Lo, "min_value", 0, "Minimum value for normalization")
	normalizeCmd.Flags().Float64Var(&normalizeOpts.Hi, "max_value", 1, "Maximum value for normalization")
	clipCmd.Flags().Float64Var(&clipOpts.Lo, "min_threshold", 0, "Lower threshold for clipping")
	clipCmd.Flags().Float64Var(&clipOpts.Hi, "max_threshold", 1, "Upper threshold for clipping")
	numericCmd.AddCommand(normalizeCmd)
	numericCmd.AddCommand(standardizeCmd)
	numericCmd.AddCommand(clipCmd)
	numericCmd.AddCommand(toIntCmd)
	numericCmd.AddCommand(logScaleCmd)
}
