package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gobd/dataprep"
)

var structCmd = &cobra.Command{
	Use:   "struct",
	Short: "Structure data operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var shuffleSeed uint64

var shuffleCmd = &cobra.Command{
	Use:   "shuffle [DATA...]",
	Short: "Randomly permute the input, reproducibly when seeded",
	RunE: func(cmd *cobra.Command, args []string) error {
		var shuffled []string
		if cmd.Flags().Changed("seed") {
			shuffled = dataprep.ShuffleSeeded(args, shuffleSeed)
		} else {
			shuffled = dataprep.Shuffle(args)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Shuffled Data: %v\n", shuffled)
		return nil
	},
}

var flattenCmd = &cobra.Command{
	Use:   "flatten [DATA...]",
	Short: "Concatenate one level of list literals, e.g. [1,2] [3,4]",
	RunE: func(cmd *cobra.Command, args []string) error {
		lists, err := coerceLists(args)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Flattened Data: %v\n", dataprep.Flatten(lists))
		return nil
	},
}

var deduplicateCmd = &cobra.Command{
	Use:   "deduplicate [DATA...]",
	Short: "Keep the distinct input values (order unspecified)",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "Deduplicated Data: %v\n", dataprep.Dedupe(args))
		return nil
	},
}

func init() {
	shuffleCmd.Flags().Uint64Var(&shuffleSeed, "seed", 0, "Random seed for shuffling")
	structCmd.AddCommand(shuffleCmd)
	structCmd.AddCommand(flattenCmd)
	structCmd.AddCommand(deduplicateCmd)
}
