package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gobd/dataprep"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Text data operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [DATA...]",
	Short: "Lowercase and split the input into word tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := dataprep.Tokenize(strings.Join(args, " "))
		fmt.Fprintf(cmd.OutOrStdout(), "Tokenized Data: %v\n", tokens)
		return nil
	},
}

var cleanPunctuationCmd = &cobra.Command{
	Use:   "clean-punctuation [DATA...]",
	Short: "Strip punctuation and collapse whitespace, preserving case",
	RunE: func(cmd *cobra.Command, args []string) error {
		cleaned := dataprep.CleanPunctuation(strings.Join(args, " "))
		fmt.Fprintf(cmd.OutOrStdout(), "Cleaned Text Data: %v\n", cleaned)
		return nil
	},
}

var stopwordList string

var cleanStopwordsCmd = &cobra.Command{
	Use:   "clean-stopwords [DATA...]",
	Short: "Drop stopword tokens from the input text",
	RunE: func(cmd *cobra.Command, args []string) error {
		list := stopwordList
		if !cmd.Flags().Changed("stopwords") && cfg.Text.Stopwords != "" {
			list = cfg.Text.Stopwords
		}
		cleaned := dataprep.RemoveStopwords(strings.Join(args, " "), dataprep.StopwordSet(list))
		fmt.Fprintf(cmd.OutOrStdout(), "Cleaned Text Data: %v\n", cleaned)
		return nil
	},
}

func init() {
	cleanStopwordsCmd.Flags().StringVar(&stopwordList, "stopwords", "", "Comma-separated list of stopwords to remove")
	textCmd.AddCommand(tokenizeCmd)
	textCmd.AddCommand(cleanPunctuationCmd)
	textCmd.AddCommand(cleanStopwordsCmd)
}
