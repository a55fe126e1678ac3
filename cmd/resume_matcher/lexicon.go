package main

import (
	"github.com/spf13/cobra"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Print the word lists used by the analyzers",
	Long: "Print the active lexicon as JSON: the built-in one, or the file named by lexicon_path in the " +
		"config. The full output is a valid lexicon file that can be edited and loaded back. With --list " +
		"only that word list is printed.",
	RunE: runLexicon,
}

var (
	lexiconList       string
	lexiconOutputFile string
)

func init() {
	lexiconCmd.Flags().StringVarP(&lexiconList, "list", "l", "", "Print a single list (e.g. trending_tech, ats_keywords)")
	lexiconCmd.Flags().StringVarP(&lexiconOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(lexiconCmd)
}

func runLexicon(cmd *cobra.Command, _ []string) error {
	lex, err := loadLexicon()
	if err != nil {
		return err
	}

	if lexiconList == "" {
		return writeJSON(cmd.OutOrStdout(), lexiconOutputFile, lex.Export())
	}
	words, err := lex.List(lexiconList)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), lexiconOutputFile, words)
}
