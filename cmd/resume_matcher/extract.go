package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract plain text from a PDF, DOCX or text document",
	Long:  "Extract plain text from a resume document. Unreadable documents print nothing and log a warning.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to the document (.pdf, .docx, .txt)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output text file (default stdout)")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	if extract.DetectFormat(extractInputFile) == extract.FormatUnknown {
		return fmt.Errorf("unsupported document format: %s", extractInputFile)
	}

	text := extract.Text(extractInputFile)

	if extractOutputFile == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}
	if err := os.WriteFile(extractOutputFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Extracted %d characters to %s\n", len(text), extractOutputFile)
	return nil
}
