package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/job"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/spf13/cobra"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Extract required skills and experience from a job description",
	Long: "Analyze a job description in a text or HTML file and print JobAnalysis JSON that validates " +
		"against the job_analysis schema. With --as-record the output is the stored job record the " +
		"match command reads.",
	RunE: runAnalyzeJob,
}

var (
	jobInputFile  string
	jobOutputFile string
	jobAsRecord   bool
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&jobInputFile, "in", "i", "", "Path to job description (.txt or .html)")
	analyzeJobCmd.Flags().StringVarP(&jobOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeJobCmd.Flags().BoolVar(&jobAsRecord, "as-record", false, "Emit a job record with a generated ID")
	_ = analyzeJobCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeJobCmd)
}

func runAnalyzeJob(cmd *cobra.Command, _ []string) error {
	text, meta, err := ingestion.IngestFromFile(jobInputFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	lex, err := loadLexicon()
	if err != nil {
		return err
	}
	analysis, err := job.NewAnalyzer(lex, nlp.NewAnalyzer()).Analyze(text)
	if err != nil {
		return fmt.Errorf("failed to analyze job: %w", err)
	}

	logging.L().Info().
		Str("source", meta.Source).
		Str("format", meta.Format).
		Str("hash", meta.Hash).
		Strs("required_skills", analysis.RequiredSkills).
		Float64("required_experience", analysis.RequiredExperience).
		Msg("analyzed job description")

	if p := printer(cmd.ErrOrStderr()); p != nil {
		p.PrintJobAnalysis(analysis)
	}

	if jobAsRecord {
		return writeJSON(cmd.OutOrStdout(), jobOutputFile, analysis.ToRecord(uuid.NewString()))
	}
	return writeJSON(cmd.OutOrStdout(), jobOutputFile, analysis)
}
