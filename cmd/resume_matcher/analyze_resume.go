package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/resume"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/spf13/cobra"
)

var analyzeResumeCmd = &cobra.Command{
	Use:   "analyze-resume",
	Short: "Analyze a resume into skills, experience, education, rating and feedback",
	Long: "Analyze a DOCX resume (--in) or its extracted text (--text) and print ResumeAnalysis JSON " +
		"that validates against the resume_analysis schema. With --as-record the output is the stored " +
		"resume record the match command reads.",
	RunE: runAnalyzeResume,
}

var (
	resumeInputFile  string
	resumeTextFile   string
	resumeOutputFile string
	resumeAsRecord   bool
	resumeUserID     string
)

func init() {
	analyzeResumeCmd.Flags().StringVarP(&resumeInputFile, "in", "i", "", "Path to a .docx resume")
	analyzeResumeCmd.Flags().StringVar(&resumeTextFile, "text", "", "Path to already extracted resume text")
	analyzeResumeCmd.Flags().StringVarP(&resumeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeResumeCmd.Flags().BoolVar(&resumeAsRecord, "as-record", false, "Emit a resume record with a generated ID")
	analyzeResumeCmd.Flags().StringVar(&resumeUserID, "user-id", "", "Owner of the resume record (with --as-record)")
	analyzeResumeCmd.MarkFlagsMutuallyExclusive("in", "text")
	analyzeResumeCmd.MarkFlagsOneRequired("in", "text")

	rootCmd.AddCommand(analyzeResumeCmd)
}

func runAnalyzeResume(cmd *cobra.Command, _ []string) error {
	lex, err := loadLexicon()
	if err != nil {
		return err
	}
	analyzer, err := resume.NewAnalyzer(lex, resume.WithPresentYear(settings.PresentYear))
	if err != nil {
		return fmt.Errorf("failed to build resume analyzer: %w", err)
	}

	var analysis *types.ResumeAnalysis
	if resumeInputFile != "" {
		analysis, err = analyzer.AnalyzeFile(resumeInputFile)
	} else {
		var content []byte
		content, err = os.ReadFile(resumeTextFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		analysis, err = analyzer.AnalyzeText(string(content))
	}
	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}

	logging.L().Info().
		Str("skills", analysis.Skills).
		Str("experience", analysis.Experience).
		Float64("rating", analysis.Rating).
		Msg("analyzed resume")

	if p := printer(cmd.ErrOrStderr()); p != nil {
		p.PrintResumeAnalysis(analysis)
	}

	if resumeAsRecord {
		return writeJSON(cmd.OutOrStdout(), resumeOutputFile, analysis.ToRecord(uuid.NewString(), resumeUserID))
	}
	return writeJSON(cmd.OutOrStdout(), resumeOutputFile, analysis)
}
