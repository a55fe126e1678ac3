package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/users"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score resumes against a job and list them best first",
	Long: "Score every resume against one job and print MatchResult JSON sorted by compatibility. " +
		"Records come from JSON files (--job, --resumes) or from PostgreSQL (--job-id with --db-url " +
		"or DATABASE_URL). --init-db creates the tables first when they are missing.",
	RunE: runMatch,
}

var (
	matchJobFile     string
	matchResumesFile string
	matchUsersFile   string
	matchJobID       string
	matchDatabaseURL string
	matchOutputFile  string
	matchConcurrency int
	matchInitDB      bool
)

func init() {
	matchCmd.Flags().StringVar(&matchJobFile, "job", "", "Path to a job record JSON file")
	matchCmd.Flags().StringVar(&matchResumesFile, "resumes", "", "Path to a JSON array of resume records")
	matchCmd.Flags().StringVar(&matchUsersFile, "users", "", "Path to a JSON array of {id, name} users")
	matchCmd.Flags().StringVar(&matchJobID, "job-id", "", "Job ID to load from the database")
	matchCmd.Flags().StringVar(&matchDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	matchCmd.Flags().BoolVar(&matchInitDB, "init-db", false, "Create the users, resumes and jobs tables if missing")
	matchCmd.Flags().IntVar(&matchConcurrency, "concurrency", 0, "Resumes scored in parallel (default from config)")
	matchCmd.MarkFlagsRequiredTogether("job", "resumes")
	matchCmd.MarkFlagsMutuallyExclusive("job", "job-id")
	matchCmd.MarkFlagsMutuallyExclusive("users", "job-id")
	matchCmd.MarkFlagsMutuallyExclusive("job", "init-db")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	useDatabase := matchJobID != ""
	useFiles := matchJobFile != ""
	if !useDatabase && !useFiles {
		return fmt.Errorf("must provide either --job-id or --job/--resumes flags")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		job     types.JobRecord
		resumes []types.ResumeRecord
		dir     users.Directory
	)

	if useFiles {
		if err := readJSON(matchJobFile, &job); err != nil {
			return err
		}
		if err := readJSON(matchResumesFile, &resumes); err != nil {
			return err
		}
		if matchUsersFile != "" {
			static, err := users.LoadStaticDirectory(matchUsersFile)
			if err != nil {
				return err
			}
			dir = static
		}
	} else {
		jobID, err := uuid.Parse(matchJobID)
		if err != nil {
			return fmt.Errorf("invalid job-id: %w", err)
		}

		databaseURL := matchDatabaseURL
		if databaseURL == "" {
			databaseURL = settings.DatabaseURL
		}
		if databaseURL == "" {
			return fmt.Errorf("DATABASE_URL required when using --job-id")
		}

		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if matchInitDB {
			if err := database.EnsureSchema(ctx); err != nil {
				return err
			}
		}

		rec, err := database.GetJobRecord(ctx, jobID)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("job not found: %s", jobID)
		}
		job = *rec

		if resumes, err = database.ListResumeRecords(ctx); err != nil {
			return err
		}
		dir = db.NewUserDirectory(database)
	}

	concurrency := matchConcurrency
	if concurrency == 0 {
		concurrency = settings.MatchConcurrency
	}

	scorer := matching.NewScorer(nlp.NewAnalyzer(), dir)
	results, err := scorer.MatchAll(ctx, job, resumes, concurrency)
	if err != nil {
		return fmt.Errorf("failed to score resumes: %w", err)
	}

	for _, r := range results {
		if err := schemas.Validate(schemas.MatchResult, r); err != nil {
			return fmt.Errorf("match result for resume %s does not validate: %w", r.ResumeID, err)
		}
	}

	logging.L().Info().
		Str("job_id", job.ID).
		Int("resumes", len(resumes)).
		Msg("scored resumes")

	if p := printer(cmd.ErrOrStderr()); p != nil {
		p.PrintMatchResults(results)
	}

	if results == nil {
		results = []types.MatchResult{}
	}
	return writeJSON(cmd.OutOrStdout(), matchOutputFile, results)
}
