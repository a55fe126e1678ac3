// Package main provides the entry point for the resume matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume and job description analyzer",
	Long: "Resume matcher extracts text from resumes, rates them, pulls required skills and experience " +
		"out of job descriptions and scores resume/job compatibility.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

var (
	configPath string
	logLevel   string
	logFormat  string
	verbose    bool

	// settings is the merged configuration for the running command.
	settings = config.Defaults()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: json or pretty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print human-readable summaries to stderr")
}

// loadSettings merges, lowest first: defaults, config file, environment, flags.
func loadSettings(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if verbose {
		cfg.Verbose = true
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return err
	}
	settings = merged

	logging.Init(logging.Config{Level: settings.LogLevel, Format: settings.LogFormat})
	return nil
}

// loadLexicon returns the configured lexicon, or the built-in one.
func loadLexicon() (*lexicon.Lexicon, error) {
	if settings.LexiconPath == "" {
		return lexicon.Default(), nil
	}
	lex, err := lexicon.Load(settings.LexiconPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	return lex, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
