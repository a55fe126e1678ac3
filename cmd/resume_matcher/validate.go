package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a schema",
	Long: "Validate a JSON document against one of the embedded schemas (" +
		strings.Join(schemas.Names(), ", ") + ") or against a schema file on disk.",
	RunE: runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Embedded schema name or path to a schema file (required)")
	validateCmd.Flags().StringVar(&validateJSON, "json", "", "Path to the JSON document (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	if slices.Contains(schemas.Names(), validateSchema) {
		var doc []byte
		doc, err = os.ReadFile(validateJSON)
		if err != nil {
			return fmt.Errorf("failed to read JSON file: %w", err)
		}
		err = schemas.ValidateBytes(validateSchema, doc)
	} else {
		err = schemas.ValidateJSON(validateSchema, validateJSON)
	}

	var validationErr *schemas.ValidationError
	if err != nil && !errors.As(err, &validationErr) {
		return err
	}

	if p := printer(cmd.ErrOrStderr()); p != nil {
		var problems []string
		if validationErr != nil {
			for _, fe := range validationErr.Errors {
				problems = append(problems, fe.Field+": "+fe.Message)
			}
		}
		p.PrintValidation(validateSchema, problems)
	}

	if validationErr != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid against %s\n", validateJSON, validateSchema)
	return nil
}
