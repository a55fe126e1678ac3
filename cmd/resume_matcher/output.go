package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-matcher/internal/observability"
)

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		_, err = w.Write(jsonBytes)
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// readJSON decodes the JSON file at path into v.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// printer returns a verbose-mode printer, or nil when verbose output is off.
func printer(w io.Writer) *observability.Printer {
	if !settings.Verbose {
		return nil
	}
	return observability.NewPrinter(w)
}
