package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/extract/extracttest"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = "Skills\npython\nreact\n\nWork Experience\n2018-2020\n2021-present\n\nEducation\nBS Computer Science"

func TestAnalyzeResumeCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing input",
			args:        []string{"analyze-resume"},
			errorString: "at least one of the flags",
		},
		{
			name:        "Both inputs",
			args:        []string{"analyze-resume", "--in", "a.docx", "--text", "a.txt"},
			errorString: "none of the others can be",
		},
		{
			name:        "Not a docx",
			args:        []string{"analyze-resume", "--in", "resume.pdf"},
			errorString: ".docx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestAnalyzeResumeCommand_Text(t *testing.T) {
	path := writeFile(t, "resume.txt", sampleResume)

	stdout, _, err := executeCommand(t, "analyze-resume", "--text", path)
	require.NoError(t, err)

	var analysis types.ResumeAnalysis
	require.NoError(t, json.Unmarshal([]byte(stdout), &analysis))
	assert.Equal(t, "python, react", analysis.Skills)
	assert.Equal(t, "6.0 years", analysis.Experience)
	assert.Equal(t, 70.0, analysis.Rating)
}

func TestAnalyzeResumeCommand_DocxToFile(t *testing.T) {
	in := extracttest.WriteDocx(t, "resume.docx", strings.Split(sampleResume, "\n")...)
	out := filepath.Join(t.TempDir(), "analysis.json")

	stdout, _, err := executeCommand(t, "analyze-resume", "--in", in, "--out", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"education": "bs computer science"`)
}

func TestAnalyzeResumeCommand_PresentYearFromConfig(t *testing.T) {
	path := writeFile(t, "resume.txt", sampleResume)
	cfg := writeFile(t, "config.json", `{"present_year": 2021}`)

	stdout, _, err := executeCommand(t, "--config", cfg, "analyze-resume", "--text", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"experience": "2.0 years"`)
}

func TestAnalyzeResumeCommand_AsRecord(t *testing.T) {
	path := writeFile(t, "resume.txt", sampleResume)

	stdout, _, err := executeCommand(t, "analyze-resume", "--text", path, "--as-record", "--user-id", "u-1")
	require.NoError(t, err)

	var rec types.ResumeRecord
	require.NoError(t, json.Unmarshal([]byte(stdout), &rec))
	_, err = uuid.Parse(rec.ID)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", rec.UserID)
	assert.Equal(t, "python, react", rec.Skills)
}

func TestAnalyzeResumeCommand_Verbose(t *testing.T) {
	path := writeFile(t, "resume.txt", sampleResume)

	_, stderr, err := executeCommand(t, "-v", "analyze-resume", "--text", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "RESUME ANALYSIS")
}
