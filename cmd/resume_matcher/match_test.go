package main

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	matchJob = `{"id": "j-1", "required_skills": "python, aws, docker", "required_experience": 5,
		"description": "Backend engineer with Python, AWS and Docker"}`
	matchResumes = `[
		{"id": "r-1", "user_id": "u-1", "skills": "python, aws", "experience": "3.0 years", "education": "bs"},
		{"id": "r-2", "user_id": "u-2", "skills": "python, aws, docker", "experience": "6.0 years", "education": "ms"}
	]`
	matchUsers = `[{"id": "u-1", "name": "jane"}]`
)

func TestMatchCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "No source",
			args:        []string{"match"},
			errorString: "must provide either --job-id or --job/--resumes",
		},
		{
			name:        "Job without resumes",
			args:        []string{"match", "--job", "job.json"},
			errorString: "resumes",
		},
		{
			name:        "Invalid job ID",
			args:        []string{"match", "--job-id", "not-a-uuid"},
			errorString: "invalid job-id",
		},
		{
			name:        "Init DB with files",
			args:        []string{"match", "--job", "a.json", "--resumes", "b.json", "--init-db"},
			errorString: "none of the others can be",
		},
		{
			name:        "Both sources",
			args:        []string{"match", "--job", "a.json", "--resumes", "b.json", "--job-id", "00000000-0000-0000-0000-000000000000"},
			errorString: "none of the others can be",
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

func TestMatchCommand_DatabaseURLRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, _, err := executeCommand(t, "match", "--job-id", "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL required")
}

func TestMatchCommand_Files(t *testing.T) {
	job := writeFile(t, "job.json", matchJob)
	resumes := writeFile(t, "resumes.json", matchResumes)
	usersFile := writeFile(t, "users.json", matchUsers)

	stdout, stderr, err := executeCommand(t, "-v", "match", "--job", job, "--resumes", resumes, "--users", usersFile, "--concurrency", "2")
	require.NoError(t, err)

	var results []types.MatchResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &results))
	require.Len(t, results, 2)

	assert.Equal(t, "r-2", results[0].ResumeID)
	assert.Equal(t, users.UnknownName, results[0].User)
	assert.GreaterOrEqual(t, results[0].CompatibilityScore, 80.0)

	assert.Equal(t, "r-1", results[1].ResumeID)
	assert.Equal(t, "jane", results[1].User)
	assert.Equal(t, "aws, python", results[1].MatchedSkills)
	assert.GreaterOrEqual(t, results[1].CompatibilityScore, 53.33)

	assert.Contains(t, stderr, "TOP MATCHES")
}

func TestMatchCommand_NoResumes(t *testing.T) {
	job := writeFile(t, "job.json", matchJob)
	resumes := writeFile(t, "resumes.json", `[]`)

	stdout, _, err := executeCommand(t, "match", "--job", job, "--resumes", resumes)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, stdout)
}

func TestMatchCommand_BadResumesFile(t *testing.T) {
	job := writeFile(t, "job.json", matchJob)
	resumes := writeFile(t, "resumes.json", `{not json`)

	_, _, err := executeCommand(t, "match", "--job", job, "--resumes", resumes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

// Skipped unless DATABASE_URL points at a reachable PostgreSQL.
func TestMatchCommand_InitDB_Integration(t *testing.T) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test: DATABASE_URL not set")
	}
	jobID := uuid.NewString()

	_, _, err := executeCommand(t, "match", "--job-id", jobID, "--db-url", dbURL, "--init-db")
	require.Error(t, err)
	if strings.Contains(err.Error(), "failed to connect") {
		t.Skipf("Skipping integration test: %v", err)
	}
	assert.Contains(t, err.Error(), "job not found: "+jobID)
}
