package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ListResumeRecords returns every stored resume in the shape the scorer
// reads. NULL columns come back as empty strings.
func (db *DB) ListResumeRecords(ctx context.Context) ([]types.ResumeRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id::text, COALESCE(user_id::text, ''),
		        COALESCE(skills, ''), COALESCE(experience, ''), COALESCE(education, '')
		 FROM resumes ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var records []types.ResumeRecord
	for rows.Next() {
		var r types.ResumeRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.Skills, &r.Experience, &r.Education); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return records, nil
}

// GetJobRecord retrieves a job by ID. It returns nil, nil when no such job
// exists.
func (db *DB) GetJobRecord(ctx context.Context, id uuid.UUID) (*types.JobRecord, error) {
	var (
		rec        types.JobRecord
		experience string
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id::text, COALESCE(required_skills, ''),
		        COALESCE(required_experience::text, ''), COALESCE(description, '')
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.RequiredSkills, &experience, &rec.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	rec.RequiredExperience = types.ExperienceValue(experience)
	return &rec, nil
}
