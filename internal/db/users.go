package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-matcher/internal/users"
)

// User is the part of a user profile the matcher reads.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// GetUser retrieves a user by ID. It returns nil, nil when no such user
// exists.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, COALESCE(email, ''), created_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// UserDirectory adapts DB to users.Directory.
type UserDirectory struct {
	db *DB
}

// NewUserDirectory returns a users.Directory backed by the users table.
func NewUserDirectory(db *DB) *UserDirectory {
	return &UserDirectory{db: db}
}

// DisplayName implements users.Directory. Malformed IDs and missing users
// both report users.ErrUserNotFound.
func (d *UserDirectory) DisplayName(ctx context.Context, userID string) (string, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", fmt.Errorf("%w: invalid id %q", users.ErrUserNotFound, userID)
	}
	u, err := d.db.GetUser(ctx, id)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", fmt.Errorf("%w: %s", users.ErrUserNotFound, userID)
	}
	return u.Name, nil
}
