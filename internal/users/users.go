// Package users resolves the display names of resume owners.
package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// UnknownName is shown when a resume owner cannot be resolved.
const UnknownName = "Unknown"

// ErrUserNotFound is returned by a Directory that has no user with the
// requested ID.
var ErrUserNotFound = errors.New("user not found")

// Directory looks up a user's display name. Implementations must be safe
// for concurrent use and must not modify their backing store.
type Directory interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

// StaticDirectory is an in-memory Directory keyed by user ID.
type StaticDirectory map[string]string

// DisplayName implements Directory.
func (d StaticDirectory) DisplayName(_ context.Context, userID string) (string, error) {
	name, ok := d[userID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return name, nil
}

// entry is one user in a users file.
type entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LoadStaticDirectory reads a JSON array of {"id", "name"} objects.
func LoadStaticDirectory(path string) (StaticDirectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse users file: %w", err)
	}

	dir := make(StaticDirectory, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("users file entry %d has no id", i)
		}
		dir[e.ID] = e.Name
	}
	return dir, nil
}

// Resolve returns the display name for userID, or UnknownName when dir is
// nil or the lookup fails for any reason.
func Resolve(ctx context.Context, dir Directory, userID string) (string, error) {
	if dir == nil {
		return UnknownName, errors.New("no user directory configured")
	}
	name, err := dir.DisplayName(ctx, userID)
	if err != nil {
		return UnknownName, err
	}
	if name == "" {
		return UnknownName, nil
	}
	return name, nil
}
