// Package habitfile persists the habit collection to a flat JSON file.
package habitfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/huangsam/habitctl/schema"
)

// Load reads the habit collection from path. A missing or empty file is a
// fresh start, not an error. A file that exists but does not parse wraps
// schema.ErrPersistence.
func Load(path string) ([]*schema.Habit, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %v: %w", path, err, schema.ErrPersistence)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var habits []*schema.Habit
	if err := json.Unmarshal(data, &habits); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %v: %w", path, err, schema.ErrPersistence)
	}
	return habits, nil
}

// Save serializes the full habit collection to path, overwriting whatever
// was there. The write goes to a temp file in the same directory followed
// by a rename, so a crash mid-write never leaves a truncated data file.
func Save(path string, habits []*schema.Habit) error {
	if habits == nil {
		habits = []*schema.Habit{}
	}
	data, err := json.MarshalIndent(habits, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize habits: %v: %w", err, schema.ErrPersistence)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".habits-*.json")
	if err != nil {
		return fmt.Errorf("cannot create temp file in %s: %v: %w", dir, err, schema.ErrPersistence)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("cannot write %s: %v: %w", tmpName, err, schema.ErrPersistence)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("cannot close %s: %v: %w", tmpName, err, schema.ErrPersistence)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("cannot replace %s: %v: %w", path, err, schema.ErrPersistence)
	}
	return nil
}
