package history

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile stores r at path. The record is written to a temporary file in
// the same directory and renamed into place, so readers see either the old
// file or the complete new one.
func WriteFile(path string, r Record) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write match record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync match record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close match record: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename match record: %w", err)
	}
	committed = true
	return nil
}

// ReadFile loads and validates a record
func ReadFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read match record: %w", err)
	}
	return Decode(data)
}
