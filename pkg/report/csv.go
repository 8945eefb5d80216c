package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"igunfollow/pkg/errors"
)

// Header is the single column of the CSV report
const Header = "username"

// WriteCSV writes usernames to path, one per row under a header row. An
// existing file is replaced. The rows go to a temporary file first and are
// renamed into place, so a failed run never leaves a truncated report.
func WriteCSV(path string, usernames []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Write(path, fmt.Errorf("failed to create output directory: %w", err))
		}
	}

	tempFile := path + ".tmp"
	out, err := os.Create(tempFile)
	if err != nil {
		return errors.Write(path, fmt.Errorf("failed to create temporary file: %w", err))
	}

	if err := writeRows(out, usernames); err != nil {
		out.Close()
		os.Remove(tempFile)
		return errors.Write(path, err)
	}

	if err := out.Sync(); err != nil {
		out.Close()
		os.Remove(tempFile)
		return errors.Write(path, fmt.Errorf("failed to sync file: %w", err))
	}

	if err := out.Close(); err != nil {
		os.Remove(tempFile)
		return errors.Write(path, fmt.Errorf("failed to close file: %w", err))
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return errors.Write(path, fmt.Errorf("failed to rename temporary file: %w", err))
	}

	return nil
}

func writeRows(f *os.File, usernames []string) error {
	w := csv.NewWriter(f)
	if err := w.Write([]string{Header}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, u := range usernames {
		if err := w.Write([]string{u}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush rows: %w", err)
	}
	return nil
}
