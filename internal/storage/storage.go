// Package storage writes the generated calendar files. Each file goes
// through a temp file and rename in the same directory, so a run that dies
// mid-write never leaves a truncated calendar behind.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer persists calendar documents into an output directory
type Writer struct {
	outDir string
}

// NewWriter creates a Writer, expanding ~ and creating the directory if needed
func NewWriter(outDir string) (*Writer, error) {
	if strings.HasPrefix(outDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		outDir = filepath.Join(home, outDir[2:])
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{outDir: outDir}, nil
}

// Path returns the full path a calendar file will be written to
func (w *Writer) Path(filename string) string {
	return filepath.Join(w.outDir, filename)
}

// WriteCalendar atomically replaces the named calendar file with content
func (w *Writer) WriteCalendar(filename, content string) error {
	target := w.Path(filename)

	tmp, err := os.CreateTemp(w.outDir, filename+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing calendar: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", filename, err)
	}
	return nil
}
