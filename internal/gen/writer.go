package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// StaleFileError reports a generated file whose content on disk differs from
// what the catalog renders. Line is the first differing line, counted from 1,
// or 0 when the file does not exist.
type StaleFileError struct {
	Path string
	Line int
}

func (e *StaleFileError) Error() string {
	if e.Line == 0 {
		return e.Path + " is missing; run go generate"
	}

	return fmt.Sprintf("%s is out of date at line %d; run go generate", e.Path, e.Line)
}

// WriteFiles writes the rendered files into outputDir, creating it when needed.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		path := filepath.Join(outputDir, file.Filename)

		if err := os.WriteFile(path, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// CheckFiles compares the rendered files with those in outputDir and returns
// a *StaleFileError for the first one that differs.
func CheckFiles(files []GeneratedFile, outputDir string) error {
	for _, file := range files {
		path := filepath.Join(outputDir, file.Filename)

		onDisk, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return &StaleFileError{Path: path}
		}

		if err != nil {
			return fmt.Errorf("reading file %s: %w", file.Filename, err)
		}

		if line := firstDiffLine(onDisk, file.Content); line > 0 {
			return &StaleFileError{Path: path, Line: line}
		}
	}

	return nil
}

// firstDiffLine returns the line where a and b first differ, or 0 when they
// are equal.
func firstDiffLine(a, b []byte) int {
	if bytes.Equal(a, b) {
		return 0
	}

	line := 1

	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return line
		}

		if a[i] == '\n' {
			line++
		}
	}

	return line
}
