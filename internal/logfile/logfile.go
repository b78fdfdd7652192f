// Package logfile locates and loads the error log.
package logfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vburojevic/errlens/internal/domain"
)

// DefaultName is the file name of the error log inside the log directory
const DefaultName = "error.log"

// DefaultDir is the log directory, relative to the working directory
const DefaultDir = "logs"

// NotFoundError is returned when the log source is missing or unreadable
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return "No error.log found."
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Source describes where the log lives
type Source struct {
	// File overrides the resolved path when set
	File string
	// Dir holds the log directory; relative paths resolve against WorkDir
	Dir string
	// WorkDir is the base for relative paths, defaults to the process cwd
	WorkDir string
}

// Locate resolves the log path for src
func Locate(src Source) (string, error) {
	base := src.WorkDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		base = wd
	}

	if src.File != "" {
		return absolute(base, src.File), nil
	}

	dir := src.Dir
	if dir == "" {
		dir = DefaultDir
	}
	return filepath.Join(absolute(base, dir), DefaultName), nil
}

func absolute(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// Load reads the whole log at path and splits it into lines. The read either
// succeeds fully or fails with *NotFoundError.
func Load(path string) ([]domain.LogLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	return Split(data)
}

// Split breaks data into lines. Trailing CR before LF is dropped.
func Split(data []byte) ([]domain.LogLine, error) {
	var lines []domain.LogLine
	scanner := bufio.NewScanner(bytes.NewReader(data))
	// Size the buffer to the input so a single long stack line never overflows.
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)

	for scanner.Scan() {
		lines = append(lines, domain.LogLine{Raw: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading log: %w", err)
	}
	return lines, nil
}

// IsNotFound reports whether err means the log source is missing
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
