// Package lines loads corpus files as ordered line sequences.
//
// Every line keeps its terminator ("\n" or "\r\n"), only the last line of a
// file may have none. An empty input has zero lines.
package lines

import (
	"fmt"
	"io"
	"os"
	"strings"

	"corpusprep/internal/charset"
	"corpusprep/internal/types"
)

// Split cuts s after every "\n".
func Split(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Read loads every line from r.
func Read(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrFileAccess, err)
	}
	return Split(string(data)), nil
}

// ReadFile loads every line of the file at path, decoded from the named encoding.
func ReadFile(path, encoding string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrFileAccess, err)
	}
	defer file.Close()

	reader, err := charset.NewReader(file, encoding)
	if err != nil {
		return nil, err
	}

	lines, err := Read(reader)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
