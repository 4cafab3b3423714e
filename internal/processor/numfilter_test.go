package processor

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"corpusprep/internal/types"
)

func TestIsNumericLine(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"42.\n", true},
		{"17 .\n", true},
		{"3 )  \n", true},
		{"12\r\n", true},
		{"7.\r\n", true},
		{"42\n", true},
		{"123456 -\n", true},
		{"12é\n", true},
		{"4\n", false},
		{"99.", false},
		{"42.\r", false},
		{"The cat sat.\n", false},
		{"12 cats\n", false},
		{" 12.\n", false},
		{"12..\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.line), func(t *testing.T) {
			if got := IsNumericLine(tt.line); got != tt.expected {
				t.Fatalf("IsNumericLine(%q): expected %v, got %v", tt.line, tt.expected, got)
			}
		})
	}
}

func TestFilterNumericLines_Scenario(t *testing.T) {
	var out bytes.Buffer
	var dropped []string

	report, err := FilterNumericLines(
		[]string{"42.\n", "The cat sat.\n", "17 .\n"},
		&out,
		func(line string) { dropped = append(dropped, line) },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.String() != "The cat sat.\n" {
		t.Fatalf("expected %q, got %q", "The cat sat.\n", out.String())
	}
	if len(dropped) != 2 {
		t.Fatalf("expected 2 dropped lines, got %d", len(dropped))
	}

	expected := types.FilterReport{Read: 3, Written: 1, Dropped: 2}
	if report != expected {
		t.Fatalf("expected %+v, got %+v", expected, report)
	}
}

func TestFilterNumericLines_UnterminatedLastLine(t *testing.T) {
	var out bytes.Buffer

	_, err := FilterNumericLines([]string{"Text\n", "99."}, &out, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.String() != "Text\n99." {
		t.Fatalf("expected %q, got %q", "Text\n99.", out.String())
	}
}

func TestFilterLines_CustomMatcher(t *testing.T) {
	var out bytes.Buffer
	matcher := types.LineMatcherFunc(func(line string) bool {
		return strings.HasPrefix(line, "#")
	})

	report, err := FilterLines([]string{"# header\n", "body\n"}, matcher, &out, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.String() != "body\n" || report.Dropped != 1 {
		t.Fatalf("unexpected result %q, %+v", out.String(), report)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestFilterLines_WriteError(t *testing.T) {
	_, err := FilterNumericLines([]string{"text\n"}, failingWriter{}, nil)
	if !errors.Is(err, types.ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
}

func TestFilterFile_Idempotent(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "news.txt")
	output := filepath.Join(dir, "news.clean.txt")

	content := "1\n\nFirst paragraph.\r\n2.\r\nSecond 3 paragraph.\n17 .\n99."
	if err := os.WriteFile(input, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	// Output must be truncated, not appended to.
	if err := os.WriteFile(output, []byte(strings.Repeat("stale\n", 20)), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	expected := "1\n\nFirst paragraph.\r\nSecond 3 paragraph.\n99."

	for run := 0; run < 2; run++ {
		report, err := FilterFile(input, output, "utf8", nil)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", run, err)
		}
		if report.Dropped != 2 {
			t.Fatalf("run %d: expected 2 dropped lines, got %d", run, report.Dropped)
		}

		got, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("run %d: read output: %v", run, err)
		}
		if string(got) != expected {
			t.Fatalf("run %d: expected %q, got %q", run, expected, got)
		}
	}
}

func TestFilterFile_KeepsEncoding(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "cs.txt")
	output := filepath.Join(dir, "cs.clean.txt")

	// "Kůň\n12.\n" in windows-1250
	content := []byte{'K', 0xF9, 0xF2, '\n', '1', '2', '.', '\n'}
	if err := os.WriteFile(input, content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := FilterFile(input, output, "windows-1250", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(got, content[:4]) {
		t.Fatalf("expected %v, got %v", content[:4], got)
	}
}

func TestFilterFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := FilterFile(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt"), "utf8", nil)
	if !errors.Is(err, types.ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess for missing input, got %v", err)
	}

	input := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(input, []byte("a\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err = FilterFile(input, filepath.Join(dir, "no", "such", "dir", "out.txt"), "utf8", nil)
	if !errors.Is(err, types.ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess for unwritable output, got %v", err)
	}
}

func TestFilterFile_UndefinedBytesCopied(t *testing.T) {
	content := "keep \x81\x83\x88\x90\x98 this\n3.\nlast line\n"
	expected := "keep \x81\x83\x88\x90\x98 this\nlast line\n"

	for _, encoding := range []string{"windows-1250", "windows-1252", "iso-8859-2"} {
		t.Run(encoding, func(t *testing.T) {
			dir := t.TempDir()
			input := filepath.Join(dir, "in.txt")
			output := filepath.Join(dir, "out.txt")
			if err := os.WriteFile(input, []byte(content), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			report, err := FilterFile(input, output, encoding, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if report.Dropped != 1 || report.Written != 2 {
				t.Fatalf("unexpected report %+v", report)
			}

			got, err := os.ReadFile(output)
			if err != nil {
				t.Fatalf("read output: %v", err)
			}
			if string(got) != expected {
				t.Fatalf("expected %q, got %q", expected, got)
			}
		})
	}
}

func TestFilterFile_MatchesDecodedText(t *testing.T) {
	// UTF-8 "12é\n" is digits plus one character, in ISO-8859-2 the same
	// bytes read as "12ĂŠ\n", two characters.
	content := "12\xC3\xA9\n"

	tests := []struct {
		encoding string
		expected string
	}{
		{"utf8", ""},
		{"iso-8859-2", content},
	}

	for _, tt := range tests {
		t.Run(tt.encoding, func(t *testing.T) {
			dir := t.TempDir()
			input := filepath.Join(dir, "in.txt")
			output := filepath.Join(dir, "out.txt")
			if err := os.WriteFile(input, []byte(content), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			if _, err := FilterFile(input, output, tt.encoding, nil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, err := os.ReadFile(output)
			if err != nil {
				t.Fatalf("read output: %v", err)
			}
			if string(got) != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFilterFile_UnknownEncodingLeavesOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(input, []byte("a\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.WriteFile(output, []byte("previous\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := FilterFile(input, output, "klingon", nil)
	if !errors.Is(err, types.ErrArgument) {
		t.Fatalf("expected ErrArgument, got %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "previous\n" {
		t.Fatalf("expected output untouched, got %q", got)
	}
}
