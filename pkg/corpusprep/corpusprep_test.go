package corpusprep

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCountSentencesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte("Hello, world!\nFoo bar baz\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	stats, err := CountSentencesFile(path, "utf8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := FormatStats(stats, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Average sentence length : 2.5\nTotal number of sentences : 2\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestCountSentencesFile_Missing(t *testing.T) {
	_, err := CountSentencesFile(filepath.Join(t.TempDir(), "missing"), "utf8")
	if !errors.Is(err, ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
}

func TestFilterNumericLines_KeepsOrder(t *testing.T) {
	input := SplitLines("Title\n1.\nA\n2 .\nB\n3")
	var buf bytes.Buffer

	report, err := FilterNumericLines(input, &buf, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.String() != "Title\nA\nB\n3" {
		t.Fatalf("expected %q, got %q", "Title\nA\nB\n3", buf.String())
	}
	if report.Read != report.Written+report.Dropped {
		t.Fatalf("inconsistent report %+v", report)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	original := []byte("žluťoučký kůň\n")

	encoded, err := ConvertToEncoding(original, "windows-1250")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := ConvertToUTF8(encoded, "windows-1250")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(decoded, original) {
		t.Fatalf("expected %q, got %q", original, decoded)
	}
}
