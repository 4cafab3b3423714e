// Package corpusprep provides a public API for preprocessing text corpora
// before word alignment.
//
// This package provides functions to:
//   - Compute sentence length statistics (one sentence per line)
//   - Remove page and line number artifacts from extracted text
//   - Convert between UTF-8 and legacy encodings (ISO-8859-2, Windows-1250, ...)
//
// Example usage:
//
//	import "corpusprep/pkg/corpusprep"
//
//	stats, _ := corpusprep.CountSentencesFile("europarl.en", "utf8")
//	fmt.Println(stats.Average(), stats.Lines)
//
//	report, _ := corpusprep.FilterFile("news.cs", "news.clean.cs", "iso-8859-2", nil)
package corpusprep

import (
	"io"

	"corpusprep/internal/charset"
	"corpusprep/internal/exporter"
	"corpusprep/internal/importer/lines"
	"corpusprep/internal/processor"
	"corpusprep/internal/types"
)

// Type aliases for public API
type (
	// SentenceStats contains token and line counters for a corpus
	SentenceStats = types.SentenceStats

	// FilterReport contains line counters of a filtering run
	FilterReport = types.FilterReport

	// LineMatcher selects lines to remove
	LineMatcher = types.LineMatcher

	// LineMatcherFunc adapts a function to LineMatcher
	LineMatcherFunc = types.LineMatcherFunc
)

// Error kinds, usable with errors.Is
var (
	ErrArgument   = types.ErrArgument
	ErrFileAccess = types.ErrFileAccess
)

// Punctuations lists the marks removed before counting tokens.
var Punctuations = processor.Punctuations

// SplitLines cuts s into lines, keeping line terminators.
func SplitLines(s string) []string {
	return lines.Split(s)
}

// ReadLines loads the file at path, decoded from encoding, as lines.
func ReadLines(path, encoding string) ([]string, error) {
	return lines.ReadFile(path, encoding)
}

// CountSentences computes statistics over lines.
func CountSentences(input []string) SentenceStats {
	return processor.CountSentences(input)
}

// CountSentencesFile computes statistics over the file at path.
func CountSentencesFile(path, encoding string) (SentenceStats, error) {
	input, err := lines.ReadFile(path, encoding)
	if err != nil {
		return SentenceStats{}, err
	}
	return processor.CountSentences(input), nil
}

// IsNumericLine reports whether line is a page or line number artifact.
func IsNumericLine(line string) bool {
	return processor.IsNumericLine(line)
}

// FilterNumericLines writes input minus numeric lines to w.
// onDrop may be nil.
func FilterNumericLines(input []string, w io.Writer, onDrop func(line string)) (FilterReport, error) {
	return processor.FilterNumericLines(input, w, onDrop)
}

// FilterLines writes input minus the lines selected by matcher to w.
func FilterLines(input []string, matcher LineMatcher, w io.Writer, onDrop func(line string)) (FilterReport, error) {
	return processor.FilterLines(input, matcher, w, onDrop)
}

// FilterFile copies inputPath to outputPath without numeric lines.
// The output is truncated first and keeps the input encoding.
func FilterFile(inputPath, outputPath, encoding string, onDrop func(line string)) (FilterReport, error) {
	return processor.FilterFile(inputPath, outputPath, encoding, onDrop)
}

// FormatStats writes the plain text sentence report.
func FormatStats(stats SentenceStats, w io.Writer) error {
	return exporter.ExportStatsText(stats, false, w)
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings are listed by Encodings.
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	return charset.ToUTF8(data, sourceEncoding)
}

// ConvertToEncoding converts UTF-8 data to the target encoding.
func ConvertToEncoding(data []byte, targetEncoding string) ([]byte, error) {
	return charset.FromUTF8(data, targetEncoding)
}

// Encodings returns the supported encoding names.
func Encodings() []string {
	return charset.Names()
}
