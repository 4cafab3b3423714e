package processor

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"

	"corpusprep/internal/charset"
	"corpusprep/internal/importer/lines"
	"corpusprep/internal/types"
)

// numericLine matches page or line numbers left over from text extraction:
// digits, an optional single trailing character such as "." surrounded by
// optional spaces, then the newline. Whitespace is the ASCII set.
var numericLine = regexp.MustCompile(`^[0-9]+[ \t\n\r\f\v]*.[ \t\n\r\f\v]*\n$`)

// NumericLineMatcher matches lines made only of a number and a trailing mark.
var NumericLineMatcher types.LineMatcher = types.LineMatcherFunc(IsNumericLine)

// IsNumericLine reports whether line is a page/line number artifact.
// A line without a trailing newline never matches.
func IsNumericLine(line string) bool {
	return numericLine.MatchString(line)
}

// FilterLines writes to w every line not matched by matcher, unchanged and in
// order. onDrop, when not nil, is called for every discarded line.
func FilterLines(input []string, matcher types.LineMatcher, w io.Writer, onDrop func(line string)) (types.FilterReport, error) {
	report := types.FilterReport{}

	for _, line := range input {
		report.Read++

		if matcher.Match(line) {
			report.Dropped++
			slog.Debug("dropping line", "line", report.Read, "text", line)
			if onDrop != nil {
				onDrop(line)
			}
			continue
		}

		if _, err := io.WriteString(w, line); err != nil {
			return report, fmt.Errorf("%w: %w", types.ErrFileAccess, err)
		}
		report.Written++
	}

	return report, nil
}

// FilterNumericLines removes numeric lines from input, see IsNumericLine.
func FilterNumericLines(input []string, w io.Writer, onDrop func(line string)) (types.FilterReport, error) {
	return FilterLines(input, NumericLineMatcher, w, onDrop)
}

// DecodingMatcher applies m to each line once decoded from the named
// encoding. Lines themselves are left as raw bytes.
func DecodingMatcher(m types.LineMatcher, encoding string) (types.LineMatcher, error) {
	decode, err := charset.StringDecoder(encoding)
	if err != nil {
		return nil, err
	}
	return types.LineMatcherFunc(func(line string) bool {
		return m.Match(decode(line))
	}), nil
}

// FilterFile reads inputPath, and writes its lines minus the numeric ones to
// outputPath. The output file is created or truncated. Kept lines are copied
// byte for byte, the encoding is only used to decode lines for matching.
func FilterFile(inputPath, outputPath, encoding string, onDrop func(line string)) (types.FilterReport, error) {
	matcher, err := DecodingMatcher(NumericLineMatcher, encoding)
	if err != nil {
		return types.FilterReport{}, err
	}

	// Supported encodings are single byte with an ASCII "\n", so raw lines
	// split at the same places as decoded ones.
	input, err := lines.ReadFile(inputPath, charset.UTF8)
	if err != nil {
		return types.FilterReport{}, err
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return types.FilterReport{}, fmt.Errorf("%w: %w", types.ErrFileAccess, err)
	}
	defer file.Close()

	buffered := bufio.NewWriter(file)

	report, err := FilterLines(input, matcher, buffered, onDrop)
	if err != nil {
		return report, fmt.Errorf("writing %s: %w", outputPath, err)
	}

	if err := buffered.Flush(); err != nil {
		return report, fmt.Errorf("%w: writing %s: %w", types.ErrFileAccess, outputPath, err)
	}
	if err := file.Close(); err != nil {
		return report, fmt.Errorf("%w: closing %s: %w", types.ErrFileAccess, outputPath, err)
	}

	slog.Debug("filter done", "input", inputPath, "output", outputPath,
		"read", report.Read, "written", report.Written, "dropped", report.Dropped)

	return report, nil
}
