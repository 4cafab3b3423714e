package processor

import (
	"strings"

	"corpusprep/internal/types"
)

// Punctuations are removed from each line, in this order, before tokenization.
// "//" comes before "/" so that a double slash is removed in one pass.
var Punctuations = []string{",", "//", "/", "?", ".", "!"}

// IsBlankLine reports whether line holds nothing but spaces and line terminators.
// Tabs are not considered blank.
func IsBlankLine(line string) bool {
	return strings.Trim(line, " \r\n") == ""
}

// StripPunctuation removes every occurrence of each punctuation mark from line.
func StripPunctuation(line string) string {
	for _, p := range Punctuations {
		line = strings.ReplaceAll(line, p, "")
	}
	return line
}

// CountTokens returns the number of whitespace separated tokens left in line
// once punctuation is removed.
func CountTokens(line string) int {
	return len(strings.Fields(StripPunctuation(line)))
}

// CountSentences gathers token statistics over lines, one sentence per line.
// Blank lines add nothing to the token total but still count as lines.
func CountSentences(lines []string) types.SentenceStats {
	stats := types.SentenceStats{Lines: len(lines)}

	for _, line := range lines {
		if IsBlankLine(line) {
			continue
		}

		stats.NonBlankLines++
		stats.Tokens += CountTokens(line)
	}

	return stats
}
