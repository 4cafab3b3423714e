package types

// SentenceStats holds the counters gathered over a corpus file.
type SentenceStats struct {
	// Lines is the number of lines read, blank lines included.
	Lines int `json:"lines"`
	// NonBlankLines counts the lines that went through tokenization.
	NonBlankLines int `json:"non_blank_lines"`
	// Tokens is the total number of whitespace separated tokens.
	Tokens int `json:"tokens"`
}

// Average returns the token count divided by the total line count.
// Blank lines are part of the denominator. An empty input yields 0.
func (s SentenceStats) Average() float64 {
	if s.Lines == 0 {
		return 0
	}
	return float64(s.Tokens) / float64(s.Lines)
}

// AverageNonBlank returns the token count divided by the number of
// non-blank lines. An input without any non-blank line yields 0.
func (s SentenceStats) AverageNonBlank() float64 {
	if s.NonBlankLines == 0 {
		return 0
	}
	return float64(s.Tokens) / float64(s.NonBlankLines)
}

// FilterReport summarises a filtering run.
type FilterReport struct {
	Read    int `json:"read"`
	Written int `json:"written"`
	Dropped int `json:"dropped"`
}
