package exporter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"corpusprep/internal/types"
)

// NumberLineMessage is printed for every line removed by the numeric filter.
const NumberLineMessage = "Number line encountered"

// FormatAverage renders a float with 12 significant digits and always shows
// it is a real number: 2.5, 2.0, 0.333333333333, 1e-05.
func FormatAverage(f float64) string {
	s := strconv.FormatFloat(f, 'g', 12, 64)
	if !strings.ContainsAny(s, ".eNI") {
		s += ".0"
	}
	return s
}

// ExportStatsText writes the two line sentence report. When nonBlank is set
// the average is taken over non-blank lines only.
func ExportStatsText(stats types.SentenceStats, nonBlank bool, w io.Writer) error {
	average := stats.Average()
	if nonBlank {
		average = stats.AverageNonBlank()
	}

	if _, err := fmt.Fprintf(w, "Average sentence length : %s\n", FormatAverage(average)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total number of sentences : %d\n", stats.Lines)
	return err
}

// ExportNumberLine reports one dropped line.
func ExportNumberLine(w io.Writer) error {
	_, err := fmt.Fprintln(w, NumberLineMessage)
	return err
}
