package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"corpusprep/internal/types"
)

type StatsJSONOutput struct {
	types.SentenceStats
	Average         float64 `json:"average"`
	AverageNonBlank float64 `json:"average_non_blank"`
}

func ExportStatsJSON(stats types.SentenceStats, w io.Writer) error {
	output := StatsJSONOutput{
		SentenceStats:   stats,
		Average:         stats.Average(),
		AverageNonBlank: stats.AverageNonBlank(),
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
