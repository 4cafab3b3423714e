package exporter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"corpusprep/internal/types"
)

func ExportStatsTable(stats types.SentenceStats, w io.Writer) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Sentences", strconv.Itoa(stats.Lines)},
		{"Non-blank sentences", strconv.Itoa(stats.NonBlankLines)},
		{"Tokens", strconv.Itoa(stats.Tokens)},
		{"Average length", FormatAverage(stats.Average())},
		{"Average length (non-blank)", FormatAverage(stats.AverageNonBlank())},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}
