package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"corpusprep/internal/charset"
	"corpusprep/internal/config"
	"corpusprep/internal/exporter"
	"corpusprep/internal/importer/lines"
	"corpusprep/internal/logging"
	"corpusprep/internal/processor"
	"corpusprep/internal/types"
)

const appName = "corpusprep"

const filterUsage = "Usage : python preprocess-euro.py <ipfilename> <opfilename>"

type Globals struct {
	Encoding string          `short:"e" default:"utf8" help:"Input file encoding (${encodings})."`
	LogLevel string          `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Diagnostics level on stderr (${enum})."`
	Config   kong.ConfigFlag `placeholder:"FILE" help:"Load default flag values from a TOML file."`
}

type CLI struct {
	Globals

	Stats  StatsCmd  `cmd:"" help:"Display average sentence length and sentence count."`
	Filter FilterCmd `cmd:"" help:"Copy a text file without its page and line number lines."`
}

// streams are bound to command Run methods.
type streams struct {
	stdin  io.Reader
	stdout io.Writer
}

type StatsCmd struct {
	File     string `arg:"" optional:"" type:"path" help:"Corpus file, one sentence per line. Reads stdin when omitted and piped."`
	NonBlank bool   `name:"non-blank" help:"Divide by the number of non-blank lines instead of all lines."`
	JSON     bool   `name:"json" short:"j" xor:"format" help:"Display statistics in JSON format."`
	Table    bool   `short:"t" xor:"format" help:"Display statistics in table format."`
}

func (c *StatsCmd) Run(g *Globals, s *streams) error {
	var input []string
	var err error

	if c.File == "" {
		if !isPiped(s.stdin) {
			return fmt.Errorf("%w: no corpus file given and stdin is a terminal", types.ErrArgument)
		}

		var reader io.Reader
		reader, err = charset.NewReader(s.stdin, g.Encoding)
		if err != nil {
			return err
		}
		input, err = lines.Read(reader)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		input, err = lines.ReadFile(c.File, g.Encoding)
		if err != nil {
			return err
		}
	}

	stats := processor.CountSentences(input)
	slog.Debug("sentence statistics", "file", c.File, "lines", stats.Lines,
		"non_blank", stats.NonBlankLines, "tokens", stats.Tokens)

	switch {
	case c.JSON:
		return exporter.ExportStatsJSON(stats, s.stdout)
	case c.Table:
		return exporter.ExportStatsTable(stats, s.stdout)
	default:
		return exporter.ExportStatsText(stats, c.NonBlank, s.stdout)
	}
}

type FilterCmd struct {
	Input  string `arg:"" optional:"" name:"ipfilename" type:"path" help:"Extracted text file."`
	Output string `arg:"" optional:"" name:"opfilename" type:"path" help:"Output file, created or truncated."`
	Quiet  bool   `short:"q" help:"Do not report removed lines."`
}

func (c *FilterCmd) Run(g *Globals, s *streams) error {
	if c.Input == "" || c.Output == "" {
		fmt.Fprintln(s.stdout, filterUsage)
		return fmt.Errorf("%w: filter needs an input and an output file", types.ErrArgument)
	}

	onDrop := func(string) {
		if !c.Quiet {
			_ = exporter.ExportNumberLine(s.stdout)
		}
	}

	report, err := processor.FilterFile(c.Input, c.Output, g.Encoding, onDrop)
	if err != nil {
		return err
	}

	slog.Info("numeric lines removed", "input", c.Input, "output", c.Output, "dropped", report.Dropped)
	return nil
}

// isPiped reports whether r carries data from a pipe or a file rather than
// an interactive terminal.
func isPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return true
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func newParser(cli *CLI, stdout, stderr io.Writer) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name(appName),
		kong.Description("Preprocessing tools for word alignment corpora."),
		kong.Writers(stdout, stderr),
		kong.Configuration(config.TOML, config.DefaultPath()),
		kong.Vars{"encodings": strings.Join(charset.Names(), ", ")},
	)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cli CLI

	parser, err := newParser(&cli, stdout, stderr)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := logging.Setup(cli.LogLevel, stderr); err != nil {
		return err
	}

	return ctx.Run(&cli.Globals, &streams{stdin: stdin, stdout: stdout})
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
