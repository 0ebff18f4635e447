// Package main is the tablestorm command: it realigns a table read from a
// file or stdin and optionally applies a separator edit first.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/tablestorm/internal/config"
	"github.com/dshills/tablestorm/internal/syntax"
	"github.com/dshills/tablestorm/internal/syntax/markdown"
	"github.com/dshills/tablestorm/internal/syntax/pandoc"
	"github.com/dshills/tablestorm/internal/table"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	syntaxName  string
	configPath  string
	hline       int
	doubleHline int
	hlineMove   int
	showVersion bool
	file        string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("tablestorm %s (%s)\n", version, commit)
		return 0
	}

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	syn, err := newSyntax(opts.syntaxName, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	lines, err := readLines(opts.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	tbl := syn.Parse(lines)

	if res, applied, err := applyEdit(syn, tbl, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	} else if applied {
		fmt.Fprintf(os.Stderr, "%s, cursor %s\n", res.Message, res.Pos)
	}

	for _, line := range tbl.RenderLines() {
		fmt.Println(line)
	}
	return 0
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.syntaxName, "syntax", "multimarkdown",
		"table syntax: multimarkdown or pandoc")
	flag.StringVar(&opts.configPath, "config", "", "TOML options file")
	flag.IntVar(&opts.hline, "hline", -1,
		"insert a single separator after this row")
	flag.IntVar(&opts.doubleHline, "double-hline", -1,
		"insert a double separator after this row (pandoc)")
	flag.IntVar(&opts.hlineMove, "hline-move", -1,
		"insert a separator after this row and add a data row below it")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.Parse()

	opts.file = flag.Arg(0)
	return opts
}

// newSyntax builds the dialect named on the command line.
func newSyntax(name string, cfg *config.Options) (*syntax.Syntax, error) {
	switch strings.ToLower(name) {
	case "multimarkdown", "markdown":
		return markdown.New(cfg), nil
	case "pandoc", "grid":
		return pandoc.New(cfg), nil
	default:
		return nil, fmt.Errorf("unknown syntax %q", name)
	}
}

// applyEdit runs at most one requested separator edit against the table.
func applyEdit(syn *syntax.Syntax, tbl *table.Table, opts options) (syntax.Result, bool, error) {
	switch {
	case opts.hline >= 0:
		res, err := syn.Driver.InsertSingleHline(tbl, table.Pos{Row: opts.hline})
		return res, err == nil, err
	case opts.doubleHline >= 0:
		d, ok := syn.Driver.(interface {
			InsertDoubleHline(*table.Table, table.Pos) (syntax.Result, error)
		})
		if !ok {
			return syntax.Result{}, false,
				fmt.Errorf("syntax %s has no double separator", syn.Name)
		}
		res, err := d.InsertDoubleHline(tbl, table.Pos{Row: opts.doubleHline})
		return res, err == nil, err
	case opts.hlineMove >= 0:
		res, err := syn.Driver.InsertHlineAndMove(tbl, table.Pos{Row: opts.hlineMove})
		return res, err == nil, err
	default:
		return syntax.Result{}, false, nil
	}
}

// readLines reads the table region from a file, or stdin when path is "".
func readLines(path string) ([]string, error) {
	var in *os.File
	if path == "" || path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
