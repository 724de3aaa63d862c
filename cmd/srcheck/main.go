// Command srcheck verifies translated message bundles against the resource
// keys raised by xgx-throw.
//
//	srcheck [-q] file.yaml...
//
// It reports keys the bundle lacks, keys no resource uses, and texts whose
// explicit argument indexes differ from the English table. The exit status
// is 1 when any finding is reported and 2 on usage or parse errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/xgx-io/xgx-throw/sr"
)

const (
	exitOK       = 0
	exitFindings = 1
	exitUsage    = 2
)

func main() {
	color := os.Getenv("NO_COLOR") == "" &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, color))
}

func run(args []string, stdout, stderr io.Writer, color bool) int {
	fs := flag.NewFlagSet("srcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quiet := fs.Bool("q", false, "print only the number of findings per file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: srcheck [-q] file.yaml...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	english := sr.DefaultBundle().Messages

	status := exitOK
	for _, path := range fs.Args() {
		b, err := readBundle(path)
		if err != nil {
			logger.Error("srcheck: read bundle", slog.String("file", path), slog.Any("err", err))
			status = exitUsage
			continue
		}

		found := checkBundle(b, english)
		logger.Debug("srcheck: checked", slog.String("file", path), slog.String("language", b.Language.String()))
		if len(found) > 0 && status == exitOK {
			status = exitFindings
		}

		if *quiet {
			fmt.Fprintf(stdout, "%s: %d\n", path, len(found))
			continue
		}
		for _, f := range found {
			fmt.Fprintf(stdout, "%s: %s\n", path, paint(f, color))
		}
	}
	return status
}

func readBundle(path string) (sr.Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return sr.Bundle{}, err
	}
	defer f.Close()
	return sr.ParseBundle(f)
}

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
)

func paint(f finding, color bool) string {
	if !color {
		return f.String()
	}
	c := ansiYellow
	if f.kind == findingMissing {
		c = ansiRed
	}
	return c + f.String() + ansiReset
}
