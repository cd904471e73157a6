package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// errHelpRequested reports that -h/--help printed usage; runMain exits 0.
var errHelpRequested = errors.New("help requested")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	logJSON bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	marginCm    float64
}

// reportFlags holds all flags for the report command.
type reportFlags struct {
	common commonFlags
	output string
	date   string
	page   pageFlags
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	page       pageFlags
	tableStyle string
	codeStyle  string
	cover      bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log timing and worker details")
	fs.BoolVar(&f.logJSON, "log-json", false, "log as JSON lines on stderr")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.marginCm, "margin-cm", 0, "uniform page margin in centimeters")
}

// newFlagSet returns a FlagSet that reports errors instead of exiting and
// prints usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parse wraps pflag errors so they map to the usage exit code.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errHelpRequested
		}
		return &usageError{err: err}
	}
	return nil
}

// reportFlagSet registers the report command flags into f.
func reportFlagSet(f *reportFlags, w io.Writer) *flag.FlagSet {
	fs := newFlagSet("report", w, printReportUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default "+defaultReportFile+")")
	fs.StringVar(&f.date, "date", "", `date line: literal, "auto" or "auto:FORMAT"`)
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	return fs
}

// convertFlagSet registers the convert command flags into f.
func convertFlagSet(f *convertFlags, w io.Writer) *flag.FlagSet {
	fs := newFlagSet("convert", w, printConvertUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.tableStyle, "table-style", "", "table style: LightGridAccent1, TableGrid")
	fs.StringVar(&f.codeStyle, "code-style", "", "chroma style for fenced code")
	fs.BoolVar(&f.cover, "cover", false, "emit a cover page from front matter")
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	return fs
}

// inspectFlagSet registers the inspect command flags into f.
func inspectFlagSet(f *commonFlags, w io.Writer) *flag.FlagSet {
	fs := newFlagSet("inspect", w, printInspectUsage)
	addCommonFlags(fs, f)
	return fs
}

// parseReportFlags parses report command flags.
func parseReportFlags(args []string, stderr io.Writer) (*reportFlags, []string, error) {
	f := &reportFlags{}
	fs := reportFlagSet(f, stderr)
	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := convertFlagSet(f, stderr)
	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseInspectFlags parses inspect command flags.
func parseInspectFlags(args []string, stderr io.Writer) (*commonFlags, []string, error) {
	f := &commonFlags{}
	fs := inspectFlagSet(f, stderr)
	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
