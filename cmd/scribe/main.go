// Package main is the entry point for the scribe editor tools.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scribetui/scribe/internal/app"
	"github.com/scribetui/scribe/internal/config"
	"github.com/scribetui/scribe/internal/edit"
	"github.com/scribetui/scribe/internal/input/keyboard"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	logLevel   string

	find        string
	replace     string
	replaceWith string
	all         bool
	regex       bool
	caseSense   bool
	wholeWord   bool

	showKeys    bool
	showVersion bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, args := parseFlags()

	if opts.showVersion {
		fmt.Printf("scribe %s (%s)\n", version, commit)
		return 0
	}

	cfgPath := opts.configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: locating config: %v\n", err)
			return 1
		}
	}

	cfg, err := config.Open(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(opts.logLevel),
		Output: os.Stderr,
		Prefix: "scribe",
	})
	application := app.New(cfg, app.WithLogger(logger))

	if opts.showKeys {
		printBindings(os.Stdout, application.Keys())
		return 0
	}

	if opts.find != "" || opts.replace != "" {
		return runBatch(application, opts, args)
	}

	fmt.Fprintln(os.Stderr, "Error: nothing to do (use -find, -replace, -keys, or -version)")
	return 1
}

// runBatch performs a one-shot search or replace over the input file or
// stdin.
func runBatch(application *app.App, opts options, args []string) int {
	name := "<stdin>"
	var text string

	if len(args) > 0 {
		name = args[0]
		if err := application.OpenDocument(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		text = application.Text()
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading stdin: %v\n", err)
			return 1
		}
		text = string(data)
		application.SetText(text)
	}

	application.Engine().SetOptions(edit.Options{
		CaseSensitive: opts.caseSense,
		WholeWord:     opts.wholeWord,
		UseRegex:      opts.regex,
	})

	if opts.replace != "" {
		return runReplace(application, opts, name, len(args) > 0)
	}

	spans, err := application.Find(opts.find)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	for _, span := range spans {
		line, col := lineCol(text, span.Start)
		fmt.Printf("%s:%d:%d: %s\n", name, line, col, text[span.Start:span.End])
	}
	if len(spans) == 0 {
		return 1
	}
	return 0
}

func runReplace(application *app.App, opts options, name string, toFile bool) int {
	var n int
	var err error
	if opts.all {
		n, err = application.ReplaceAll(opts.replace, opts.replaceWith)
	} else {
		n, err = application.ReplaceNext(opts.replace, opts.replaceWith)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if toFile {
		if err := application.SaveDocument(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(os.Stderr, "%s: %d replacement(s)\n", name, n)
	} else {
		fmt.Print(application.Text())
		fmt.Fprintf(os.Stderr, "%d replacement(s)\n", n)
	}
	return 0
}

// printBindings writes the binding table grouped by category.
func printBindings(w io.Writer, keys *keyboard.Registry) {
	byCat := keys.ByCategory()
	for _, cat := range keyboard.Categories {
		bindings := byCat[cat.Name]
		if len(bindings) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", cat.Name)
		for _, b := range bindings {
			fmt.Fprintf(w, "  %-14s %s\n", keyboard.Display(b.Key), b.Description)
		}
	}
}

// lineCol converts a byte offset to 1-based line and column numbers.
func lineCol(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	line = strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		col = offset - i
	} else {
		col = offset + 1
	}
	return line, col
}

func parseFlags() (options, []string) {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	flag.StringVar(&opts.find, "find", "", "Search the input for a query and print matches")
	flag.StringVar(&opts.replace, "replace", "", "Replace occurrences of a query in the input")
	flag.StringVar(&opts.replaceWith, "with", "", "Replacement text for -replace")
	flag.BoolVar(&opts.all, "all", true, "Replace all occurrences instead of the first")
	flag.BoolVar(&opts.regex, "regex", false, "Treat the query as a regular expression")
	flag.BoolVar(&opts.caseSense, "case", false, "Match case sensitively")
	flag.BoolVar(&opts.wholeWord, "word", false, "Match whole words only")

	flag.BoolVar(&opts.showKeys, "keys", false, "Print the key binding table and exit")
	flag.BoolVar(&opts.showVersion, "version", false, "Show version information")
	flag.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: scribe [options] [file]\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	return opts, flag.Args()
}
