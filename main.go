package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/mcncl/jsondelta/internal/canonical"
	"github.com/mcncl/jsondelta/internal/config"
	"github.com/mcncl/jsondelta/internal/delta"
	"github.com/mcncl/jsondelta/internal/errors"
	"github.com/mcncl/jsondelta/internal/logging"
	"github.com/mcncl/jsondelta/internal/models"
	"github.com/mcncl/jsondelta/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Json1         string `help:"Path to the first JSON file, or '-' to read it from stdin." arg:"" optional:""`
	Json2         string `help:"Path to the second JSON file, or '-' to read it from stdin. May be omitted when the second document is piped to stdin." arg:"" optional:""`
	Report        string `help:"Write the comparison report to the given JSON file." short:"o" placeholder:"PATH"`
	ShowDocuments bool   `help:"Print both canonical documents after the differences." short:"s"`
	NoColor       bool   `help:"Disable colored output."`
	Config        string `help:"Path to a config file. Discovered upward from the working directory when omitted." short:"c" type:"path"`
	Debug         bool   `help:"Enable debug logging." short:"d"`
	Version       bool   `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	cliParser := kong.Must(&CLI,
		kong.Name("jsondelta"),
		kong.Description("Compare two JSON documents and report which lines of their canonical renderings were added and removed."),
		kong.UsageOnError(),
	)

	if _, err := cliParser.Parse(os.Args[1:]); err != nil {
		// Usage was already printed by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsondelta version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	logging.Init(CLI.Debug, cfg.Log.Level)
	applyColorMode(cfg)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsondelta --help\n")
		os.Exit(1)
	}
}

// run executes the main program logic
func run(cfg *config.Config) error {
	doc1, doc2, err := loadDocuments()
	if err != nil {
		return err
	}

	summary, err := delta.Compare(doc1.Root, doc2.Root)
	if err != nil {
		return err
	}
	log.Debugf("comparison finished: %d added, %d removed", len(summary.Added), len(summary.Removed))

	printSummary(os.Stdout, summary)

	if CLI.ShowDocuments || cfg.Display.ShowDocuments {
		if err := printDocuments(os.Stdout, doc1, doc2); err != nil {
			return err
		}
	}

	switch {
	case CLI.Report != "":
		return writeReport(CLI.Report, summary)
	case cfg.Report.Always:
		return writeReport(cfg.Report.Path, summary)
	}
	return nil
}

// loadConfig resolves the configuration from the --config flag, an
// auto-discovered config file, or the defaults.
func loadConfig() (*config.Config, error) {
	if CLI.Config != "" {
		return config.LoadConfig(CLI.Config)
	}
	if path := config.FindConfigFile(); path != "" {
		return config.LoadConfig(path)
	}
	return config.NewConfig(), nil
}

func applyColorMode(cfg *config.Config) {
	switch {
	case CLI.NoColor || cfg.Display.Color == "never":
		color.NoColor = true
	case cfg.Display.Color == "always":
		color.NoColor = false
	}
}

// loadDocuments reads both JSON documents from the positional arguments,
// falling back to stdin for the second document when it is omitted or '-'.
func loadDocuments() (models.Document, models.Document, error) {
	if CLI.Json1 == "" {
		return models.Document{}, models.Document{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}
	if CLI.Json2 == "" && !stdinIsPiped() {
		return models.Document{}, models.Document{}, errors.NewInputError("second document missing", errors.ErrNoInput)
	}

	doc1, err := loadDocument(CLI.Json1)
	if err != nil {
		return models.Document{}, models.Document{}, err
	}

	var doc2 models.Document
	if CLI.Json2 == "" || CLI.Json2 == "-" {
		doc2, err = readStdin()
	} else {
		doc2, err = loadDocument(CLI.Json2)
	}
	if err != nil {
		return models.Document{}, models.Document{}, err
	}

	return doc1, doc2, nil
}

func loadDocument(path string) (models.Document, error) {
	if path == "-" {
		return readStdin()
	}
	return parser.ParseFile(path)
}

func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	return err == nil && (info.Mode()&os.ModeCharDevice) == 0
}

func readStdin() (models.Document, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return models.Document{}, errors.NewInputError("failed to read from stdin", err)
	}
	if len(data) == 0 {
		return models.Document{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return parser.ParseString(string(data))
}

// printSummary renders the delta the way the comparison report panel
// does: total first, then additions, then removals.
func printSummary(w io.Writer, summary delta.Summary) {
	fmt.Fprintf(w, "Total changes: %s\n", humanize.Comma(int64(summary.TotalChanges)))

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintln(w, "\nAdditions to JSON 2:")
	if len(summary.Added) == 0 {
		fmt.Fprintln(w, "  No additions found.")
	} else {
		for _, line := range summary.Added {
			green.Fprintf(w, "  + %s\n", line)
		}
	}

	fmt.Fprintln(w, "\nRemovals from JSON 1:")
	if len(summary.Removed) == 0 {
		fmt.Fprintln(w, "  No removals found.")
	} else {
		for _, line := range summary.Removed {
			red.Fprintf(w, "  - %s\n", line)
		}
	}
}

// printDocuments prints both canonical renderings, mirroring the
// side-by-side document view of the report.
func printDocuments(w io.Writer, doc1, doc2 models.Document) error {
	text1, err := canonical.Canonicalize(doc1.Root)
	if err != nil {
		return err
	}
	text2, err := canonical.Canonicalize(doc2.Root)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nJSON 1:\n%s\n", text1)
	fmt.Fprintf(w, "\nJSON 2:\n%s\n", text2)
	return nil
}

// writeReport exports the summary as the stable report file format.
func writeReport(path string, summary delta.Summary) error {
	data, err := summary.Report()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write report to '%s'", path), err)
	}
	fmt.Fprintf(os.Stderr, "Comparison report written to %s\n", path)
	return nil
}
