// Package main provides the CLI entrypoint for relcheck.
//
// relcheck validates bidirectional one-to-many relationships in a persistent
// model:
//   - every entity has a zero-argument constructor
//   - every one-to-many collection has a many-to-one back-reference on its
//     element type, named by the mappedBy attribute
//
// Models are read from YAML model files or from Go packages.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"relcheck/internal/analyze"
	"relcheck/internal/catalog"
	"relcheck/internal/check"
	"relcheck/internal/config"
	"relcheck/internal/diagnostic"
	"relcheck/internal/model"
	"relcheck/internal/modelfile"
)

// Exit codes.
const (
	exitOK          = 0
	exitDiagnostics = 1
	exitFatal       = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("relcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", config.DefaultFile, "path to config file")
	source := fs.String("source", "", "model source: model or go")
	format := fs.String("format", "", "output format: text or json")
	verbose := fs.Bool("v", false, "log at debug level")
	dump := fs.Bool("dump", false, "print the loaded declarations before checking")
	fs.Usage = func() {
		_ = writef(stderr, "Usage: relcheck [options] <model.yaml... | package patterns...>\n\n")
		_ = writeln(stderr, "Validates one-to-many relationship mappings.")
		_ = writeln(stderr)
		_ = writeln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFatal
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return exitFatal
	}

	if *source != "" {
		cfg.Source = config.Source(*source)
	}
	if *format != "" {
		cfg.Format = diagnostic.Format(*format)
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return exitFatal
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		_ = writeln(stderr, "error: at least one input is required")
		fs.Usage()
		return exitFatal
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	u, err := loadUniverse(cfg, inputs)
	if err != nil {
		_ = writef(stderr, "error loading model: %v\n", err)
		return exitFatal
	}
	logger.Debug("model loaded", slog.String("source", string(cfg.Source)), slog.Int("declarations", u.Len()))

	if *dump {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, MaxDepth: 5}
		dumper.Fdump(stdout, u.Declarations())
	}

	c, err := catalog.New(u, cfg.MarkerNames())
	if err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return exitFatal
	}

	diags := &diagnostic.Diagnostics{}
	if _, err := check.New(u, c, diags, check.WithLogger(logger)).RunUniverse(); err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return exitFatal
	}

	if err := diagnostic.Write(stdout, diags, cfg.Format); err != nil {
		_ = writef(stderr, "error writing diagnostics: %v\n", err)
		return exitFatal
	}

	if diags.HasErrors() {
		return exitDiagnostics
	}

	return exitOK
}

// loadUniverse reads the inputs with the configured model source.
func loadUniverse(cfg *config.Config, inputs []string) (*model.Universe, error) {
	switch cfg.Source {
	case config.SourceGo:
		return analyze.NewAnalyzer().LoadPackages(inputs...)
	default:
		paths := append(append([]string{}, cfg.Library...), inputs...)

		files, err := modelfile.LoadFiles(paths...)
		if err != nil {
			return nil, err
		}

		return modelfile.Build(files...)
	}
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
