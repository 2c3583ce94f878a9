// Command argcheck validates an argument list against a spec file, and prints the bound values.
//
// This makes the args package usable from shell scripts:
//
//	argcheck [FLAGS] SPEC_FILE [ARGS...]
//
// Exits with 0 and prints the bound values if the arguments are valid.
// Exits with 1 if the checked program's help or version was requested, or the arguments are invalid.
// Exits with 2 if argcheck itself was invoked incorrectly, or the spec file can't be used.
package main

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/saylorsolutions/argparse/args"
	"github.com/saylorsolutions/argparse/internal/env"
	"github.com/saylorsolutions/argparse/specfile"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	exitOK      = 0
	exitStop    = 1
	exitInvalid = 2

	EnvDebug = "ARGCHECK_DEBUG"
)

var ErrUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	format string
	color  string
	debug  bool
}

func newFlagSet(cfg *config, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("argcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolP("help", "h", false, "Prints this usage information")
	fs.StringVarP(&cfg.format, "format", "f", "yaml", "Output `format` for bound values, either yaml or toml")
	fs.StringVar(&cfg.color, "color", "auto", "Styles reports with color, one of `auto|always|never`")
	fs.BoolVar(&cfg.debug, "debug", env.Bool(EnvDebug, false), "Logs parsing details to STDERR, also enabled with "+EnvDebug)
	// Everything after the spec file belongs to the checked program.
	fs.SetInterspersed(false)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, `Validates arguments against a spec file, and prints the bound values.

USAGE:
argcheck [FLAGS] SPEC_FILE [ARGS...]

FLAGS
%s`, fs.FlagUsages())
	}
	return fs
}

func run(argv []string, stdout, stderr io.Writer) int {
	var cfg config
	fs := newFlagSet(&cfg, stderr)
	if err := fs.Parse(argv); err != nil {
		return usageFailure(fs, stderr, err)
	}
	if help, _ := fs.GetBool("help"); help {
		fs.Usage()
		return exitOK
	}
	if fs.NArg() == 0 {
		return usageFailure(fs, stderr, fmt.Errorf("%w: missing spec file", ErrUsage))
	}

	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	printer := args.NewPrinter()
	printer.Redirect(stderr)
	switch cfg.color {
	case "always":
		printer.SetColor(true)
	case "never":
		printer.SetColor(false)
	case "auto":
	default:
		return usageFailure(fs, stderr, fmt.Errorf("%w: unknown color mode '%s'", ErrUsage, cfg.color))
	}
	encode, err := encoder(cfg.format)
	if err != nil {
		return usageFailure(fs, stderr, err)
	}

	specPath := fs.Arg(0)
	file, err := specfile.Load(specPath)
	if err != nil {
		logger.Error("Failed to load spec file", "path", specPath, "error", err)
		return exitInvalid
	}
	parser, err := file.Parser(args.WithPrinter(printer), args.WithLogger(logger))
	if err != nil {
		logger.Error("Invalid spec file", "path", specPath, "error", err)
		return exitInvalid
	}
	logger.Debug("Loaded spec file", "path", specPath, "switches", len(parser.Switches()), "positionals", len(parser.Positionals()))

	if !parser.Proceed(fs.Args()[1:]) {
		return exitStop
	}
	if err := encode(stdout, parser.Result()); err != nil {
		logger.Error("Failed to write result", "error", err)
		return exitInvalid
	}
	return exitOK
}

func usageFailure(fs *flag.FlagSet, stderr io.Writer, err error) int {
	_, _ = fmt.Fprintln(stderr, err)
	fs.Usage()
	return exitInvalid
}

type encodeFunc func(w io.Writer, result *args.Result) error

func encoder(format string) (encodeFunc, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return func(w io.Writer, result *args.Result) error {
			enc := yaml.NewEncoder(w)
			if err := enc.Encode(result); err != nil {
				return err
			}
			return enc.Close()
		}, nil
	case "toml":
		return func(w io.Writer, result *args.Result) error {
			return toml.NewEncoder(w).Encode(result.Map())
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown format '%s'", ErrUsage, format)
	}
}
