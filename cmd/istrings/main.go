package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/glampert/istrings/internal/accept"
	"github.com/glampert/istrings/internal/app"
)

// Version information - set at build time.
var version = "dev"

func main() {
	// Logging setup: pretty console output on a terminal, plain JSON lines
	// otherwise. Diagnostics always go to stderr, never into the output.
	zerolog.TimeFieldFormat = time.RFC3339
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = log.Output(os.Stderr)
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	os.Exit(run(os.Args))
}

// options is the parsed command line, before the optional config-file
// overlay is applied.
type options struct {
	input      string
	output     string
	outputSet  bool
	minRun     int
	minSet     bool
	verbose    bool
	configPath string
	help       bool
	version    bool
}

// run implements the exit code policy: 0 on success or help, 1 otherwise.
func run(argv []string) int {
	if len(argv) <= 1 {
		printUsage(argv[0])
		return 1
	}

	// Help or version as the first token bypasses all processing.
	switch argv[1] {
	case "-h", "--help":
		printUsage(argv[0])
		return 0
	case "--version":
		fmt.Println(versionString())
		return 0
	}

	opts, err := parseArgs(argv[1:])
	if err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		return 1
	}
	if opts.help {
		printUsage(argv[0])
		return 0
	}
	if opts.version {
		fmt.Println(versionString())
		return 0
	}
	if opts.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := app.Config{
		InputPath:  opts.input,
		OutputPath: opts.output,
		MinRun:     opts.minRun,
		Verbose:    opts.verbose,
	}
	if opts.configPath != "" {
		fc, err := app.LoadFileConfig(opts.configPath)
		if err != nil {
			log.Error().Err(err).Msg("cannot load config file")
			return 1
		}
		fc.Apply(&cfg, opts.minSet, opts.outputSet)
		if cfg.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	if err := app.Run(cfg); err != nil {
		log.Error().Err(err).Msg("extraction failed")
		return 1
	}
	return 0
}

// parseArgs applies the positional grammar: argument one is the input
// file, argument two is an output file unless it looks like an option,
// and everything after that is option tokens. Unrecognized options are
// ignored rather than rejected.
func parseArgs(args []string) (options, error) {
	opts := options{minRun: accept.DefaultMinRun}

	in := args[0]
	if in == "" || strings.HasPrefix(in, "-") {
		return opts, fmt.Errorf("invalid filename %q", in)
	}
	opts.input = in

	rest := args[1:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		opts.output = rest[0]
		opts.outputSet = true
		rest = rest[1:]
	}
	for _, arg := range rest {
		opts.applyOption(arg)
	}
	return opts, nil
}

func (o *options) applyOption(arg string) {
	switch {
	case arg == "-h" || arg == "--help":
		o.help = true
	case arg == "--version":
		o.version = true
	case arg == "-v" || arg == "--verbose":
		o.verbose = true
	case strings.HasPrefix(arg, "--min="):
		// An unparsable value keeps the default rather than failing.
		if n, err := strconv.Atoi(arg[len("--min="):]); err == nil {
			o.minRun = n
			o.minSet = true
		}
	case strings.HasPrefix(arg, "--config="):
		o.configPath = arg[len("--config="):]
	}
}

func versionString() string {
	return fmt.Sprintf("istrings %s (%s)", version, runtime.Version())
}

func printUsage(prog string) {
	fmt.Printf(`
Usage:
 $ %s <input-file> [output-file] [options]
 Tries to find printable strings inside a binary file.
 If no output file is provided output is printed to stdout.
 Options are:
  -h, --help     Prints this message and exits.
  -v, --verbose  Enables debug diagnostics on stderr.
  --min=<N>      Minimum sequence of letters (aA-zZ) for a string to be considered. Defaults to %d.
  --config=<F>   Reads default settings from a YAML file.
  --version      Prints version information and exits.
`, prog, accept.DefaultMinRun)
}
