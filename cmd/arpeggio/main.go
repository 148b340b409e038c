// arpeggio builds prefix-free code books for frequency tables.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/abhinav/arpeggio/internal/codebook"
	"github.com/abhinav/arpeggio/internal/log"
	"github.com/abhinav/arpeggio/internal/paniclog"
	"github.com/benbjohnson/clock"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-shellwords"
	"go.uber.org/multierr"
)

var _version = "dev"

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		Clock:  clock.New(),
	}
	if err := run(&cmd, os.Args[1:]); err != nil && err != flag.ErrHelp {
		fmt.Fprintln(cmd.Stderr, err)
		os.Exit(1)
	}
}

const (
	// Shell-quoted flags placed before the command line arguments.
	_optsEnv = "ARPEGGIO_OPTS"

	// Default log file.
	_logfileEnv = "ARPEGGIO_LOG"
)

func run(cmd *mainCmd, args []string) (err error) {
	if opts := cmd.Getenv(_optsEnv); len(opts) > 0 {
		defaults, err := shellwords.Parse(opts)
		if err != nil {
			return fmt.Errorf("parse $%v: %w", _optsEnv, err)
		}
		args = append(defaults, args...)
	}

	cfg := _defaultConfig
	cfg.LogFile = cmd.Getenv(_logfileEnv)

	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		name := flag.Name()
		fmt.Fprintf(flag.Output(), _usage, name)
	}
	cfg.RegisterFlags(flag)
	version := flag.Bool("version", false, "")
	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "arpeggio version %v\n", _version)
		return nil
	}

	switch args := flag.Args(); len(args) {
	case 0:
		// stdin
	case 1:
		cfg.Input = args[0]
	default:
		return fmt.Errorf("unexpected arguments %q", args[1:])
	}

	return cmd.Run(&cfg)
}

type mainCmd struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Getenv func(string) string // == os.Getenv
	Clock  clock.Clock

	runTarget runTargetFunc
}

const _name = "arpeggio"

const _usage = `usage: %v [options] [FILE]

Builds a prefix-free code book for the frequency table in FILE,
assigning shorter code words to more frequent targets.

FILE is a YAML mapping from target to the number of times it occurs.

	the: 120
	of: 64
	and: 52

Reads from stdin if FILE is absent or '-'.

The following flags are available:

	-alphabet STRING
		characters used to build code words.
			-alphabet 01  # binary
			-alphabet "asdfghjkl;"  # qwerty home row
		Each user-perceived character is one symbol.
		Uses the English alphabet by default.
	-format FORMAT
		output format: 'text' or 'yaml'.
		Defaults to 'text'.
	-log FILE
		file to write logs to.
		Uses $ARPEGGIO_LOG if set, and stderr otherwise.
	-verbose
		log more output.
	-version
		display version information.

Flags in $ARPEGGIO_OPTS are placed before flags on the command line.
`

func (cmd *mainCmd) init() {
	if cmd.runTarget == nil {
		cmd.runTarget = runTarget
	}
	if cmd.Clock == nil {
		cmd.Clock = clock.New()
	}
}

func (cmd *mainCmd) Run(cfg *config) (err error) {
	cmd.init()

	logW := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		f, openErr := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if openErr != nil {
			return fmt.Errorf("open log %q: %w", file, openErr)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		logW = f
	}

	logger := log.New(logW)
	if cfg.Verbose {
		logger = logger.WithLevel(log.Debug)
	}

	defer paniclog.Recover(&err, logger)

	var w codebook.Writer
	switch cfg.Format {
	case _formatYAML:
		w = &codebook.YAMLWriter{W: cmd.Stdout}
	default:
		w = &codebook.TextWriter{
			W:     cmd.Stdout,
			Color: isTerminal(cmd.Stdout),
		}
	}

	target := &app{
		Log:    logger,
		Clock:  cmd.Clock,
		Stdin:  cmd.Stdin,
		Open:   openFile,
		Writer: w,
	}

	return cmd.runTarget(target, cfg)
}

func openFile(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && isatty.IsTerminal(f.Fd())
}

// runTargetFunc runs objects that conform to the app signature. This
// type is intentionally cumbersome because it's not meant to be used widely.
type runTargetFunc func(interface {
	Run(*config) error
}, *config) error

func runTarget(target interface{ Run(*config) error }, cfg *config) error {
	return target.Run(cfg)
}
