package main

import "flag"

var _defaultConfig = config{
	Alphabet: _defaultAlphabet,
	Format:   _formatText,
}

type config struct {
	Alphabet alphabet
	Format   format
	LogFile  string
	Verbose  bool

	// Input is the frequency table file.
	// Empty or "-" reads from stdin.
	Input string
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.Var(&c.Alphabet, "alphabet", "")
	flag.Var(&c.Format, "format", "")
	flag.StringVar(&c.LogFile, "log", c.LogFile, "")
	flag.BoolVar(&c.Verbose, "verbose", c.Verbose, "")
}

// Flags rebuilds a list of arguments from which this configuration may be
// parsed.
func (c *config) Flags() []string {
	var args []string
	if len(c.Alphabet) > 0 {
		args = append(args, "-alphabet", c.Alphabet.String())
	}
	if len(c.Format) > 0 {
		args = append(args, "-format", c.Format.String())
	}
	if len(c.LogFile) > 0 {
		args = append(args, "-log", c.LogFile)
	}
	if c.Verbose {
		args = append(args, "-verbose")
	}
	if len(c.Input) > 0 {
		args = append(args, c.Input)
	}
	return args
}
