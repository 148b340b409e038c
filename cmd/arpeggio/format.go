package main

import (
	"flag"
	"fmt"
)

// format is the output format of the code book.
type format string

const (
	_formatText format = "text"
	_formatYAML format = "yaml"
)

var _ flag.Value = (*format)(nil)

func (f *format) String() string {
	return string(*f)
}

func (f *format) Set(s string) error {
	switch v := format(s); v {
	case _formatText, _formatYAML:
		*f = v
		return nil
	default:
		return fmt.Errorf("unknown format %q: must be 'text' or 'yaml'", s)
	}
}
