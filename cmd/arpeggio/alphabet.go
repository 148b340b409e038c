package main

import (
	"flag"

	"github.com/abhinav/arpeggio"
	"github.com/rivo/uniseg"
)

const _defaultAlphabet alphabet = "abcdefghijklmnopqrstuvwxyz"

// alphabet is a string of code symbols.
// Each grapheme cluster is one symbol,
// so "é" (e with a combining accent) counts once.
type alphabet string

var _ flag.Value = (*alphabet)(nil)

func (al *alphabet) String() string {
	return string(*al)
}

func (al *alphabet) Set(alpha string) error {
	*al = alphabet(alpha)
	return al.Validate()
}

// Symbols splits the alphabet into its symbols.
func (al alphabet) Symbols() []string {
	var (
		symbols []string
		cluster string
	)
	rest, state := string(al), -1
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		symbols = append(symbols, cluster)
	}
	return symbols
}

func (al alphabet) Validate() error {
	_, err := arpeggio.NewAlphabet(al.Symbols()...)
	return err
}
