package arpeggio

import (
	"fmt"
	"strings"
)

// Alphabet is an ordered set of two or more unique code symbols.
// Symbol i labels the edge to child i of every branch in a tree.
//
// The zero value is not a valid alphabet. Use NewAlphabet.
type Alphabet[S comparable] struct {
	symbols []S
	index   map[S]int
}

// NewAlphabet builds an alphabet from the given symbols, in order.
//
// It fails with ErrInvalidConfiguration if there are fewer than two
// symbols, and with ErrDuplicateSymbol if a symbol appears more than once.
func NewAlphabet[S comparable](symbols ...S) (Alphabet[S], error) {
	if len(symbols) < 2 {
		return Alphabet[S]{}, fmt.Errorf(
			"%w: alphabet must have at least two items, got %d",
			ErrInvalidConfiguration, len(symbols))
	}

	index := make(map[S]int, len(symbols))
	var dupes []S // in order of first repetition
	for i, s := range symbols {
		if j, ok := index[s]; ok {
			if j >= 0 {
				dupes = append(dupes, s)
				index[s] = -1 // already reported
			}
			continue
		}
		index[s] = i
	}

	if len(dupes) > 0 {
		return Alphabet[S]{}, fmt.Errorf("%w: %v", ErrDuplicateSymbol, formatSymbols(dupes))
	}

	return Alphabet[S]{
		symbols: append([]S(nil), symbols...),
		index:   index,
	}, nil
}

// Len reports the number of symbols in the alphabet.
// This is the branching factor of trees built for it.
func (a Alphabet[S]) Len() int { return len(a.symbols) }

// Symbol returns the symbol at position i.
func (a Alphabet[S]) Symbol(i int) S { return a.symbols[i] }

// Symbols returns a copy of the symbols in this alphabet, in order.
func (a Alphabet[S]) Symbols() []S {
	return append([]S(nil), a.symbols...)
}

// Index reports the position of the given symbol in the alphabet.
func (a Alphabet[S]) Index(s S) (int, bool) {
	i, ok := a.index[s]
	return i, ok
}

// formatSymbols renders symbols for error messages.
// Characters and strings are quoted.
func formatSymbols[S comparable](symbols []S) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range symbols {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s := any(s).(type) {
		case rune, string:
			fmt.Fprintf(&sb, "%q", s)
		default:
			fmt.Fprintf(&sb, "%v", s)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
