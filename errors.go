package arpeggio

import "errors"

var (
	// ErrInvalidConfiguration indicates that a code book cannot be built
	// from the given parameters.
	// This includes alphabets with fewer than two symbols,
	// negative counts in frequency tables,
	// and alphabets or frequency tables that don't match a tree.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDuplicateSymbol indicates that an alphabet has the same symbol
	// more than once.
	ErrDuplicateSymbol = errors.New("alphabet has duplicates")
)
