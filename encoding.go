package arpeggio

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/abhinav/arpeggio/internal/huffman"
	"go.uber.org/multierr"
)

// Entry is a code word in an EncodingMap
// and the target it stands for.
type Entry[T cmp.Ordered, S comparable] struct {
	// Code is the code word for the target.
	// Its length is the depth of the target's leaf in the tree.
	//
	// Code is empty if the target is the only one in the tree.
	// Do not modify it.
	Code []S

	// Target identified by this code word.
	Target T

	// Count is the number of times the target occurs,
	// as reported by the frequency table.
	Count int
}

// EncodingMap is a prefix-free code book:
// a two-way mapping between targets and code words.
//
// EncodingMaps are immutable and safe for concurrent use.
type EncodingMap[T cmp.Ordered, S comparable] struct {
	tree     *Tree[T]
	alphabet Alphabet[S]
	entries  []Entry[T, S] // in code word order
	byTarget map[T]int     // target -> entries index
	byLeaf   []int         // tree target index -> entries index
}

// DeriveEncodingMap labels the edges of tree with symbols from alphabet,
// and builds a code book from it.
// The edge to child i of each branch is labeled with alphabet[i].
//
// freqs supplies the counts reported in each Entry.
// It should be the same frequency table that the tree was built from.
//
// DeriveEncodingMap fails with ErrDuplicateSymbol if alphabet repeats
// symbols, and with ErrInvalidConfiguration if alphabet doesn't have
// exactly one symbol per branch of the tree or if freqs is missing
// targets in the tree.
func DeriveEncodingMap[T cmp.Ordered, S comparable](tree *Tree[T], alphabet []S, freqs map[T]int) (*EncodingMap[T, S], error) {
	alpha, err := NewAlphabet(alphabet...)
	if err != nil {
		return nil, err
	}
	if alpha.Len() != tree.Arity() {
		return nil, fmt.Errorf(
			"%w: alphabet has %d items, tree needs %d",
			ErrInvalidConfiguration, alpha.Len(), tree.Arity())
	}

	m := EncodingMap[T, S]{
		tree:     tree,
		alphabet: alpha,
		entries:  make([]Entry[T, S], 0, tree.Len()),
		byTarget: make(map[T]int, tree.Len()),
		byLeaf:   make([]int, tree.Len()),
	}

	// Walk visits leaves in code word order.
	huffman.Walk(tree.root, func(n *huffman.Node, path []int) {
		if n.Index < 0 {
			return
		}

		target := tree.targets[n.Index]
		count, ok := freqs[target]
		if !ok {
			err = multierr.Append(err, fmt.Errorf(
				"%w: target %v is not in the frequency table",
				ErrInvalidConfiguration, target))
			return
		}

		code := make([]S, len(path))
		for i, idx := range path {
			code[i] = alpha.Symbol(idx)
		}

		m.byTarget[target] = len(m.entries)
		m.byLeaf[n.Index] = len(m.entries)
		m.entries = append(m.entries, Entry[T, S]{
			Code:   code,
			Target: target,
			Count:  count,
		})
	})
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// Len reports the number of entries in the map.
// This is the number of targets in the tree.
func (m *EncodingMap[T, S]) Len() int { return len(m.entries) }

// Alphabet returns the alphabet used for code words.
func (m *EncodingMap[T, S]) Alphabet() Alphabet[S] { return m.alphabet }

// Entries returns all entries in the map, ordered by code word.
// Code words are compared symbol by symbol
// in the order that symbols appear in the alphabet.
func (m *EncodingMap[T, S]) Entries() []Entry[T, S] {
	return slices.Clone(m.entries)
}

// Code returns the code word for the given target.
func (m *EncodingMap[T, S]) Code(target T) ([]S, bool) {
	i, ok := m.byTarget[target]
	if !ok {
		return nil, false
	}
	return slices.Clone(m.entries[i].Code), true
}

// Lookup finds the entry for the given code word.
// It reports false if code is not a complete code word in this map.
func (m *EncodingMap[T, S]) Lookup(code []S) (Entry[T, S], bool) {
	n := m.tree.root
	for _, s := range code {
		i, ok := m.alphabet.Index(s)
		if !ok || i >= len(n.Children) {
			return Entry[T, S]{}, false
		}
		n = n.Children[i]
	}

	if n.Index < 0 {
		return Entry[T, S]{}, false
	}
	return m.entries[m.byLeaf[n.Index]], true
}

// Cost reports the weighted path length of the code book:
// the sum of Count × len(Code) over all entries.
// This is the number of symbols needed to encode every occurrence
// of every target, and is minimal for the frequency table.
func (m *EncodingMap[T, S]) Cost() (total int) {
	for _, e := range m.entries {
		total += e.Count * len(e.Code)
	}
	return total
}
