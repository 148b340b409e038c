// Package arpeggio builds prefix-free code books over arbitrary alphabets.
//
// Given how often each of a set of targets occurs,
// arpeggio assigns every target a code word:
// a sequence of symbols from an alphabet of two or more symbols.
// Frequent targets get shorter code words,
// and no code word is a prefix of another,
// so a stream of code words can be decoded without separators.
//
// This is n-ary Huffman coding.
// Where binary Huffman coding repeatedly merges the two least frequent
// nodes of a tree, arpeggio merges as many nodes as there are symbols
// in the alphabet.
//
// Building a code book takes two steps.
// BuildTree builds the weighted tree from a frequency table,
// and DeriveEncodingMap labels its edges with alphabet symbols:
//
//	freqs := map[string]int{"the": 12, "a": 9, "of": 5}
//	tree, err := arpeggio.BuildTree(freqs, 3)
//	if err != nil {
//		return err
//	}
//	codes, err := arpeggio.DeriveEncodingMap(tree, []rune("xyz"), freqs)
//
// Trees are fully determined by their inputs.
// When two nodes have the same weight, the merge prefers, in order,
// padding leaves, then targets in ascending order,
// then nodes built by earlier merges.
package arpeggio
