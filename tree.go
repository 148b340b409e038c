package arpeggio

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/abhinav/arpeggio/internal/huffman"
	"go.uber.org/multierr"
)

// Padding reports the shape of a tree for numElements targets
// and an alphabet of numBranches symbols.
//
// branchPoints is the number of branch (internal) nodes in the tree,
// and padding is the number of zero-weight placeholder leaves
// added next to the targets so that every branch has exactly numBranches
// children.
//
// Zero targets produce a tree made of a single placeholder leaf:
// no branches and one unit of padding.
func Padding(numElements, numBranches int) (branchPoints, padding int, err error) {
	if numBranches < 2 {
		return 0, 0, fmt.Errorf(
			"%w: alphabet must have at least two items, got %d",
			ErrInvalidConfiguration, numBranches)
	}
	if numElements < 0 {
		return 0, 0, fmt.Errorf(
			"%w: number of elements must not be negative, got %d",
			ErrInvalidConfiguration, numElements)
	}

	branchPoints, padding = huffman.Padding(numElements, numBranches)
	return branchPoints, padding, nil
}

// Tree is an n-ary Huffman tree.
// Leaves hold targets or padding,
// and every branch has exactly Arity children.
//
// Trees are immutable and safe for concurrent use.
type Tree[T cmp.Ordered] struct {
	root         *huffman.Node
	targets      []T // sorted; leaf indexes point here
	arity        int
	branchPoints int
	padding      int
}

// BuildTree builds a tree for the given frequency table
// and an alphabet of alphabetSize symbols.
// freqs maps each target to the number of times it occurs.
//
// BuildTree fails with ErrInvalidConfiguration
// if alphabetSize is less than 2,
// or if any count in freqs is negative.
// All negative counts are reported.
//
// The sum of all counts must fit in an int.
func BuildTree[T cmp.Ordered](freqs map[T]int, alphabetSize int) (*Tree[T], error) {
	branchPoints, padding, err := Padding(len(freqs), alphabetSize)
	if err != nil {
		return nil, err
	}

	// Sorting targets fixes the order in which ties are broken.
	targets := slices.Sorted(maps.Keys(freqs))
	weights := make([]int, len(targets))
	for i, t := range targets {
		count := freqs[t]
		if count < 0 {
			err = multierr.Append(err, fmt.Errorf(
				"%w: target %v has negative count %d",
				ErrInvalidConfiguration, t, count))
		}
		weights[i] = count
	}
	if err != nil {
		return nil, err
	}

	return &Tree[T]{
		root:         huffman.Build(alphabetSize, weights),
		targets:      targets,
		arity:        alphabetSize,
		branchPoints: branchPoints,
		padding:      padding,
	}, nil
}

// BuildTreeWithSymbols builds a tree for the given frequency table
// with one branch per symbol in alphabet.
//
// Besides the failures of BuildTree, it fails with ErrDuplicateSymbol
// if alphabet has the same symbol more than once.
// Symbols are validated before any other work is done.
func BuildTreeWithSymbols[T cmp.Ordered, S comparable](freqs map[T]int, alphabet []S) (*Tree[T], error) {
	alpha, err := NewAlphabet(alphabet...)
	if err != nil {
		return nil, err
	}
	return BuildTree(freqs, alpha.Len())
}

// Root returns the root node of the tree.
func (t *Tree[T]) Root() Node[T] {
	return Node[T]{n: t.root, targets: t.targets}
}

// Arity reports the number of children of each branch in the tree.
func (t *Tree[T]) Arity() int { return t.arity }

// Len reports the number of targets in the tree.
func (t *Tree[T]) Len() int { return len(t.targets) }

// Targets returns the targets in the tree in ascending order.
func (t *Tree[T]) Targets() []T { return slices.Clone(t.targets) }

// Weight reports the total weight of the tree:
// the sum of the counts of all targets.
func (t *Tree[T]) Weight() int { return t.root.Weight }

// BranchPoints reports the number of branch nodes in the tree.
func (t *Tree[T]) BranchPoints() int { return t.branchPoints }

// Padding reports the number of placeholder leaves in the tree.
func (t *Tree[T]) Padding() int { return t.padding }

// Node is a read-only view of a node in a Tree.
//
// A node is a leaf if it has no children.
// Leaves either hold a target, or are padding.
type Node[T cmp.Ordered] struct {
	n       *huffman.Node
	targets []T
}

// Weight reports the combined count of all targets under this node.
func (n Node[T]) Weight() int { return n.n.Weight }

// Target reports the target held by this node.
// Only leaves hold targets, and padding leaves don't hold any.
func (n Node[T]) Target() (target T, ok bool) {
	if i := n.n.Index; i >= 0 {
		return n.targets[i], true
	}
	return target, false
}

// IsLeaf reports whether this node has no children.
func (n Node[T]) IsLeaf() bool { return n.n.IsLeaf() }

// IsPadding reports whether this is a placeholder leaf.
func (n Node[T]) IsPadding() bool {
	return n.n.IsLeaf() && n.n.Index < 0
}

// NumChildren reports the number of children of this node.
// This is zero for leaves, and the tree's arity for branches.
func (n Node[T]) NumChildren() int { return len(n.n.Children) }

// Child returns the child at position i,
// which is labeled with symbol i of the alphabet.
func (n Node[T]) Child(i int) Node[T] {
	return Node[T]{n: n.n.Children[i], targets: n.targets}
}

// Children returns the children of this node in order.
func (n Node[T]) Children() []Node[T] {
	children := make([]Node[T], len(n.n.Children))
	for i := range children {
		children[i] = n.Child(i)
	}
	return children
}
