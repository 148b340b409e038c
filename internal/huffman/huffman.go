// Package huffman implements an n-ary Huffman coding tree.
//
// Given the weights of a list of items and a branching factor (the number
// of symbols in the output alphabet), Build produces a tree where every
// internal node has exactly that many children. The path from the root to
// an item's leaf, read as child positions, is that item's code word.
// Code words built this way are prefix-free: for any two code words X and
// Y, X is not a prefix of Y.
//
// The package deals only in item and child indexes.
// Mapping those to targets and alphabet symbols is the caller's job.
package huffman

import (
	"container/heap"
)

// Padding reports the shape of an n-ary tree holding numElements items
// when every internal node has exactly numBranches children.
//
// branchPoints is the number of internal nodes in the tree,
// and padding is the number of zero-weight placeholder leaves
// that must be added to the items so that repeated numBranches-way merges
// leave exactly one root behind.
//
// Zero items produce a tree made of a single placeholder leaf.
//
// Padding panics if numBranches is less than 2.
func Padding(numElements, numBranches int) (branchPoints, padding int) {
	if numBranches < 2 {
		panic("alphabet must have at least two elements")
	}
	if numElements <= 0 {
		return 0, 1
	}

	// ceil((numElements-1) / (numBranches-1))
	branchPoints = (numElements - 1 + numBranches - 2) / (numBranches - 1)
	padding = 1 + (numBranches-1)*branchPoints - numElements
	return branchPoints, padding
}

// Build builds a tree with the given branching factor
// for items with the given weights.
// weights[i] is the weight of item i; weights must not be negative.
//
// The tree is built with a priority queue
// ordered by weight, lowest weight first.
// Ties are broken by the order in which nodes entered the queue:
// padding leaves first, then items in index order,
// then internal nodes in the order they were built.
// The tree is therefore fully determined by its inputs.
//
// Build panics if base is less than 2.
func Build(base int, weights []int) *Node {
	_, padding := Padding(len(weights), base)

	// Fill the heap with the padding leaves,
	// followed by leaf nodes for the user-provided items.
	nodeHeap := make(nodeHeap, 0, padding+len(weights))
	var seq int
	for range padding {
		nodeHeap = append(nodeHeap, &entry{
			Node: &Node{Index: -1},
			Seq:  seq,
		})
		seq++
	}
	for i, w := range weights {
		nodeHeap = append(nodeHeap, &entry{
			Node: &Node{Index: i, Weight: w},
			Seq:  seq,
		})
		seq++
	}
	heap.Init(&nodeHeap)

	// This is the meat of the logic.
	//
	//  - Take the $base least frequent nodes off the heap.
	//    Child i of the new node gets letter i.
	//  - Create a new node that represents these $base nodes
	//    and push it back into the heap.
	//  - Repeat until there's only one node left in the heap.
	//
	// Because of the padding, every merge takes exactly $base nodes.
	for len(nodeHeap) > 1 {
		n := min(base, len(nodeHeap))
		children := make([]*Node, n)
		var weight int
		for i := range children {
			child := heap.Pop(&nodeHeap).(*entry).Node
			children[i] = child
			weight += child.Weight
		}

		heap.Push(&nodeHeap, &entry{
			Node: &Node{
				Index:    -1,
				Children: children,
				Weight:   weight,
			},
			Seq: seq,
		})
		seq++
	}

	return nodeHeap[0].Node
}

// Node is a node in the tree.
// Nodes are never modified after Build returns.
type Node struct {
	// Index of the item this leaf represents, as identified by the user.
	// This is -1 for branch nodes and padding leaves.
	Index int

	// Exactly base children for branch nodes.
	// This is nil for leaf nodes.
	Children []*Node

	// Weight of the leaf node, or the combined weight of the leaf
	// nodes of a branch node. Padding leaves have zero weight.
	Weight int
}

// IsLeaf reports whether this node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// entry is a node in the priority queue.
type entry struct {
	Node *Node

	// Seq is the order in which this entry was first added to the queue.
	// It breaks ties between equal weights.
	Seq int
}

type nodeHeap []*entry

func (ns nodeHeap) Len() int { return len(ns) }

func (ns nodeHeap) Less(i, j int) bool {
	if wi, wj := ns[i].Node.Weight, ns[j].Node.Weight; wi != wj {
		return wi < wj
	}
	return ns[i].Seq < ns[j].Seq
}

func (ns nodeHeap) Swap(i, j int) {
	ns[i], ns[j] = ns[j], ns[i]
}

func (ns *nodeHeap) Push(e any) {
	*ns = append(*ns, e.(*entry))
}

func (ns *nodeHeap) Pop() any {
	n := len(*ns) - 1
	v := (*ns)[n]
	*ns = (*ns)[:n]
	return v
}
