package huffman

import "slices"

// Walk visits every node of the tree rooted at root in depth-first
// pre-order, children in position order.
//
// path holds the child positions leading from root to the visited node.
// It is empty for the root.
// fn owns path and may retain it.
//
// Walk uses an explicit stack so that deep trees
// do not grow the goroutine stack.
func Walk(root *Node, fn func(n *Node, path []int)) {
	type frame struct {
		node *Node
		path []int
	}

	stack := []frame{{node: root, path: []int{}}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(f.node, f.path)

		// Push children in reverse so that child 0 comes off first.
		// Clipping forces every child to get its own copy of the path.
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node: f.node.Children[i],
				path: append(slices.Clip(f.path), i),
			})
		}
	}
}

// Labels reports the code word for each of the numItems items
// in the tree rooted at root.
//
// labels[i] is the label for item i,
// specified as indexes into the alphabet.
// For example, given a binary alphabet {a b},
// the label {0 1 0} means "aba".
// An item that is the root of its tree has an empty label.
func Labels(root *Node, numItems int) (labels [][]int) {
	labels = make([][]int, numItems)
	Walk(root, func(n *Node, path []int) {
		if i := n.Index; i >= 0 {
			labels[i] = path
		}
	})
	return labels
}

// Label generates unique prefix-free labels for items given their
// frequencies.
//
// base is the number of symbols in the alphabet and must be at least 2.
// For len(freqs) items, freqs[i] specifies the frequency of item i.
// Items with higher frequencies will be assigned shorter labels.
// See Labels for the shape of the result.
func Label(base int, freqs []int) (labels [][]int) {
	return Labels(Build(base, freqs), len(freqs))
}
