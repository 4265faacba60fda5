package treefx

import "fmt"

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("treefx debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is generous: an eight-generation tree nests about a dozen
// levels below the scene root.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold", "depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugMaxChildCount is the layer size above which debug mode warns. An
// eight-generation tree drops 2187 leaf duplicates in autumn, and with every
// crown branch flowering another 11 petals each, so the tree layer peaks
// near 26k children.
const debugMaxChildCount = 1 << 15

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.Warn("node has many children", "node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}
