package treefx

// Tree is the generated branch hierarchy plus its decorations. Topology is
// fixed once TreeGenerator returns it.
type Tree struct {
	// Generations holds breadth-first layers; Generations[0] is the root.
	Generations [][]*Branch
	Leaves      []*Leaf
	Flowers     []*Flower
}

func newTree(generations int) *Tree {
	return &Tree{Generations: make([][]*Branch, generations)}
}

// Root returns the trunk, or nil for an empty tree.
func (t *Tree) Root() *Branch {
	if len(t.Generations) == 0 || len(t.Generations[0]) == 0 {
		return nil
	}
	return t.Generations[0][0]
}

// Branches returns every branch in generation order.
func (t *Tree) Branches() []*Branch {
	var out []*Branch
	for _, gen := range t.Generations {
		out = append(out, gen...)
	}
	return out
}

// NumBranches returns the total branch count.
func (t *Tree) NumBranches() int {
	n := 0
	for _, gen := range t.Generations {
		n += len(gen)
	}
	return n
}

// Crown returns the branches that spawned no children. It is derived on
// each call rather than stored.
func (t *Tree) Crown() []*Branch {
	var out []*Branch
	for _, gen := range t.Generations {
		for _, b := range gen {
			if len(b.children) == 0 {
				out = append(out, b)
			}
		}
	}
	return out
}

// NumPetals returns the petal count across all flowers.
func (t *Tree) NumPetals() int {
	n := 0
	for _, f := range t.Flowers {
		n += len(f.Petals)
	}
	return n
}
