package treefx

// TreeGenerator builds a Tree from TreeConfig.
type TreeGenerator struct {
	cfg TreeConfig
	rng *Rand
}

// NewTreeGenerator validates cfg. rng must not be nil.
func NewTreeGenerator(cfg TreeConfig, rng *Rand) (*TreeGenerator, error) {
	if rng == nil {
		panic("treefx: NewTreeGenerator with nil Rand")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &TreeGenerator{cfg: cfg, rng: rng}, nil
}

// Generate builds the tree and attaches its root node to parent (which may
// be nil for a detached tree). Every branch of a generation spawns a top,
// a left and a right child; the last generation carries one leaf per branch
// and, with probability FlowerChance, a flower. A lone trunk is never
// decorated.
func (g *TreeGenerator) Generate(parent *Node) *Tree {
	tree := newTree(g.cfg.Generations)
	if g.cfg.Generations == 0 {
		return tree
	}

	root := newRootBranch(g.cfg)
	if parent != nil {
		parent.AddChild(root.node)
	}
	tree.Generations[0] = []*Branch{root}

	for depth := 1; depth < g.cfg.Generations; depth++ {
		prev := tree.Generations[depth-1]
		gen := make([]*Branch, 0, len(prev)*3)
		for _, p := range prev {
			gen = append(gen,
				newBranch(p, BranchTop, depth, g.rng),
				newBranch(p, BranchLeft, depth, g.rng),
				newBranch(p, BranchRight, depth, g.rng),
			)
		}
		tree.Generations[depth] = gen
	}

	if g.cfg.Generations > 1 {
		g.decorate(tree, tree.Generations[g.cfg.Generations-1])
	}

	logger.Debug("tree generated",
		"generations", len(tree.Generations),
		"branches", tree.NumBranches(),
		"leaves", len(tree.Leaves),
		"flowers", len(tree.Flowers))
	return tree
}

func (g *TreeGenerator) decorate(tree *Tree, last []*Branch) {
	tree.Leaves = make([]*Leaf, 0, len(last))
	for _, b := range last {
		tree.Leaves = append(tree.Leaves, newLeaf(b, g.rng))
		if g.rng.Float64() < g.cfg.FlowerChance {
			tree.Flowers = append(tree.Flowers, newFlower(b, g.rng))
		}
	}
}

// GrassGenerator builds independent grass blades from GrassConfig.
type GrassGenerator struct {
	cfg GrassConfig
	rng *Rand
}

// NewGrassGenerator validates cfg. rng must not be nil.
func NewGrassGenerator(cfg GrassConfig, rng *Rand) (*GrassGenerator, error) {
	if rng == nil {
		panic("treefx: NewGrassGenerator with nil Rand")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &GrassGenerator{cfg: cfg, rng: rng}, nil
}

// Generate builds Count blades and attaches each to parent (which may be nil).
func (g *GrassGenerator) Generate(parent *Node) []*Blade {
	grass := make([]*Blade, 0, g.cfg.Count)
	for i := 0; i < g.cfg.Count; i++ {
		b := newBlade(g.cfg, g.rng)
		if parent != nil {
			parent.AddChild(b.node)
		}
		grass = append(grass, b)
	}
	logger.Debug("grass generated", "blades", len(grass))
	return grass
}
