package treefx

import (
	"math"
	"testing"
)

func generateTree(t *testing.T, cfg TreeConfig, seed uint64) (*Tree, *Node) {
	t.Helper()
	gen, err := NewTreeGenerator(cfg, NewRand(seed))
	if err != nil {
		t.Fatal(err)
	}
	layer := NewGroup("tree")
	return gen.Generate(layer), layer
}

func TestTreeGenerationSizes(t *testing.T) {
	cfg := Default().Tree
	cfg.Generations = 5
	tree, _ := generateTree(t, cfg, 1)

	if len(tree.Generations) != 5 {
		t.Fatalf("generations = %d, want 5", len(tree.Generations))
	}
	want := 1
	for d, gen := range tree.Generations {
		if len(gen) != want {
			t.Errorf("generation %d has %d branches, want %d", d, len(gen), want)
		}
		want *= 3
	}
	if tree.NumBranches() != 1+3+9+27+81 {
		t.Errorf("NumBranches = %d", tree.NumBranches())
	}
	if len(tree.Leaves) != 81 {
		t.Errorf("leaves = %d, want one per last-generation branch (81)", len(tree.Leaves))
	}
	if len(tree.Crown()) != 81 {
		t.Errorf("crown = %d, want 81", len(tree.Crown()))
	}
}

func TestTreeBranchInvariants(t *testing.T) {
	tree, _ := generateTree(t, Default().Tree, 99)
	for d := 1; d < len(tree.Generations); d++ {
		for i, b := range tree.Generations[d] {
			parent := tree.Generations[d-1][i/3]
			if parent.Children()[i%3] != b {
				t.Fatalf("branch %d/%d is not child %d of its parent", d, i, i%3)
			}
			if b.Depth != d {
				t.Errorf("Depth = %d, want %d", b.Depth, d)
			}
			if want := b.LocalAngle + parent.GlobalAngle; math.Abs(b.GlobalAngle-want) > 1e-9 {
				t.Errorf("GlobalAngle = %v, want %v", b.GlobalAngle, want)
			}
			if b.Length >= parent.Length {
				t.Errorf("child length %v not below parent %v", b.Length, parent.Length)
			}
			if b.Offset < 0 || b.Offset > parent.Length {
				t.Errorf("offset %v outside parent of length %v", b.Offset, parent.Length)
			}
			if b.Node().Parent != parent.Node() {
				t.Error("branch node should hang from its parent's node")
			}
		}
	}
}

func TestTreeKindsInOrder(t *testing.T) {
	cfg := Default().Tree
	cfg.Generations = 2
	tree, _ := generateTree(t, cfg, 1)
	kids := tree.Root().Children()
	want := []BranchKind{BranchTop, BranchLeft, BranchRight}
	for i, k := range want {
		if kids[i].Kind != k {
			t.Errorf("child %d is %s, want %s", i, kids[i].Kind, k)
		}
	}
	top := kids[0]
	if top.Offset != tree.Root().Length {
		t.Errorf("top offset = %v, want parent length", top.Offset)
	}
	if math.Abs(top.Length-0.8*tree.Root().Length) > 1e-9 {
		t.Errorf("top length = %v, want 0.8 of parent", top.Length)
	}
	if top.LocalAngle < -9 || top.LocalAngle > 11 {
		t.Errorf("top angle = %v, outside [-9, 11]", top.LocalAngle)
	}
	if kids[1].LocalAngle <= 0 && kids[2].LocalAngle >= 0 {
		t.Error("left should usually lean positive and right negative")
	}
}

func TestSingleGeneration(t *testing.T) {
	cfg := Default().Tree
	cfg.Generations = 1
	cfg.RootAngle = 0
	cfg.FlowerChance = 1
	tree, layer := generateTree(t, cfg, 1)

	if len(tree.Generations) != 1 || tree.NumBranches() != 1 {
		t.Fatalf("generations %d branches %d, want 1 and 1", len(tree.Generations), tree.NumBranches())
	}
	if len(tree.Leaves) != 0 || len(tree.Flowers) != 0 {
		t.Errorf("leaves %d flowers %d, a lone trunk is not decorated", len(tree.Leaves), len(tree.Flowers))
	}
	root := tree.Root()
	if root.GlobalAngle != 0 {
		t.Errorf("root GlobalAngle = %v, want 0", root.GlobalAngle)
	}
	if root.Length != 150 || root.Depth != 0 || root.Kind != BranchRoot {
		t.Errorf("root = %+v", root)
	}
	if layer.NumChildren() != 1 || layer.Children()[0] != root.Node() {
		t.Error("root node should be attached to the layer")
	}
	if root.Node().Y != 30 {
		t.Errorf("root offset = %v, want 30", root.Node().Y)
	}
}

func TestZeroGenerationsIsEmpty(t *testing.T) {
	cfg := Default().Tree
	cfg.Generations = 0
	tree, layer := generateTree(t, cfg, 1)
	if tree.Root() != nil || tree.NumBranches() != 0 || len(tree.Leaves) != 0 {
		t.Errorf("tree = %+v, want empty", tree)
	}
	if layer.NumChildren() != 0 {
		t.Error("nothing should be attached")
	}
}

func TestBranchLinesStartHidden(t *testing.T) {
	tree, _ := generateTree(t, Default().Tree, 4)
	for _, b := range tree.Branches() {
		line := b.Line()
		if line.EndY != 0 || line.StrokeWidth != 0 {
			t.Fatalf("branch line starts at EndY %v width %v, want 0", line.EndY, line.StrokeWidth)
		}
		if line.RoundCap != (b.Depth < 5) {
			t.Errorf("depth %d RoundCap = %v", b.Depth, line.RoundCap)
		}
		if math.Abs(b.StrokeWidth()-b.Length/25) > 1e-12 {
			t.Errorf("StrokeWidth = %v, want L/25", b.StrokeWidth())
		}
	}
}

func TestLeavesAndFlowers(t *testing.T) {
	cfg := Default().Tree
	cfg.Generations = 4
	cfg.FlowerChance = 1
	tree, _ := generateTree(t, cfg, 8)

	if len(tree.Flowers) != len(tree.Leaves) {
		t.Fatalf("flowers = %d, want one per leaf with chance 1", len(tree.Flowers))
	}
	for _, l := range tree.Leaves {
		n := l.Node()
		if n.ScaleX != 0 || n.ScaleY != 0 {
			t.Error("leaves start scaled to zero")
		}
		if n.RadiusX != 2 || n.RadiusY != l.Branch.Length/2 || n.Y != l.Branch.Length/2 {
			t.Errorf("leaf geometry = (%v, %v) at %v", n.RadiusX, n.RadiusY, n.Y)
		}
		if n.Color != l.Spring {
			t.Error("leaf should start in its spring color")
		}
	}
	for _, f := range tree.Flowers {
		if len(f.Petals) != 2*PetalPairs+1 {
			t.Fatalf("petals = %d, want %d", len(f.Petals), 2*PetalPairs+1)
		}
		for _, p := range f.Petals {
			if p.Node().Alpha != 0 {
				t.Error("petals start transparent")
			}
		}
		if f.Petals[len(f.Petals)-1].Node().Color != ColorPink {
			t.Error("last petal is the pink centre")
		}
	}
	if tree.NumPetals() != len(tree.Flowers)*(2*PetalPairs+1) {
		t.Errorf("NumPetals = %d", tree.NumPetals())
	}

	cfg.FlowerChance = 0
	tree, _ = generateTree(t, cfg, 8)
	if len(tree.Flowers) != 0 {
		t.Errorf("flowers = %d with chance 0", len(tree.Flowers))
	}
}

func TestTreeDeterministic(t *testing.T) {
	a, _ := generateTree(t, Default().Tree, 21)
	b, _ := generateTree(t, Default().Tree, 21)
	ab, bb := a.Branches(), b.Branches()
	if len(ab) != len(bb) || len(a.Flowers) != len(b.Flowers) {
		t.Fatal("same seed should give the same tree")
	}
	for i := range ab {
		if ab[i].Length != bb[i].Length || ab[i].LocalAngle != bb[i].LocalAngle {
			t.Fatalf("branch %d differs", i)
		}
	}
}

func TestNewTreeGeneratorRejectsInvalid(t *testing.T) {
	cfg := Default().Tree
	cfg.Generations = -1
	if _, err := NewTreeGenerator(cfg, NewRand(1)); err == nil {
		t.Error("negative generations should fail")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("nil Rand should panic")
		}
	}()
	NewTreeGenerator(Default().Tree, nil)
}

func TestGrassGenerator(t *testing.T) {
	cfg := Default().Grass
	gen, err := NewGrassGenerator(cfg, NewRand(2))
	if err != nil {
		t.Fatal(err)
	}
	layer := NewGroup("grass")
	grass := gen.Generate(layer)
	if len(grass) != cfg.Count || layer.NumChildren() != cfg.Count {
		t.Fatalf("blades = %d attached %d, want %d", len(grass), layer.NumChildren(), cfg.Count)
	}
	var left, right int
	for _, b := range grass {
		if b.X < 1-cfg.Width || b.X > 1+cfg.Width {
			t.Errorf("X = %v outside the ground strip", b.X)
		}
		if strip := b.X + cfg.Width - 1; strip < 0 || strip > 2*cfg.Width {
			t.Errorf("strip offset = %v, want within [0, %v]", strip, 2*cfg.Width)
		}
		if b.X < 0 {
			left++
		} else {
			right++
		}
		if b.Y < 1-cfg.Band+cfg.Base || b.Y > 1+cfg.Band+cfg.Base {
			t.Errorf("Y = %v outside the band", b.Y)
		}
		nominal := cfg.Height - b.Y/2
		if b.H < 0.7*nominal-1e-9 || b.H > 1.3*nominal+1e-9 {
			t.Errorf("H = %v, nominal %v", b.H, nominal)
		}
		if b.Node().Color != b.Autumn {
			t.Error("blades start in their autumn color")
		}
		if b.Node().X != b.X || b.Node().Y != b.Y {
			t.Error("node should sit at the blade root")
		}
	}
	if cfg.Count >= 100 && (left == 0 || right == 0) {
		t.Errorf("blades left %d right %d, want both sides of the trunk", left, right)
	}
}

func TestGrassZeroCount(t *testing.T) {
	cfg := Default().Grass
	cfg.Count = 0
	gen, err := NewGrassGenerator(cfg, NewRand(2))
	if err != nil {
		t.Fatal(err)
	}
	if grass := gen.Generate(nil); len(grass) != 0 {
		t.Errorf("blades = %d, want 0", len(grass))
	}
	cfg.Count = -1
	if _, err := NewGrassGenerator(cfg, NewRand(2)); err == nil {
		t.Error("negative count should fail")
	}
}
