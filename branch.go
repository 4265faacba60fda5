package treefx

import "math"

// BranchKind identifies how a branch was spawned from its parent.
type BranchKind uint8

const (
	BranchRoot BranchKind = iota
	BranchTop
	BranchLeft
	BranchRight
)

func (k BranchKind) String() string {
	switch k {
	case BranchRoot:
		return "root"
	case BranchTop:
		return "top"
	case BranchLeft:
		return "left"
	case BranchRight:
		return "right"
	default:
		return "unknown"
	}
}

// Branch geometry constants.
const (
	topLengthRatio   = 0.8
	sideLengthRatio  = 0.6
	topAngleJitter   = 10 // degrees, passed to BoundedJitter
	sideAngleMean    = 35 // degrees
	sideAngleDev     = 10 // degrees
	droopMaxDepth    = 4  // drooping side branches only below this depth
	droopRatioMean   = 0.3
	droopRatioDev    = 0.1
	droopRatioMin    = 0.05
	droopRatioMax    = 0.95
	roundCapMaxDepth = 5
	strokeDivisor    = 25 // visible stroke width is Length / strokeDivisor
)

// BranchStroke is the bark color of every branch line.
var BranchStroke = Color{0.4, 0.1, 0.1, 1}

// Branch is one line segment of the tree. Structural fields are fixed at
// construction; only the nodes' visual properties change afterwards.
type Branch struct {
	Depth       int
	Kind        BranchKind
	Length      float64
	Offset      float64 // distance along the parent where this branch starts
	LocalAngle  float64 // degrees, relative to the parent
	GlobalAngle float64 // degrees, LocalAngle + parent.GlobalAngle
	GlobalH     float64 // accumulated vertical offset of the base

	node     *Node // placement and sway
	line     *Node // the visible segment
	children []*Branch
}

// newRootBranch creates the trunk. Its heading is cfg.RootAngle, so the root
// node is turned away from straight up by RootAngle-90 degrees.
func newRootBranch(cfg TreeConfig) *Branch {
	b := &Branch{
		Kind:        BranchRoot,
		Length:      cfg.RootLength,
		GlobalAngle: cfg.RootAngle,
	}
	b.build()
	b.node.Y = cfg.RootOffset
	b.node.Rotation = degToRad(cfg.RootAngle - 90)
	return b
}

// newBranch spawns a child of parent. depth is the child's generation index.
func newBranch(parent *Branch, kind BranchKind, depth int, rng *Rand) *Branch {
	b := &Branch{Depth: depth, Kind: kind}
	l := parent.Length
	switch kind {
	case BranchTop:
		b.Offset = l
		b.Length = l * topLengthRatio
		b.LocalAngle = rng.BoundedJitter(topAngleJitter)
		b.GlobalAngle = b.LocalAngle + parent.GlobalAngle
	default:
		b.Offset = l - rng.BoundedGaussian(0, l, l/10, l/10)
		sign := 1.0
		if kind == BranchRight {
			sign = -1
		}
		b.LocalAngle = rng.Gaussian(sideAngleMean, sideAngleDev) * sign
		b.GlobalAngle = b.LocalAngle + parent.GlobalAngle
		if (b.GlobalAngle < 0 || b.GlobalAngle > 180) && depth < droopMaxDepth {
			b.Length = l * rng.BoundedGaussian(droopRatioMin, droopRatioMax, droopRatioMean, droopRatioDev)
		} else {
			b.Length = l * sideLengthRatio
		}
	}
	b.GlobalH = b.Offset*math.Cos(math.Pi/2-degToRad(parent.GlobalAngle)) + parent.GlobalH

	b.build()
	b.node.Y = b.Offset
	b.node.Rotation = degToRad(b.LocalAngle)
	parent.node.AddChild(b.node)
	parent.children = append(parent.children, b)
	return b
}

func (b *Branch) build() {
	b.node = NewGroup("branch")
	b.node.UserData = b
	b.line = NewLine("branch-line")
	b.line.StrokeColor = BranchStroke
	b.line.RoundCap = b.Depth < roundCapMaxDepth
	b.line.StrokeWidth = 0
	b.line.EndY = 0
	b.node.AddChild(b.line)
}

// Node returns the branch's placement node. Children, leaves and flowers
// hang from it, so rotating it sways the whole subtree.
func (b *Branch) Node() *Node {
	return b.node
}

// Line returns the visible segment.
func (b *Branch) Line() *Node {
	return b.line
}

// Children returns the branches spawned from b in creation order.
func (b *Branch) Children() []*Branch {
	return b.children
}

// StrokeWidth is the visible line width once the branch starts growing.
func (b *Branch) StrokeWidth() float64 {
	return b.Length / strokeDivisor
}
