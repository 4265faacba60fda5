package treefx

// PetalPairs is N in a flower's 2N outer petals.
const PetalPairs = 5

const (
	petalRadiusX  = 2
	petalRadiusY  = 5
	petalDistance = 5
	centreRadius  = 2
)

// Petal is one ellipse of a flower. The last petal of a flower is its centre.
type Petal struct {
	Flower *Flower
	Index  int

	node *Node
}

// Node returns the petal ellipse.
func (p *Petal) Node() *Node {
	return p.node
}

// Flower is a radial group of petals anchored at its branch's midpoint.
// Every petal starts fully transparent.
type Flower struct {
	Branch *Branch
	Color  Color
	Petals []*Petal

	node *Node
}

func newFlower(b *Branch, rng *Rand) *Flower {
	f := &Flower{
		Branch: b,
		Color:  RGB(1, rng.Float64()*0.4+0.6, 1),
		Petals: make([]*Petal, 0, 2*PetalPairs+1),
		node:   NewGroup("flower"),
	}
	f.node.Y = b.Length / 2
	f.node.UserData = f

	count := 2 * PetalPairs
	for i := 0; i < count; i++ {
		n := NewEllipse("petal", petalRadiusX, petalRadiusY)
		if i%2 == 0 {
			n.Color = f.Color
		} else {
			n.Color = f.Color.Saturate()
		}
		// The pivot pushes the petal out along its own axis before rotating.
		n.PivotY = -petalDistance
		n.Rotation = degToRad(float64(360 / count * i))
		f.addPetal(n)
	}
	centre := NewEllipse("petal-centre", centreRadius, centreRadius)
	centre.Color = ColorPink
	f.addPetal(centre)

	b.node.AddChild(f.node)
	return f
}

func (f *Flower) addPetal(n *Node) {
	n.Alpha = 0
	p := &Petal{Flower: f, Index: len(f.Petals), node: n}
	n.UserData = p
	f.node.AddChild(n)
	f.Petals = append(f.Petals, p)
}

// Node returns the flower group.
func (f *Flower) Node() *Node {
	return f.node
}
