package treefx

// darkLeafHeight is the GlobalH below which leaves are usually darker.
const darkLeafHeight = 400

// Leaf is an ellipse hanging along its branch, hidden until spring.
type Leaf struct {
	Branch *Branch
	Spring Color
	Autumn Color

	node *Node
}

func newLeaf(b *Branch, rng *Rand) *Leaf {
	r := rng.Float64()*0.5 + 0.3
	autumn := RGB(rng.Float64()*0.1+0.8, r, r/2)

	spring := RGB(rng.Float64()*0.5, rng.Float64()*0.5+0.5, 0)
	if b.GlobalH < darkLeafHeight && rng.Float64() < 0.8 {
		spring = spring.Darker()
	}

	half := b.Length / 2
	n := NewEllipse("leaf", 2, half)
	n.Y = half
	n.ScaleX = 0
	n.ScaleY = 0
	n.Color = spring
	b.node.AddChild(n)

	l := &Leaf{Branch: b, Spring: spring, Autumn: autumn, node: n}
	n.UserData = l
	return l
}

// Node returns the leaf ellipse.
func (l *Leaf) Node() *Node {
	return l.node
}

// Colors returns the spring and autumn fills.
func (l *Leaf) Colors() (spring, autumn Color) {
	return l.Spring, l.Autumn
}
