package treefx

// Shape is implemented by every generated entity. The entity owns its
// drawable; animation reaches colour, opacity and transform through it.
type Shape interface {
	Node() *Node
}

// Seasonal is a Shape with a spring and an autumn fill.
type Seasonal interface {
	Shape
	Colors() (spring, autumn Color)
}
