package treefx

// Scene is the top-level object that owns the node tree handed to the
// renderer. The root holds two layers, drawn in order: the tree layer
// (branches, leaves, flowers, falling duplicates) and the grass layer.
//
// Scene coordinates have their origin at the foot of the trunk with Y
// increasing upward. Renderers flip to screen space.
type Scene struct {
	root  *Node
	tree  *Node
	grass *Node
	debug bool
}

// NewScene creates a new scene with a pre-created root and both layers.
func NewScene() *Scene {
	root := NewGroup("root")
	tree := NewGroup("tree")
	grass := NewGroup("grass")
	root.AddChild(tree)
	root.AddChild(grass)
	return &Scene{root: root, tree: tree, grass: grass}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// TreeLayer returns the container holding the tree and falling duplicates.
func (s *Scene) TreeLayer() *Node {
	return s.tree
}

// GrassLayer returns the container holding grass blades.
func (s *Scene) GrassLayer() *Node {
	return s.grass
}

// Update refreshes world transforms and alpha for every dirty subtree. Call
// it after advancing animations and before drawing.
func (s *Scene) Update() {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

// Walk visits visible nodes depth-first in draw order. Returning false from
// fn skips the node's children.
func (s *Scene) Walk(fn func(n *Node) bool) {
	walkVisible(s.root, fn)
}

func walkVisible(n *Node, fn func(n *Node) bool) {
	if !n.Visible {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		walkVisible(child, fn)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and tree depth and child count warnings are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}
