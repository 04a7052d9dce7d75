package inspect

// Node is one drawn element of the desktop: the desktop itself, a window,
// a bar, a toast or the assistant. Children are ordered back to front.
type Node struct {
	Kind     string         `json:"kind"`
	ID       string         `json:"id,omitempty"`
	Bounds   Bounds         `json:"bounds"`
	State    map[string]any `json:"state,omitempty"`
	Styles   *StyleInfo     `json:"styles,omitempty"`
	Children []*Node        `json:"children,omitempty"`
}

// Bounds is a screen rectangle in cells.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether cell (x, y) lies inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// NewNode creates a node of the given kind.
func NewNode(kind string) *Node {
	return &Node{Kind: kind}
}

// WithID sets the node id.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithBounds sets where the node is drawn.
func (n *Node) WithBounds(x, y, width, height int) *Node {
	n.Bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	return n
}

// WithState records one piece of node state.
func (n *Node) WithState(key string, value any) *Node {
	if n.State == nil {
		n.State = make(map[string]any)
	}
	n.State[key] = value
	return n
}

// WithStyles sets the style the node is drawn with.
func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

// AddChild appends child on top of the existing children.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// At returns the topmost node under cell (x, y), or nil when the point is
// outside n.
func (n *Node) At(x, y int) *Node {
	if !n.Bounds.Contains(x, y) {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if hit := n.Children[i].At(x, y); hit != nil {
			return hit
		}
	}
	return n
}

// Find returns the first node with the given id, depth first.
func (n *Node) Find(id string) *Node {
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}
