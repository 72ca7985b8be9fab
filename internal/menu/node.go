package menu

// Node is a single entry of a built menu tree. The set of implementations is
// closed: *Action, *Submenu and *Separator.
type Node interface {
	// Label returns the leaf path segment the node was created from.
	Label() string
	node()
}

// Action is an invokable leaf.
type Action struct {
	Name     string
	Path     string
	Disabled bool
	Checked  bool
	invoke   func()
}

// Submenu groups child nodes in first-seen order.
type Submenu struct {
	Name     string
	children []Node
}

// Separator marks a visual boundary between siblings.
type Separator struct {
	Name string
}

func (a *Action) Label() string    { return a.Name }
func (s *Submenu) Label() string   { return s.Name }
func (s *Separator) Label() string { return s.Name }

func (*Action) node()    {}
func (*Submenu) node()   {}
func (*Separator) node() {}

// Invoke runs the action's capability. Disabled actions and actions without
// a capability do nothing.
func (a *Action) Invoke() {
	if a == nil || a.Disabled || a.invoke == nil {
		return
	}
	a.invoke()
}

// Enabled reports whether clicking the action should invoke it.
func (a *Action) Enabled() bool {
	return a != nil && !a.Disabled
}

// Children returns the submenu's children in display order. The slice must
// not be modified.
func (s *Submenu) Children() []Node {
	if s == nil {
		return nil
	}
	return s.children
}

// Len returns the number of direct children.
func (s *Submenu) Len() int {
	if s == nil {
		return 0
	}
	return len(s.children)
}

func (s *Submenu) append(n Node) {
	s.children = append(s.children, n)
}

// child finds the first direct child carrying the given label.
func (s *Submenu) child(label string) (Node, bool) {
	for _, n := range s.children {
		if n.Label() == label {
			return n, true
		}
	}
	return nil, false
}

// Walk visits node and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func Walk(node Node, fn func(n Node, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node Node, depth int, fn func(Node, int) bool) {
	if node == nil {
		return
	}
	if !fn(node, depth) {
		return
	}
	if sub, ok := node.(*Submenu); ok {
		for _, child := range sub.children {
			walk(child, depth+1, fn)
		}
	}
}

// CountLeaves counts actions and separators below node. A node that is not a
// submenu counts as a single leaf.
func CountLeaves(node Node) int {
	sub, ok := node.(*Submenu)
	if !ok {
		if node == nil {
			return 0
		}
		return 1
	}
	count := 0
	for _, child := range sub.children {
		count += CountLeaves(child)
	}
	return count
}
