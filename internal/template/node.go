package template

// Kind discriminates the two Node variants.
type Kind int

const (
	// KindDir is a directory node; Content is unused.
	KindDir Kind = iota
	// KindFile is a file node; Children is unused.
	KindFile
)

// Node is one entry in a template tree: either a directory with ordered
// children or a file with content. Names and content may contain
// {{token}} placeholders that the rendering engine substitutes.
//
// Catalog trees are static data owned by the catalog; Get hands out deep
// copies so callers can graft blueprint sub-trees without mutating the
// originals.
type Node struct {
	Name     string
	Kind     Kind
	Content  string
	Children []*Node
}

// Dir builds a directory node with the given children, in order.
func Dir(name string, children ...*Node) *Node {
	return &Node{Name: name, Kind: KindDir, Children: children}
}

// File builds a file node with the given content.
func File(name, content string) *Node {
	return &Node{Name: name, Kind: KindFile, Content: content}
}

// Clone returns a deep copy of the node and all its children.
func (n *Node) Clone() *Node {
	out := &Node{Name: n.Name, Kind: n.Kind, Content: n.Content}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Add appends a child, preserving insertion order.
func (n *Node) Add(child *Node) {
	n.Children = append(n.Children, child)
}

// Files returns the number of file nodes in the tree, used to size the
// progress display before rendering.
func (n *Node) Files() int {
	if n.Kind == KindFile {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += c.Files()
	}
	return total
}
