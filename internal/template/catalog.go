package template

import (
	"fmt"
	"sort"
)

// Catalog is the read-only registry of named project templates. Trees are
// registered once at construction; Get hands out deep copies so expansion
// never mutates the registered originals.
type Catalog struct {
	templates map[string]*Node
}

// NewCatalog returns a catalog with the built-in templates registered.
func NewCatalog() *Catalog {
	c := &Catalog{templates: make(map[string]*Node)}
	c.Register("rest_api", restAPITree())
	c.Register("full_stack", fullStackTree())
	return c
}

// Register adds a named template tree. Adding a template requires no
// changes anywhere else; the resolver validates against Names().
func (c *Catalog) Register(name string, root *Node) {
	c.templates[name] = root
}

// Get returns a deep copy of the named template's root node, or
// ErrUnknownTemplate.
func (c *Catalog) Get(name string) (*Node, error) {
	root, ok := c.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return root.Clone(), nil
}

// Names returns the registered template names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
