package path

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Path is a non-empty ordered sequence of nodes identifying one location
// inside an object graph. A path is never structurally empty: the "root"
// state is a single anonymous, non-iterable bean node rather than zero
// nodes, and the mutation operations preserve that invariant.
//
// A Path is not safe for concurrent use; the traversal engine builds one
// per validation run and mutates it synchronously.
type Path struct {
	nodes []*Node
}

// Create returns a new root path: a single anonymous, non-iterable node.
func Create() *Path {
	p := &Path{}
	p.AddNode(NewBeanNode())
	return p
}

// Copy returns a deep copy of p, cloning every node. Copy of nil is nil.
func Copy(p *Path) *Path {
	if p == nil {
		return nil
	}
	c := &Path{nodes: make([]*Node, len(p.nodes))}
	for i, n := range p.nodes {
		c.nodes[i] = n.clone()
	}
	return c
}

// IsRootPath reports whether p points at the graph root: exactly one
// node, anonymous and not in-iterable.
func (p *Path) IsRootPath() bool {
	if len(p.nodes) != 1 {
		return false
	}
	first := p.nodes[0]
	return !first.inIterable && first.name == ""
}

// Len returns the number of nodes in the path.
func (p *Path) Len() int { return len(p.nodes) }

// Nodes returns the path's nodes in order. The returned slice is a view;
// callers must not modify it.
func (p *Path) Nodes() []*Node { return p.nodes }

// Leaf returns the last node of the path, or nil if the path is
// structurally empty (only possible before the first AddNode).
func (p *Path) Leaf() *Node {
	if len(p.nodes) == 0 {
		return nil
	}
	return p.nodes[len(p.nodes)-1]
}

// AddNode appends n to the path. If the path is in root state the
// placeholder root node is discarded first; a path never holds both the
// placeholder and real content.
func (p *Path) AddNode(n *Node) {
	if p.IsRootPath() {
		p.nodes = p.nodes[:0]
	}
	p.nodes = append(p.nodes, n)
}

// AddProperty records that the traversal stepped into the named property.
//
// When the current leaf is a generic iterable element (in-iterable with
// no name yet) the leaf is converted into a property node carrying the
// same iterable markers and the new name, so that an indexed step
// followed by a named step collapses into one ("list[2].field" rather
// than "list[2][].field"). Otherwise a new node is appended: the
// synthetic cross-parameter node if name is the reserved marker, a plain
// property node in every other case.
func (p *Path) AddProperty(name string) {
	if len(p.nodes) > 0 {
		leaf := p.Leaf()
		if leaf.inIterable && leaf.name == "" {
			if leaf.kind != KindProperty {
				leaf = leaf.convert(KindProperty)
				p.nodes[len(p.nodes)-1] = leaf
			}
			leaf.SetName(name)
			return
		}
	}
	if name == CrossParameterName {
		p.AddNode(NewCrossParameterNode())
		return
	}
	p.AddNode(NewPropertyNode(name))
}

// RemoveLeaf removes and returns the last node. It fails with ErrNoLeaf
// when the path is root or structurally empty. If removal would leave the
// sequence empty, a fresh anonymous placeholder is reinserted, so a
// single-real-node path becomes root-equivalent again.
func (p *Path) RemoveLeaf() (*Node, error) {
	if len(p.nodes) == 0 || p.IsRootPath() {
		return nil, ErrNoLeaf
	}
	leaf := p.nodes[len(p.nodes)-1]
	p.nodes = p.nodes[:len(p.nodes)-1]
	if len(p.nodes) == 0 {
		p.nodes = append(p.nodes, NewBeanNode())
	}
	return leaf, nil
}

// WithoutLeaf returns a copy of p minus its last node. Root and
// single-node paths have no meaningful parent; for those the second
// return value is false.
func (p *Path) WithoutLeaf() (*Path, bool) {
	if len(p.nodes) < 2 {
		return nil, false
	}
	c := &Path{nodes: make([]*Node, len(p.nodes)-1)}
	for i, n := range p.nodes[:len(p.nodes)-1] {
		c.nodes[i] = n.clone()
	}
	return c, true
}

// IsSubPathOf reports whether ancestor is a prefix of p: p's nodes begin
// with nodes matching those of ancestor. A root ancestor matches every
// path. Per ancestor node, an absent name acts as a wildcard; an
// in-iterable ancestor node requires the corresponding node of p to be
// in-iterable too, with an absent ancestor index/key acting as a
// wildcard; a non-iterable ancestor node never matches an in-iterable
// node of p.
func (p *Path) IsSubPathOf(ancestor *Path) bool {
	if ancestor.IsRootPath() {
		return true
	}
	if len(p.nodes) < len(ancestor.nodes) {
		return false
	}
	for i, anc := range ancestor.nodes {
		node := p.nodes[i]
		if anc.inIterable {
			if !node.inIterable {
				return false
			}
			if anc.index != nil && (node.index == nil || *anc.index != *node.index) {
				return false
			}
			if anc.key != nil && anc.key != node.key {
				return false
			}
		} else if node.inIterable {
			// The proposed ancestor is not indexed and we are, so the
			// steps cannot match.
			return false
		}
		if anc.name != "" && anc.name != node.name {
			return false
		}
	}
	return true
}

// String renders the path in its canonical form per the grammar:
// iterable markers as "[index]", "[key]" or "[]", names separated by ".".
// For any expression without brackets inside names,
// Parse(expr).String() == expr.
func (p *Path) String() string {
	var b strings.Builder
	for _, n := range p.nodes {
		n.appendTo(&b)
	}
	return b.String()
}

// Equal reports structural equality over the full ordered node sequence.
func (p *Path) Equal(o *Path) bool {
	if p == o {
		return true
	}
	if p == nil || o == nil || len(p.nodes) != len(o.nodes) {
		return false
	}
	for i, n := range p.nodes {
		if !n.Equal(o.nodes[i]) {
			return false
		}
	}
	return true
}

// Hash returns hash of the path consistent with Equal: two structurally
// equal paths hash equal.
func (p *Path) Hash() uint64 {
	h := fnv.New64a()
	for _, n := range p.nodes {
		h.Write([]byte{byte(n.kind)})
		h.Write([]byte(n.name))
		if n.inIterable {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
		if n.index != nil {
			h.Write([]byte(strconv.Itoa(*n.index)))
		}
		if n.key != nil {
			var b strings.Builder
			writeKey(&b, n.key)
			h.Write([]byte(b.String()))
		}
		h.Write([]byte{0xff})
	}
	return h.Sum64()
}
