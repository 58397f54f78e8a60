package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which element of the object graph a Node describes.
// A node's kind is fixed at construction and never changes for the
// lifetime of the node.
type Kind int

const (
	// KindUnknown is the kind of a node that has not been resolved to a
	// concrete graph element yet. The parser produces unknown-kind nodes
	// for bracketed segments; they are converted to property nodes when
	// the traversal names them (see Path.AddProperty).
	KindUnknown Kind = iota
	// KindBean denotes a bean instance (including the graph root).
	KindBean
	// KindProperty denotes a named field or property of a bean.
	KindProperty
	// KindMethod denotes a method of a bean.
	KindMethod
	// KindConstructor denotes a constructor of a bean.
	KindConstructor
	// KindParameter denotes a single method or constructor parameter.
	KindParameter
	// KindCrossParameter denotes the synthetic element that cross-parameter
	// constraints are anchored at.
	KindCrossParameter
	// KindReturnValue denotes a method or constructor return value.
	KindReturnValue
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBean:
		return "bean"
	case KindProperty:
		return "property"
	case KindMethod:
		return "method"
	case KindConstructor:
		return "constructor"
	case KindParameter:
		return "parameter"
	case KindCrossParameter:
		return "cross-parameter"
	case KindReturnValue:
		return "return value"
	default:
		return "unknown"
	}
}

const (
	// CrossParameterName is the reserved node name identifying the
	// cross-parameter element of a method.
	CrossParameterName = "<cross-parameter>"
	// ReturnValueName is the reserved node name identifying a method
	// return value.
	ReturnValueName = "<return value>"

	indexOpen  = "["
	indexClose = "]"
	separator  = "."
)

// Node is one step of a graph location. A node carries an optional name,
// iterable markers (index, key, or a generic in-iterable flag), and for
// method-related kinds a parameter index or the parameter type list used
// to disambiguate overloads.
//
// The empty name means "anonymous"; the grammar in this package never
// produces named nodes with empty names, so no ambiguity arises.
type Node struct {
	kind       Kind
	name       string
	inIterable bool
	index      *int
	key        any
	paramIndex int
	paramTypes []string
}

// NewBeanNode returns an anonymous bean node. The root placeholder of
// every path is a bean node.
func NewBeanNode() *Node {
	return &Node{kind: KindBean}
}

// NewPropertyNode returns a property node with the given name.
func NewPropertyNode(name string) *Node {
	return &Node{kind: KindProperty, name: name}
}

// NewMethodNode returns a method node. paramTypes lists the declared
// parameter type descriptors, used to tell overloads apart.
func NewMethodNode(name string, paramTypes []string) *Node {
	return &Node{kind: KindMethod, name: name, paramTypes: cloneTypes(paramTypes)}
}

// NewConstructorNode returns a constructor node carrying the declared
// parameter type descriptors.
func NewConstructorNode(name string, paramTypes []string) *Node {
	return &Node{kind: KindConstructor, name: name, paramTypes: cloneTypes(paramTypes)}
}

// NewParameterNode returns a parameter node for the parameter at the
// given zero-based index.
func NewParameterNode(name string, index int) *Node {
	return &Node{kind: KindParameter, name: name, paramIndex: index}
}

// NewCrossParameterNode returns the synthetic cross-parameter node.
func NewCrossParameterNode() *Node {
	return &Node{kind: KindCrossParameter, name: CrossParameterName}
}

// NewReturnValueNode returns a return-value node.
func NewReturnValueNode() *Node {
	return &Node{kind: KindReturnValue, name: ReturnValueName}
}

// NodeAtIndex returns an anonymous node denoting the element at the given
// list index of the preceding step.
func NodeAtIndex(index int) *Node {
	n := &Node{}
	n.SetIndex(index)
	return n
}

// NodeAtKey returns an anonymous node denoting the element under the
// given map key of the preceding step.
func NodeAtKey(key any) *Node {
	n := &Node{}
	n.SetKey(key)
	return n
}

// NewIterableElementNode returns an anonymous node denoting an element of
// a collection whose position is not (yet) known. Both index and key are
// absent; only the in-iterable marker is set.
func NewIterableElementNode() *Node {
	return &Node{inIterable: true}
}

// Kind returns the node's fixed kind.
func (n *Node) Kind() Kind { return n.kind }

// Name returns the node's name, or the empty string for anonymous nodes.
func (n *Node) Name() string { return n.name }

// SetName names the node.
func (n *Node) SetName(name string) { n.name = name }

// InIterable reports whether the node denotes an element of a collection
// or map.
func (n *Node) InIterable() bool { return n.inIterable }

// SetInIterable sets the in-iterable marker without assigning an index or
// key.
func (n *Node) SetInIterable(inIterable bool) { n.inIterable = inIterable }

// Index returns the node's list index, if set.
func (n *Node) Index() (int, bool) {
	if n.index == nil {
		return 0, false
	}
	return *n.index, true
}

// SetIndex assigns a list index to the node. Any key is cleared and the
// in-iterable marker is set.
func (n *Node) SetIndex(index int) {
	n.inIterable = true
	n.index = &index
	n.key = nil
}

// Key returns the node's map key, if set.
func (n *Node) Key() (any, bool) {
	if n.key == nil {
		return nil, false
	}
	return n.key, true
}

// SetKey assigns a map key to the node. Any index is cleared and the
// in-iterable marker is set.
func (n *Node) SetKey(key any) {
	n.inIterable = true
	n.key = key
	n.index = nil
}

// ParameterIndex returns the zero-based parameter position. It is only
// meaningful for parameter nodes.
func (n *Node) ParameterIndex() int { return n.paramIndex }

// ParameterTypes returns the declared parameter type descriptors. It is
// only meaningful for method and constructor nodes.
func (n *Node) ParameterTypes() []string { return n.paramTypes }

// As checks the node against the requested kind. It returns the node
// itself on a match and a *KindMismatchError otherwise; a node is never
// silently coerced to a kind it does not have.
func (n *Node) As(kind Kind) (*Node, error) {
	if n.kind != kind {
		return nil, &KindMismatchError{Want: kind, Got: n.kind}
	}
	return n, nil
}

// clone returns a deep copy of the node.
func (n *Node) clone() *Node {
	c := *n
	if n.index != nil {
		i := *n.index
		c.index = &i
	}
	c.paramTypes = cloneTypes(n.paramTypes)
	return &c
}

// convert returns a copy of the node re-tagged with the given kind. All
// other state, including the iterable markers, is carried over.
func (n *Node) convert(kind Kind) *Node {
	c := n.clone()
	c.kind = kind
	return c
}

// Equal reports structural equality: kind, name, iterable markers, index
// and key must all match. Parameter index and parameter types do not
// participate, mirroring the string form which omits them.
func (n *Node) Equal(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	if n.kind != o.kind || n.name != o.name || n.inIterable != o.inIterable {
		return false
	}
	if (n.index == nil) != (o.index == nil) {
		return false
	}
	if n.index != nil && *n.index != *o.index {
		return false
	}
	return n.key == o.key
}

// appendTo renders the node onto b per the path grammar: iterable markers
// first ("[index]", "[key]" or "[]"), then the name, preceded by a "."
// separator when b is non-empty.
func (n *Node) appendTo(b *strings.Builder) {
	if n.inIterable {
		b.WriteString(indexOpen)
		if n.index != nil {
			b.WriteString(strconv.Itoa(*n.index))
		} else if n.key != nil {
			writeKey(b, n.key)
		}
		b.WriteString(indexClose)
	}
	if n.name != "" {
		if b.Len() > 0 {
			b.WriteString(separator)
		}
		b.WriteString(n.name)
	}
}

// String renders the node alone, per the same rules as Path.String.
func (n *Node) String() string {
	var b strings.Builder
	n.appendTo(&b)
	return b.String()
}

func writeKey(b *strings.Builder, key any) {
	switch k := key.(type) {
	case string:
		b.WriteString(k)
	case int:
		b.WriteString(strconv.Itoa(k))
	default:
		fmt.Fprintf(b, "%v", k)
	}
}

func cloneTypes(types []string) []string {
	if types == nil {
		return nil
	}
	out := make([]string, len(types))
	copy(out, types)
	return out
}
