// Package path models the location of a constraint violation inside an
// arbitrarily nested object graph.
//
// A Path is an ordered, never-empty sequence of Nodes. Each node is one
// traversal step: a bean, a named property, a collection or map element,
// a method or constructor, one of their parameters, a return value, or
// the synthetic cross-parameter element. The traversal engine builds a
// path incrementally (push on entering a step, pop on leaving); the
// reporting layer renders it with String.
//
// # String grammar
//
// The string form is a stable external contract:
//
//	path    := segment ('.' segment)*
//	segment := name ('[' (index | key)? ']')?
//
// An empty bracket pair denotes an element whose position is unknown.
// There is no escaping; names must not contain '.', '[' or ']'. Parse
// and String round-trip: for any conforming expression,
// String(Parse(expr)) == expr.
//
// # Root state
//
// A path never holds zero nodes. Create returns the root path, a single
// anonymous non-iterable node, and RemoveLeaf restores that placeholder
// when the last real node is removed. IsRootPath identifies the state.
//
// # Basic usage
//
//	p := path.Create()
//	p.AddProperty("orders")
//	p.AddNode(path.NodeAtIndex(2))
//	p.AddProperty("amount")
//	fmt.Println(p) // orders[2].amount
package path
