package path

import (
	"errors"
	"fmt"
)

// ErrNoLeaf is returned by Path.RemoveLeaf when the path is root or
// structurally empty and therefore has no removable leaf.
var ErrNoLeaf = errors.New("path has no removable leaf")

// SyntaxError reports a path expression that does not conform to the
// grammar, including expressions that yield zero segments.
type SyntaxError struct {
	// Expr is the expression that failed to parse.
	Expr string

	// Pos is the byte offset the parser stopped at.
	Pos int

	// Msg describes what was expected.
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid path expression %q at offset %d: %s", e.Expr, e.Pos, e.Msg)
}

// KindMismatchError reports a node accessed as a kind-variant it does
// not have.
type KindMismatchError struct {
	// Want is the requested kind.
	Want Kind

	// Got is the node's actual kind.
	Got Kind
}

// Error implements the error interface.
func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("node kind %s requested as %s", e.Got, e.Want)
}
