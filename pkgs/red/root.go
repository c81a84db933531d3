package red

import (
	"github.com/aledsdavies/jsontree/pkgs/errs"
	"github.com/aledsdavies/jsontree/pkgs/green"
)

// Root is the result of a full parse: the red-tree root node wrapping the
// green MultiValue, plus every diagnostic collected during tokenization
// and parsing, in detection order.
type Root struct {
	Syntax *Node
	Errors []errs.Record
}

// NewRoot builds a Root overlaying g. The red root's parent is nil and
// its absolute start is 0.
func NewRoot(g *green.MultiValue, errors []errs.Record) *Root {
	return &Root{Syntax: newNode(g, nil, 0, 0), Errors: errors}
}
