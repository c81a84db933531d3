// Package jsontree parses a permissive, error-tolerant JSON superset into
// a two-layer syntax tree: an immutable, position-independent green tree
// and a lazily-materialized, position-aware red overlay built for editor
// tooling (incremental highlighting, diagnostics, range queries) rather
// than one-shot decoding.
package jsontree

import (
	"iter"

	"github.com/aledsdavies/jsontree/pkgs/errs"
	"github.com/aledsdavies/jsontree/pkgs/green"
	"github.com/aledsdavies/jsontree/pkgs/lexer"
	"github.com/aledsdavies/jsontree/pkgs/parser"
	"github.com/aledsdavies/jsontree/pkgs/red"
)

// Root is the result of Parse: the red-tree root plus every diagnostic
// collected while tokenizing and parsing, in detection order.
type Root = red.Root

// Record is one diagnostic: a code, a severity, an absolute span, and a
// typed parameter list.
type Record = errs.Record

// Parse tokenizes and parses source, recovering from errors locally
// rather than aborting, and returns the resulting red syntax tree
// together with every diagnostic found along the way.
func Parse(source string) *Root {
	g, errors := parser.Parse(source)
	return red.NewRoot(g, errors)
}

// Tokenize returns a lazy sequence of green terminal symbols covering
// source in full: the emitted lengths sum to len(source), with no gaps
// and no overlaps between consecutive tokens.
func Tokenize(source string) iter.Seq[green.Symbol] {
	return lexer.Tokenize(source)
}

// TokenizeToSlice drains Tokenize into a slice, for callers that want the
// whole token run at once rather than pulling it lazily.
func TokenizeToSlice(source string) []green.Symbol {
	return lexer.TokenizeToSlice(source)
}
