// Package green implements the immutable, position-independent syntax
// tree: terminal symbols emitted by the tokenizer, the value sum type
// produced by the parser, and the composite nodes (lists, maps,
// key-values, multi-values, background runs) that make up the tree.
//
// Every node in this package exposes only a length. No node stores an
// absolute position; that is the red tree's job (package red).
package green

import "github.com/aledsdavies/jsontree/pkgs/errs"

// Lengthed is implemented by every green node, terminal or composite.
type Lengthed interface {
	Len() int
}

// Symbol is the sum type of terminal symbols emitted by the tokenizer.
// External code discriminates a Symbol's concrete kind through a type
// switch or through Visitor/Accept (see visitor.go).
type Symbol interface {
	Lengthed
	symbol()
}

// Background is the subset of Symbol that occupies source positions but
// carries no value-grammar meaning: whitespace and comments.
type Background interface {
	Symbol
	background()
}

// Whitespace is a maximal run of whitespace-class characters.
type Whitespace struct{ length int }

func (w *Whitespace) Len() int     { return w.length }
func (*Whitespace) symbol()        {}
func (*Whitespace) background()    {}

// Comment is a single-line ("//...") or well-terminated block
// ("/*...*/") comment, including its delimiters.
type Comment struct{ length int }

func (c *Comment) Len() int  { return c.length }
func (*Comment) symbol()     {}
func (*Comment) background() {}

// UnterminatedBlockComment is a block comment ("/*") that ran to
// end-of-input without a closing "*/". Unlike ErrorString it carries no
// errors list directly: its warning is synthesized on demand from an
// absolute start offset, since green nodes cannot store positions.
type UnterminatedBlockComment struct{ length int }

func (u *UnterminatedBlockComment) Len() int  { return u.length }
func (*UnterminatedBlockComment) symbol()     {}
func (*UnterminatedBlockComment) background() {}

// Errors synthesizes this comment's single warning-severity diagnostic,
// anchored at absStart (the comment's absolute start offset, known only
// to whoever is walking the tree or accumulating tokens).
func (u *UnterminatedBlockComment) Errors(absStart int) []errs.Record {
	return []errs.Record{errs.New(errs.UnterminatedMultiLineComment, absStart, u.length)}
}

// StructuralKind identifies which of the four fixed-length bracket
// characters a Structural symbol represents.
type StructuralKind byte

const (
	OpenBracket  StructuralKind = '['
	CloseBracket StructuralKind = ']'
	OpenBrace    StructuralKind = '{'
	CloseBrace   StructuralKind = '}'
)

// Structural is one of the four bracket characters. All instances are
// shared singletons (see singletons.go).
type Structural struct{ kind StructuralKind }

func (s *Structural) Len() int           { return 1 }
func (*Structural) symbol()              {}
func (s *Structural) Kind() StructuralKind { return s.kind }

// Colon is the ':' separator between a key and a value.
type Colon struct{}

func (*Colon) Len() int { return 1 }
func (*Colon) symbol()  {}

// Comma is the ',' separator between list items or map entries.
type Comma struct{}

func (*Comma) Len() int { return 1 }
func (*Comma) symbol()  {}
