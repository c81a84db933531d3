package green

import (
	"math/big"

	"github.com/aledsdavies/jsontree/pkgs/errs"
)

// Value is the sum type of everything that can inhabit a value position
// in the grammar. Several terminal Symbol kinds (StringLiteral,
// ErrorString, IntegerLiteral, UnknownValueToken, UnknownSymbol, Boolean)
// are value-starters in the tokenizer's vocabulary and, per the parser's
// parse_value dispatch, wrap directly into a Value without an
// intermediate node — so those types implement both Symbol and Value.
type Value interface {
	Lengthed
	value()
}

// StringLiteral is a well-formed, fully decoded string. length includes
// the surrounding quotes.
type StringLiteral struct {
	decoded string
	length  int
}

// NewStringLiteral builds a StringLiteral from its decoded payload and
// total source length (including quotes).
func NewStringLiteral(decoded string, length int) *StringLiteral {
	return &StringLiteral{decoded: decoded, length: length}
}

func (s *StringLiteral) Len() int      { return s.length }
func (s *StringLiteral) Value() string { return s.decoded }
func (*StringLiteral) symbol()         {}
func (*StringLiteral) value()          {}

// StringError is one tokenization error discovered while scanning a
// string literal, carried as a span relative to the string's own start
// (offset 0 is the opening quote).
type StringError struct {
	Code   errs.Code
	Start  int
	Length int
	Params []errs.Parameter
}

// ErrorString is a string literal in which one or more tokenization
// errors occurred; its decoded content is discarded, only the errors and
// overall length survive.
type ErrorString struct {
	length int
	errors []StringError
}

// NewErrorString builds an ErrorString covering length source bytes
// (including the opening quote and, if present, the closing quote) with
// the given per-error relative spans.
func NewErrorString(length int, errors []StringError) *ErrorString {
	return &ErrorString{length: length, errors: errors}
}

func (e *ErrorString) Len() int              { return e.length }
func (e *ErrorString) Errors() []StringError { return e.errors }
func (*ErrorString) symbol()                 {}
func (*ErrorString) value()                  {}

// IntegerLiteral is an arbitrary-precision integer value.
type IntegerLiteral struct {
	val    *big.Int
	length int
}

func NewIntegerLiteral(v *big.Int, length int) *IntegerLiteral {
	return &IntegerLiteral{val: v, length: length}
}

func (i *IntegerLiteral) Len() int         { return i.length }
func (i *IntegerLiteral) Value() *big.Int  { return i.val }
func (*IntegerLiteral) symbol()            {}
func (*IntegerLiteral) value()             {}

// UnknownValueToken is a value-character run that is neither a boolean
// literal nor a valid integer (e.g. "12ab", "--", "1.2" without float
// support).
type UnknownValueToken struct{ text string }

func NewUnknownValueToken(text string) *UnknownValueToken {
	return &UnknownValueToken{text: text}
}

func (u *UnknownValueToken) Len() int      { return len(u.text) }
func (u *UnknownValueToken) Text() string  { return u.text }
func (*UnknownValueToken) symbol()         {}
func (*UnknownValueToken) value()          {}

// UnknownSymbol is a single unclassifiable character, carrying a
// friendly display form (the character itself if printable, otherwise a
// \uXXXX escape).
type UnknownSymbol struct {
	display string
	raw     rune
}

func NewUnknownSymbol(display string, raw rune) *UnknownSymbol {
	return &UnknownSymbol{display: display, raw: raw}
}

func (u *UnknownSymbol) Len() int        { return 1 }
func (u *UnknownSymbol) Display() string { return u.display }
func (u *UnknownSymbol) Rune() rune      { return u.raw }
func (*UnknownSymbol) symbol()           {}
func (*UnknownSymbol) value()            {}

// Boolean is the true/false literal. Both instances are shared
// singletons (see singletons.go): TrueSymbol has length 4, FalseSymbol
// has length 5.
type Boolean struct{ isTrue bool }

func (b *Boolean) Len() int {
	if b.isTrue {
		return 4
	}
	return 5
}
func (b *Boolean) IsTrue() bool { return b.isTrue }
func (*Boolean) symbol()        {}
func (*Boolean) value()         {}

// MissingValue is the zero-length placeholder the parser inserts where a
// value was expected but absent. It is a value type: all instances
// compare equal.
type MissingValue struct{}

func (MissingValue) Len() int { return 0 }
func (MissingValue) value()   {}

// Missing is the canonical MissingValue instance.
var Missing = MissingValue{}
