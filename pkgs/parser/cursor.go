// Package parser implements the recursive-descent, error-recovering
// parser that turns a flat token sequence into a green syntax tree plus
// an ordered list of diagnostics.
package parser

import (
	"iter"

	"github.com/aledsdavies/jsontree/pkgs/errs"
	"github.com/aledsdavies/jsontree/pkgs/green"
	"github.com/aledsdavies/jsontree/pkgs/lexer"
)

// Parser pulls tokens lazily from the lexer, folding whitespace and
// comments into BackgroundList values and surfacing the next "foreground"
// (value-bearing or structural) token with one token of lookahead.
type Parser struct {
	source string
	pull   func() (green.Symbol, bool)
	stop   func()
	pos    int
	errors []errs.Record

	have     bool
	tok      green.Symbol
	abs      int
	bg       *green.BackgroundList
	foundTok bool
}

// New creates a parser pulling from source's token sequence.
func New(source string) *Parser {
	next, stop := iter.Pull(lexer.Tokenize(source))
	return &Parser{source: source, pull: next, stop: stop}
}

// fill ensures the one-token lookahead buffer holds the next foreground
// token (or the EOF marker), accumulating any intervening background and
// recording the errors carried by background/error tokens along the way.
func (p *Parser) fill() {
	if p.have {
		return
	}
	var items []green.Background
	for {
		raw, ok := p.pull()
		if !ok {
			p.tok, p.bg, p.foundTok = nil, green.NewBackgroundList(items), false
			p.abs = p.pos
			p.have = true
			return
		}
		start := p.pos
		p.pos += raw.Len()
		switch t := raw.(type) {
		case *green.Whitespace:
			items = append(items, t)
		case *green.Comment:
			items = append(items, t)
		case *green.UnterminatedBlockComment:
			items = append(items, t)
			p.errors = append(p.errors, t.Errors(start)...)
		case *green.ErrorString:
			for _, se := range t.Errors() {
				p.errors = append(p.errors, errs.New(se.Code, start+se.Start, se.Length, se.Params...))
			}
			p.tok, p.abs, p.bg, p.foundTok = raw, start, green.NewBackgroundList(items), true
			p.have = true
			return
		default:
			p.tok, p.abs, p.bg, p.foundTok = raw, start, green.NewBackgroundList(items), true
			p.have = true
			return
		}
	}
}

// peek returns the next foreground token (with its absolute start and
// preceding background) without consuming it.
func (p *Parser) peek() (tok green.Symbol, abs int, bg *green.BackgroundList, ok bool) {
	p.fill()
	return p.tok, p.abs, p.bg, p.foundTok
}

// consume returns what peek would and clears the lookahead buffer.
func (p *Parser) consume() (tok green.Symbol, abs int, bg *green.BackgroundList, ok bool) {
	p.fill()
	tok, abs, bg, ok = p.tok, p.abs, p.bg, p.foundTok
	p.have, p.tok, p.bg = false, nil, nil
	return
}

func (p *Parser) rawSubstring(start, length int) string {
	return p.source[start : start+length]
}

func isComma(sym green.Symbol) bool {
	_, ok := sym.(*green.Comma)
	return ok
}

func isColon(sym green.Symbol) bool {
	_, ok := sym.(*green.Colon)
	return ok
}

func isStructuralKind(sym green.Symbol, kind green.StructuralKind) bool {
	s, ok := sym.(*green.Structural)
	return ok && s.Kind() == kind
}
