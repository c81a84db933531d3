// Package lexer implements the character-classifier-driven tokenizer:
// a small state machine (Default / InString / InSingleLineComment /
// InBlockComment) that turns source text into a flat, lazy sequence of
// green terminal symbols.
package lexer

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/aledsdavies/jsontree/pkgs/charclass"
	"github.com/aledsdavies/jsontree/pkgs/green"
)

// The tokenizer never parks mid-construct between calls to next(): InString
// and the comment modes run to completion (closing quote, newline, or EOF)
// within a single next() call, so the lexer only needs to track where it is
// in the Default-mode run, not which mode it's in.
type lexer struct {
	src         string
	pos         int
	firstUnused int
	inClass     charclass.Class
}

// Tokenize returns a lazy sequence of green terminal symbols covering
// source in full: the emitted lengths sum to len(source), with no gaps
// and no overlaps. Iteration stops early if the consumer's yield
// function returns false.
func Tokenize(source string) iter.Seq[green.Symbol] {
	return func(yield func(green.Symbol) bool) {
		lx := &lexer{src: source, inClass: charclass.Whitespace}
		for {
			sym, ok := lx.next()
			if !ok {
				return
			}
			if !yield(sym) {
				return
			}
		}
	}
}

// TokenizeToSlice drains Tokenize into a slice, for callers that want
// the whole token run at once rather than pulling it lazily.
func TokenizeToSlice(source string) []green.Symbol {
	out := make([]green.Symbol, 0, len(source)/3+1)
	for sym := range Tokenize(source) {
		out = append(out, sym)
	}
	return out
}

// next produces the single next terminal symbol, or (nil, false) once
// the source is fully consumed.
func (lx *lexer) next() (green.Symbol, bool) {
	for {
		if lx.pos >= len(lx.src) {
			if lx.firstUnused < lx.pos {
				return lx.flushRun(lx.pos), true
			}
			return nil, false
		}
		r, w := decodeRune(lx.src, lx.pos)
		cls := charclass.Of(r)
		if cls == lx.inClass {
			lx.pos += w
			continue
		}
		if lx.firstUnused < lx.pos {
			return lx.flushRun(lx.pos), true
		}
		if cls != charclass.Symbol {
			lx.inClass = cls
			lx.pos += w
			continue
		}
		switch r {
		case '[':
			lx.pos += w
			lx.firstUnused = lx.pos
			return green.OpenBracketSymbol, true
		case ']':
			lx.pos += w
			lx.firstUnused = lx.pos
			return green.CloseBracketSymbol, true
		case '{':
			lx.pos += w
			lx.firstUnused = lx.pos
			return green.OpenBraceSymbol, true
		case '}':
			lx.pos += w
			lx.firstUnused = lx.pos
			return green.CloseBraceSymbol, true
		case ',':
			lx.pos += w
			lx.firstUnused = lx.pos
			return green.CommaSymbol, true
		case ':':
			lx.pos += w
			lx.firstUnused = lx.pos
			return green.ColonSymbol, true
		case '"':
			lx.pos += w
			return lx.scanString()
		case '/':
			r2, w2 := decodeRune(lx.src, lx.pos+w)
			switch r2 {
			case '/':
				lx.pos += w + w2
				return lx.scanSingleLineComment()
			case '*':
				lx.pos += w + w2
				return lx.scanBlockComment()
			default:
				return lx.emitUnknownSymbol(r, w)
			}
		default:
			return lx.emitUnknownSymbol(r, w)
		}
	}
}

func (lx *lexer) emitUnknownSymbol(r rune, w int) (green.Symbol, bool) {
	lx.pos += w
	lx.firstUnused = lx.pos
	lx.inClass = charclass.Whitespace
	return green.NewUnknownSymbol(friendlyDisplay(r), r), true
}

// flushRun closes the in-progress run of lx.inClass-classified
// characters spanning [firstUnused, end) and resets firstUnused.
func (lx *lexer) flushRun(end int) green.Symbol {
	text := lx.src[lx.firstUnused:end]
	lx.firstUnused = end
	if lx.inClass == charclass.Value {
		return interpretValue(text)
	}
	return green.NewWhitespace(len(text))
}

func (lx *lexer) scanSingleLineComment() (green.Symbol, bool) {
	start := lx.firstUnused
	for lx.pos < len(lx.src) {
		r, w := decodeRune(lx.src, lx.pos)
		if r == '\n' || r == '\r' {
			break
		}
		lx.pos += w
	}
	length := lx.pos - start
	lx.firstUnused = lx.pos
	lx.inClass = charclass.Whitespace
	return green.NewComment(length), true
}

func (lx *lexer) scanBlockComment() (green.Symbol, bool) {
	start := lx.firstUnused
	for lx.pos < len(lx.src) {
		if lx.src[lx.pos] == '*' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '/' {
			lx.pos += 2
			length := lx.pos - start
			lx.firstUnused = lx.pos
			lx.inClass = charclass.Whitespace
			return green.NewComment(length), true
		}
		_, w := decodeRune(lx.src, lx.pos)
		lx.pos += w
	}
	length := lx.pos - start
	lx.firstUnused = lx.pos
	lx.inClass = charclass.Whitespace
	return green.NewUnterminatedBlockComment(length), true
}

func decodeRune(s string, i int) (rune, int) {
	r, w := utf8.DecodeRuneInString(s[i:])
	if r == utf8.RuneError && w <= 1 {
		// Malformed byte sequence (including a lone surrogate, which is
		// invalid UTF-8): advance by one byte and treat it as a single
		// value-class code unit, matching how a UTF-16 code-unit scanner
		// would see an unpaired surrogate.
		return 0xD800, 1
	}
	return r, w
}

func friendlyDisplay(r rune) string {
	if unicode.IsPrint(r) {
		return string(r)
	}
	return escapeRune(r)
}
