package parser

import (
	"github.com/aledsdavies/jsontree/pkgs/errs"
	"github.com/aledsdavies/jsontree/pkgs/green"
)

// Parse runs the full recursive-descent parse over source and returns the
// green root value together with every diagnostic collected along the way,
// in the order they were detected. That is mostly source order, but a
// map entry's MissingPropertyKey is reported only after the entry's value
// sections have been parsed.
func Parse(source string) (*green.MultiValue, []errs.Record) {
	p := New(source)
	defer p.stop()
	root, _, _ := p.parseMultiValue(errs.ExpectedEndOfInput)
	if tok, abs, _, ok := p.peek(); ok {
		p.errors = append(p.errors, errs.New(errs.ExpectedEndOfInput, abs, tok.Len()))
	}
	return root, p.errors
}

// parseMultiValue implements one "slot": a single value, or a run of
// values separated only by background (each extra value past the first
// is a recovery case reported under dupCode). It returns the built slot,
// whether any value was actually found, and the absolute position of the
// first content found (or of the token that failed the value-starter
// test, used by callers for anchoring diagnostics).
func (p *Parser) parseMultiValue(dupCode errs.Code) (*green.MultiValue, bool, int) {
	tok, abs, bg0, ok := p.peek()
	if !ok || !green.IsValueStarter(tok) {
		slot := green.NewMultiValue(
			[]*green.ValueWithBackground{green.NewValueWithBackground(bg0, green.Missing)},
			green.EmptyBackground,
		)
		return slot, false, abs
	}
	p.consume()
	val := p.parseValue(tok, abs)
	values := []*green.ValueWithBackground{green.NewValueWithBackground(bg0, val)}
	firstAbs := abs

	for {
		tok2, abs2, bg2, ok2 := p.peek()
		if !ok2 || !green.IsValueStarter(tok2) {
			return green.NewMultiValue(values, bg2), true, firstAbs
		}
		p.consume()
		p.errors = append(p.errors, errs.New(dupCode, abs2, tok2.Len()))
		val2 := p.parseValue(tok2, abs2)
		values = append(values, green.NewValueWithBackground(bg2, val2))
	}
}

// parseValue wraps an already-consumed value-starter token into a
// GreenValue, recursing into parseList/parseMap for opening brackets.
func (p *Parser) parseValue(tok green.Symbol, abs int) green.Value {
	switch t := tok.(type) {
	case *green.Boolean:
		return t
	case *green.IntegerLiteral:
		return t
	case *green.StringLiteral:
		return t
	case *green.ErrorString:
		return t
	case *green.UnknownSymbol:
		p.errors = append(p.errors, errs.New(errs.UnexpectedSymbol, abs, t.Len(), errs.CharParam(t.Rune())))
		return t
	case *green.UnknownValueToken:
		text := t.Text()
		p.errors = append(p.errors, errs.New(errs.UnrecognizedValue, abs, t.Len(), errs.StringParam(&text)))
		return t
	case *green.Structural:
		switch t.Kind() {
		case green.OpenBrace:
			return p.parseMap(abs)
		case green.OpenBracket:
			return p.parseList(abs)
		}
	}
	panic("parser: parseValue called on a non-value-starter token")
}

// parseList implements one array: a separated sequence of value slots
// terminated by ']', EOF, or an unexpected control symbol.
func (p *Parser) parseList(openAbs int) *green.List {
	var items []*green.MultiValue
	missingClose := false

loop:
	for {
		item, hasValue, _ := p.parseMultiValue(errs.MultipleValues)
		items = append(items, item)

		tok, abs, _, ok := p.peek()
		switch {
		case !ok:
			p.errors = append(p.errors, errs.New(errs.UnexpectedEofInArray, p.pos, 0))
			missingClose = true
			break loop
		case isComma(tok):
			p.consume()
			if !hasValue {
				p.errors = append(p.errors, errs.New(errs.MissingValue, abs, tok.Len()))
			}
			continue loop
		case isStructuralKind(tok, green.CloseBracket):
			p.consume()
			missingClose = false
			break loop
		default:
			p.errors = append(p.errors, errs.New(errs.ControlSymbolInArray, abs, tok.Len()))
			missingClose = true
			break loop
		}
	}

	return green.NewList(green.NewSeparatedSpanList(items, green.CommaSymbol), missingClose)
}

// parseMap implements one object: a separated sequence of key/value
// entries terminated by '}', EOF, or an unexpected control symbol.
func (p *Parser) parseMap(openAbs int) *green.Map {
	var entries []*green.KeyValue
	seenKeys := map[string]bool{}
	missingClose := false

loop:
	for {
		keySlot, gotKey, keyAbs := p.parseMultiValue(errs.MultiplePropertyKeys)

		var validKey *green.StringLiteral
		if gotKey {
			first := keySlot.Values()[0].Content
			if sl, isStr := first.(*green.StringLiteral); isStr {
				if seenKeys[sl.Value()] {
					raw := p.rawSubstring(keyAbs, sl.Len())
					p.errors = append(p.errors, errs.New(errs.PropertyKeyAlreadyExists, keyAbs, sl.Len(), errs.StringParam(&raw)))
				} else {
					seenKeys[sl.Value()] = true
					validKey = sl
				}
			} else {
				p.errors = append(p.errors, errs.New(errs.InvalidPropertyKey, keyAbs, first.Len()))
			}
		}

		sections := []*green.MultiValue{keySlot}
		gotValue := false
		colonCount := 0
		for {
			tok, abs, _, ok := p.peek()
			if !ok || !isColon(tok) {
				break
			}
			p.consume()
			if colonCount >= 1 {
				p.errors = append(p.errors, errs.New(errs.MultiplePropertyKeySections, abs, tok.Len()))
			}
			valueSlot, hasValue, _ := p.parseMultiValue(errs.MultipleValues)
			sections = append(sections, valueSlot)
			if hasValue {
				gotValue = true
			}
			colonCount++
		}

		// An entry is "touched" once it produced a key or consumed at
		// least one colon; an empty map's synthetic placeholder entry is
		// never touched and so never reports missing-key/value.
		touched := gotKey || colonCount > 0

		tok, abs, _, ok := p.peek()
		finish := func(terminatorLen int) {
			if touched && !gotKey {
				p.errors = append(p.errors, errs.New(errs.MissingPropertyKey, keyAbs, 0))
			}
			if touched && !gotValue {
				mvAbs, mvLen := p.pos, 0
				if ok {
					mvAbs, mvLen = abs, terminatorLen
				}
				p.errors = append(p.errors, errs.New(errs.MissingValue, mvAbs, mvLen))
			}
			entries = append(entries, green.NewKeyValue(validKey, green.NewSeparatedSpanList(sections, green.ColonSymbol)))
		}

		switch {
		case !ok:
			finish(0)
			p.errors = append(p.errors, errs.New(errs.UnexpectedEofInObject, p.pos, 0))
			missingClose = true
			break loop
		case isComma(tok):
			finish(tok.Len())
			p.consume()
			continue loop
		case isStructuralKind(tok, green.CloseBrace):
			finish(tok.Len())
			p.consume()
			missingClose = false
			break loop
		default:
			finish(tok.Len())
			p.errors = append(p.errors, errs.New(errs.ControlSymbolInObject, abs, tok.Len()))
			missingClose = true
			break loop
		}
	}

	return green.NewMap(green.NewSeparatedSpanList(entries, green.CommaSymbol), missingClose)
}
