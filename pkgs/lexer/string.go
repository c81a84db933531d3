package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aledsdavies/jsontree/pkgs/charclass"
	"github.com/aledsdavies/jsontree/pkgs/errs"
	"github.com/aledsdavies/jsontree/pkgs/green"
)

// scanString consumes an already-opened string literal (the opening
// quote has been consumed by the caller) and returns either a
// StringLiteral or, if any tokenization error occurred, an ErrorString.
func (lx *lexer) scanString() (green.Symbol, bool) {
	start := lx.firstUnused
	var buf strings.Builder
	var errList []green.StringError

	for {
		if lx.pos >= len(lx.src) {
			errList = append(errList, green.StringError{
				Code:   errs.UnterminatedString,
				Start:  0,
				Length: lx.pos - start,
			})
			return lx.finishString(start, errList, &buf), true
		}
		r, w := decodeRune(lx.src, lx.pos)
		relStart := lx.pos - start
		switch {
		case r == '"':
			lx.pos += w
			return lx.finishString(start, errList, &buf), true
		case r == '\\':
			lx.pos += w
			errList = lx.scanEscape(&buf, start, errList)
		case mustBeEscaped(r):
			errList = append(errList, green.StringError{
				Code:   errs.IllegalControlCharacterInString,
				Start:  relStart,
				Length: w,
				Params: []errs.Parameter{errs.CharParam(r)},
			})
			lx.pos += w
		default:
			buf.WriteRune(r)
			lx.pos += w
		}
	}
}

func (lx *lexer) finishString(start int, errList []green.StringError, buf *strings.Builder) green.Symbol {
	length := lx.pos - start
	lx.firstUnused = lx.pos
	lx.inClass = charclass.Whitespace
	if len(errList) > 0 {
		return green.NewErrorString(length, errList)
	}
	return green.NewStringLiteral(buf.String(), length)
}

// scanEscape handles the character immediately following a consumed
// backslash. backslashRel (returned errors' Start) is always relative to the
// enclosing string literal's opening quote.
func (lx *lexer) scanEscape(buf *strings.Builder, stringStart int, errList []green.StringError) []green.StringError {
	backslashRel := lx.pos - stringStart - 1
	if lx.pos >= len(lx.src) {
		s := "\\"
		return append(errList, green.StringError{
			Code:   errs.UnrecognizedEscapeSequence,
			Start:  backslashRel,
			Length: 1,
			Params: []errs.Parameter{errs.StringParam(&s)},
		})
	}
	r, w := decodeRune(lx.src, lx.pos)
	switch r {
	case '"', '\\', '/':
		buf.WriteRune(r)
		lx.pos += w
		return errList
	case 'b':
		buf.WriteByte('\b')
		lx.pos += w
		return errList
	case 'f':
		buf.WriteByte('\f')
		lx.pos += w
		return errList
	case 'n':
		buf.WriteByte('\n')
		lx.pos += w
		return errList
	case 'r':
		buf.WriteByte('\r')
		lx.pos += w
		return errList
	case 't':
		buf.WriteByte('\t')
		lx.pos += w
		return errList
	case 'v':
		buf.WriteByte('\v')
		lx.pos += w
		return errList
	case 'u':
		lx.pos += w
		hexLen := 0
		for hexLen < 4 && lx.pos+hexLen < len(lx.src) && isHexDigit(lx.src[lx.pos+hexLen]) {
			hexLen++
		}
		if hexLen == 4 {
			val, _ := strconv.ParseUint(lx.src[lx.pos:lx.pos+4], 16, 32)
			buf.WriteRune(rune(val))
			lx.pos += 4
			return errList
		}
		raw := "\\u" + lx.src[lx.pos:lx.pos+hexLen]
		lx.pos += hexLen
		return append(errList, green.StringError{
			Code:   errs.UnrecognizedEscapeSequence,
			Start:  backslashRel,
			Length: 2 + hexLen,
			Params: []errs.Parameter{errs.StringParam(&raw)},
		})
	default:
		raw := "\\" + string(r)
		lx.pos += w
		return append(errList, green.StringError{
			Code:   errs.UnrecognizedEscapeSequence,
			Start:  backslashRel,
			Length: 1 + w,
			Params: []errs.Parameter{errs.StringParam(&raw)},
		})
	}
}

// mustBeEscaped reports whether r may not appear literally inside a
// string and must instead be written as an escape sequence.
func mustBeEscaped(r rune) bool {
	switch {
	case r < 0x20:
		return true
	case r == 0x7F:
		return true
	case r >= 0x80 && r <= 0x9F:
		return true
	case r == 0x2028 || r == 0x2029:
		return true
	case r == '"' || r == '\\':
		return true
	}
	return false
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func escapeRune(r rune) string {
	return fmt.Sprintf(`\u%04x`, r)
}
