package lexer

import (
	"math/big"
	"strconv"

	"github.com/aledsdavies/jsontree/pkgs/green"
)

// maxFastDigits bounds the machine-word fast path for integer parsing:
// 18 decimal digits always fits in an int64 regardless of sign, so
// anything at or below that length skips the big.Int allocation.
const maxFastDigits = 18

// interpretValue classifies a value-character run as the boolean
// literals, a (possibly arbitrary-precision) signed integer, or an
// opaque UnknownValueToken.
func interpretValue(text string) green.Symbol {
	switch text {
	case "false":
		return green.FalseSymbol
	case "true":
		return green.TrueSymbol
	}
	if v, ok := parseInteger(text); ok {
		return green.NewIntegerLiteral(v, len(text))
	}
	return green.NewUnknownValueToken(text)
}

func parseInteger(text string) (*big.Int, bool) {
	if text == "" {
		return nil, false
	}
	i := 0
	neg := false
	switch text[0] {
	case '+':
		i = 1
	case '-':
		neg = true
		i = 1
	}
	digits := text[i:]
	if len(digits) == 0 {
		return nil, false
	}
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return nil, false
		}
	}
	if len(digits) <= maxFastDigits {
		n, err := strconv.ParseInt(digits, 10, 64)
		if err == nil {
			if neg {
				n = -n
			}
			return big.NewInt(n), true
		}
	}
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, false
	}
	if neg {
		v.Neg(v)
	}
	return v, true
}
