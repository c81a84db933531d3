package errs

// ParamKind tags which field of Parameter is populated.
type ParamKind int

const (
	ParamChar ParamKind = iota
	ParamString
	ParamUntyped
)

// Parameter is one entry in a Record's ordered parameter list. Exactly
// one of Char, Str, or Value is meaningful, selected by Kind. Str is a
// pointer so a present-but-null string parameter (rendered as a
// distinguished "null" token by external formatters) can be represented
// distinctly from "no string".
type Parameter struct {
	Kind  ParamKind
	Char  rune
	Str   *string
	Value any
}

// CharParam builds a Parameter carrying a single rune, used for
// offending characters in lexical diagnostics.
func CharParam(c rune) Parameter {
	return Parameter{Kind: ParamChar, Char: c}
}

// StringParam builds a Parameter carrying a string, or a null marker if
// s is nil.
func StringParam(s *string) Parameter {
	return Parameter{Kind: ParamString, Str: s}
}

// UntypedParam builds a Parameter carrying an arbitrary value for
// diagnostics that don't fit Char or String.
func UntypedParam(v any) Parameter {
	return Parameter{Kind: ParamUntyped, Value: v}
}

// Record is one diagnostic produced during tokenization or parsing. Start
// and Length are always absolute offsets into the source, never relative
// to an enclosing node.
type Record struct {
	Code       Code
	Severity   Severity
	Start      int
	Length     int
	Parameters []Parameter
}

// New builds a Record at the code's default severity.
func New(code Code, start, length int, params ...Parameter) Record {
	return Record{
		Code:       code,
		Severity:   DefaultSeverity(code),
		Start:      start,
		Length:     length,
		Parameters: params,
	}
}
