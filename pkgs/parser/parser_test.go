package parser

import (
	"testing"

	"github.com/aledsdavies/jsontree/pkgs/errs"
	"github.com/aledsdavies/jsontree/pkgs/green"
)

func codesOf(records []errs.Record) []errs.Code {
	out := make([]errs.Code, len(records))
	for i, r := range records {
		out[i] = r.Code
	}
	return out
}

// E1: empty input parses to a single missing-value slot with no errors.
func TestParseEmpty(t *testing.T) {
	root, errors := Parse("")
	if len(errors) != 0 {
		t.Fatalf("errors = %v, want none", errors)
	}
	if root.Len() != 0 {
		t.Fatalf("root.Len() = %d, want 0", root.Len())
	}
	if root.HasValue() {
		t.Fatalf("root.HasValue() = true, want false")
	}
}

// E2: trailing comma in an array is tolerated; filtered_item_count drops it.
func TestParseTrailingComma(t *testing.T) {
	root, errors := Parse("[0,1,2,]")
	if len(errors) != 0 {
		t.Fatalf("errors = %v, want none", errors)
	}
	list, ok := root.Values()[0].Content.(*green.List)
	if !ok {
		t.Fatalf("root value = %#v, want *green.List", root.Values()[0].Content)
	}
	if list.Items().Len() != 4 {
		t.Fatalf("items.Len() = %d, want 4", list.Items().Len())
	}
	if list.FilteredItemCount() != 3 {
		t.Fatalf("FilteredItemCount() = %d, want 3", list.FilteredItemCount())
	}
	if list.MissingClose() {
		t.Fatalf("MissingClose() = true, want false")
	}
}

// E3: background surrounding a single list item is split into the
// item's leading and trailing background correctly.
func TestParseBackgroundAroundListItem(t *testing.T) {
	root, errors := Parse("[/*a*/0/*b*/]")
	if len(errors) != 0 {
		t.Fatalf("errors = %v, want none", errors)
	}
	list := root.Values()[0].Content.(*green.List)
	if list.Items().Len() != 1 {
		t.Fatalf("items.Len() = %d, want 1", list.Items().Len())
	}
	item := list.Items().ElementAt(0)
	vwb := item.Values()[0]
	if vwb.Before.Len() != 5 {
		t.Errorf("before.Len() = %d, want 5", vwb.Before.Len())
	}
	if item.Trailing().Len() != 5 {
		t.Errorf("trailing.Len() = %d, want 5", item.Trailing().Len())
	}
}

// E4: duplicate object keys report PropertyKeyAlreadyExists once, with
// the raw (quoted) source substring, and only the first pair is valid.
func TestParseDuplicateKey(t *testing.T) {
	root, errors := Parse(`{"k":1,"k":2}`)
	if len(errors) != 1 {
		t.Fatalf("errors = %v, want exactly 1", errors)
	}
	if errors[0].Code != errs.PropertyKeyAlreadyExists {
		t.Fatalf("errors[0].Code = %v, want PropertyKeyAlreadyExists", errors[0].Code)
	}
	if len(errors[0].Parameters) != 1 || errors[0].Parameters[0].Str == nil || *errors[0].Parameters[0].Str != `"k"` {
		t.Fatalf("errors[0].Parameters = %#v, want raw substring \"k\"", errors[0].Parameters)
	}

	m := root.Values()[0].Content.(*green.Map)
	pairs := m.ValidKeyValuePairs()
	if len(pairs) != 1 {
		t.Fatalf("ValidKeyValuePairs() = %d pairs, want 1", len(pairs))
	}
	iv, ok := pairs[0].Value.(*green.IntegerLiteral)
	if !ok || iv.Value().Int64() != 1 {
		t.Fatalf("pairs[0].Value = %#v, want Integer(1)", pairs[0].Value)
	}
}

// E5: a single bad escape inside a string literal yields an ErrorString
// with one UnrecognizedEscapeSequence at the expected relative span.
func TestParseStringBadEscape(t *testing.T) {
	root, errors := Parse(`"ab\qcd"`)
	es, ok := root.Values()[0].Content.(*green.ErrorString)
	if !ok {
		t.Fatalf("root value = %#v, want *green.ErrorString", root.Values()[0].Content)
	}
	if es.Len() != 8 {
		t.Errorf("es.Len() = %d, want 8", es.Len())
	}
	if len(errors) != 1 {
		t.Fatalf("errors = %v, want exactly 1", errors)
	}
	if errors[0].Code != errs.UnrecognizedEscapeSequence || errors[0].Start != 3 || errors[0].Length != 2 {
		t.Fatalf("errors[0] = %+v, want UnrecognizedEscapeSequence at [3,2]", errors[0])
	}
}

// E6: two values with only whitespace between them in a single array
// slot report one MultipleValues error and collapse into one item.
func TestParseMultipleValuesInSlot(t *testing.T) {
	root, errors := Parse("[1 2]")
	if len(errors) != 1 || errors[0].Code != errs.MultipleValues {
		t.Fatalf("errors = %v, want exactly one MultipleValues", errors)
	}
	list := root.Values()[0].Content.(*green.List)
	if list.Items().Len() != 1 {
		t.Fatalf("items.Len() = %d, want 1", list.Items().Len())
	}
	if got := len(list.Items().ElementAt(0).Values()); got != 2 {
		t.Fatalf("slot values = %d, want 2", got)
	}
	if list.MissingClose() {
		t.Fatalf("MissingClose() = true, want false")
	}
}

// E7: a key immediately followed by another value-starter (no colon)
// folds the extra value into the key slot (MultiplePropertyKeys) and
// the resulting entry has no value section, reporting MissingValue.
func TestParseMissingColonBetweenKeyAndValue(t *testing.T) {
	root, errors := Parse(`{"k" 1}`)
	codes := codesOf(errors)
	var sawMissingValue, sawMultiplePropertyKeys, sawMultipleSections bool
	for _, c := range codes {
		switch c {
		case errs.MissingValue:
			sawMissingValue = true
		case errs.MultiplePropertyKeys:
			sawMultiplePropertyKeys = true
		case errs.MultiplePropertyKeySections:
			sawMultipleSections = true
		}
	}
	if !sawMissingValue {
		t.Errorf("errors = %v, want MissingValue", errors)
	}
	if !sawMultiplePropertyKeys {
		t.Errorf("errors = %v, want MultiplePropertyKeys", errors)
	}
	if sawMultipleSections {
		t.Errorf("errors = %v, want no MultiplePropertyKeySections", errors)
	}

	m := root.Values()[0].Content.(*green.Map)
	if m.Entries().Len() != 1 {
		t.Fatalf("entries.Len() = %d, want 1", m.Entries().Len())
	}
	entry := m.Entries().ElementAt(0)
	if entry.ValidKey() == nil || entry.ValidKey().Value() != "k" {
		t.Fatalf("entry.ValidKey() = %v, want Some(\"k\")", entry.ValidKey())
	}
	if entry.Sections().Len() != 1 {
		t.Fatalf("sections.Len() = %d, want 1 (no value section)", entry.Sections().Len())
	}
}

func TestParseEmptyObjectHasNoDiagnostics(t *testing.T) {
	root, errors := Parse("{}")
	if len(errors) != 0 {
		t.Fatalf("errors = %v, want none", errors)
	}
	m := root.Values()[0].Content.(*green.Map)
	if m.Entries().Len() != 1 {
		t.Fatalf("entries.Len() = %d, want 1 (placeholder entry)", m.Entries().Len())
	}
	if len(m.ValidKeyValuePairs()) != 0 {
		t.Fatalf("ValidKeyValuePairs() = %v, want none", m.ValidKeyValuePairs())
	}
}

func TestParseUnterminatedArray(t *testing.T) {
	root, errors := Parse("[1,2")
	if len(errors) != 1 || errors[0].Code != errs.UnexpectedEofInArray {
		t.Fatalf("errors = %v, want exactly one UnexpectedEofInArray", errors)
	}
	list := root.Values()[0].Content.(*green.List)
	if !list.MissingClose() {
		t.Fatalf("MissingClose() = false, want true")
	}
}

func TestParseLengthRoundTrip(t *testing.T) {
	for _, src := range []string{
		"", "1", "true", "null", `"s"`, "[1,2,3]", `{"a":1,"b":[2,3]}`,
		"[1 2]", `{"k" 1}`, "[/*c*/1]", "// line\n42",
	} {
		root, _ := Parse(src)
		if root.Len() != len(src) {
			t.Errorf("Parse(%q) root.Len() = %d, want %d", src, root.Len(), len(src))
		}
	}
}

func TestParseErrorPositionsWithinBounds(t *testing.T) {
	for _, src := range []string{
		`{"k":1,"k":2}`, "[1 2]", `"ab\qcd"`, `{"k" 1}`, "[1,2",
	} {
		_, errors := Parse(src)
		for _, e := range errors {
			if e.Start < 0 || e.Start+e.Length > len(src) {
				t.Errorf("Parse(%q) error %+v out of bounds", src, e)
			}
		}
	}
}
