package green

import (
	"math/big"
	"testing"
)

func bigFromInt(n int64) *big.Int { return big.NewInt(n) }

func singleValueSlot(before *BackgroundList, v Value, trailing *BackgroundList) *MultiValue {
	return NewMultiValue([]*ValueWithBackground{NewValueWithBackground(before, v)}, trailing)
}

func TestMultiValueMissingInvariant(t *testing.T) {
	slot := singleValueSlot(EmptyBackground, Missing, EmptyBackground)
	if slot.Len() != 0 {
		t.Fatalf("missing-value slot length = %d, want 0", slot.Len())
	}
	if slot.HasValue() {
		t.Fatalf("HasValue() on a missing slot = true")
	}
}

func TestMultiValueMissingInvariantPanicsOnExtra(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic appending an extra value alongside a missing first value")
		}
	}()
	NewMultiValue([]*ValueWithBackground{
		NewValueWithBackground(EmptyBackground, Missing),
		NewValueWithBackground(EmptyBackground, TrueSymbol),
	}, EmptyBackground)
}

func TestListLengthAndFilteredCount(t *testing.T) {
	zero := NewIntegerLiteral(bigFromInt(0), 1)
	one := NewIntegerLiteral(bigFromInt(1), 1)
	two := NewIntegerLiteral(bigFromInt(2), 1)
	items := NewSeparatedSpanList([]*MultiValue{
		singleValueSlot(EmptyBackground, zero, EmptyBackground),
		singleValueSlot(EmptyBackground, one, EmptyBackground),
		singleValueSlot(EmptyBackground, two, EmptyBackground),
		singleValueSlot(EmptyBackground, Missing, EmptyBackground),
	}, CommaSymbol)
	list := NewList(items, false)

	// "[0,1,2,]" -> 1 ('[') + 3 items * 1 + 3 commas + 1 (']') = 8
	if got, want := list.Len(), 8; got != want {
		t.Errorf("List.Len() = %d, want %d", got, want)
	}
	if got, want := list.FilteredItemCount(), 3; got != want {
		t.Errorf("FilteredItemCount() = %d, want %d", got, want)
	}
}

func TestMapValidKeyValuePairsSkipsDuplicateAndMissing(t *testing.T) {
	k1 := NewStringLiteral("k", 3)
	v1 := NewIntegerLiteral(bigFromInt(1), 1)
	entry1 := NewKeyValue(k1, NewSeparatedSpanList([]*MultiValue{
		singleValueSlot(EmptyBackground, k1, EmptyBackground),
		singleValueSlot(EmptyBackground, v1, EmptyBackground),
	}, ColonSymbol))

	k2 := NewStringLiteral("k", 3)
	v2 := NewIntegerLiteral(bigFromInt(2), 1)
	// validKey nil because "k" already seen -- this is how the parser
	// represents a duplicate key's entry.
	entry2 := NewKeyValue(nil, NewSeparatedSpanList([]*MultiValue{
		singleValueSlot(EmptyBackground, k2, EmptyBackground),
		singleValueSlot(EmptyBackground, v2, EmptyBackground),
	}, ColonSymbol))

	k3 := NewStringLiteral("m", 3)
	// valid key, but the value section holds only MissingValue ("m":).
	entry3 := NewKeyValue(k3, NewSeparatedSpanList([]*MultiValue{
		singleValueSlot(EmptyBackground, k3, EmptyBackground),
		singleValueSlot(EmptyBackground, Missing, EmptyBackground),
	}, ColonSymbol))

	m := NewMap(NewSeparatedSpanList([]*KeyValue{entry1, entry2, entry3}, CommaSymbol), false)
	pairs := m.ValidKeyValuePairs()
	if len(pairs) != 1 {
		t.Fatalf("ValidKeyValuePairs() returned %d pairs, want 1", len(pairs))
	}
	if pairs[0].Key != k1 {
		t.Errorf("ValidKeyValuePairs()[0].Key = %v, want first occurrence", pairs[0].Key)
	}
	iv, ok := pairs[0].Value.(*IntegerLiteral)
	if !ok || iv.Value().Int64() != 1 {
		t.Errorf("ValidKeyValuePairs()[0].Value = %v, want Integer(1)", pairs[0].Value)
	}
}

func TestSeparatedSpanListOffsets(t *testing.T) {
	items := NewSeparatedSpanList([]*Whitespace{NewWhitespace(2), NewWhitespace(3), NewWhitespace(1)}, CommaSymbol)
	// [2][,][3][,][1] -> offsets 0, 3, 7
	want := []int{0, 3, 7}
	for i, w := range want {
		if got := items.ElementOffset(i); got != w {
			t.Errorf("ElementOffset(%d) = %d, want %d", i, got, w)
		}
	}
	if got, want := items.SeparatorOffset(0), 2; got != want {
		t.Errorf("SeparatorOffset(0) = %d, want %d", got, want)
	}
	if got, want := items.TotalLength(), 8; got != want {
		t.Errorf("TotalLength() = %d, want %d", got, want)
	}
}
