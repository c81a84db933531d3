package green

// ValueWithBackground pairs a value with the background run immediately
// preceding it.
type ValueWithBackground struct {
	Before  *BackgroundList
	Content Value
}

// NewValueWithBackground builds a ValueWithBackground. Both arguments
// are required; callers within this module never pass nil, since a
// missing background is represented by EmptyBackground, not nil.
func NewValueWithBackground(before *BackgroundList, content Value) *ValueWithBackground {
	if before == nil || content == nil {
		panic("green: ValueWithBackground requires non-nil background and content")
	}
	return &ValueWithBackground{Before: before, Content: content}
}

func (v *ValueWithBackground) Len() int { return v.Before.Len() + v.Content.Len() }

// MultiValue represents a single value slot that may, due to error
// recovery, contain zero or more accidental extra values alongside the
// real one.
type MultiValue struct {
	values   []*ValueWithBackground
	trailing *BackgroundList
	length   int
}

// NewMultiValue builds a MultiValue. values must be non-empty; only
// values[0].Content may be MissingValue, and when it is, values must
// hold exactly that one element and trailing must be empty.
func NewMultiValue(values []*ValueWithBackground, trailing *BackgroundList) *MultiValue {
	if len(values) == 0 {
		panic("green: MultiValue requires at least one value")
	}
	if _, missing := values[0].Content.(MissingValue); missing {
		if len(values) != 1 || trailing.Len() != 0 {
			panic("green: MultiValue with a missing first value must have no extra values and empty trailing")
		}
	}
	total := trailing.Len()
	for _, v := range values {
		total += v.Len()
	}
	return &MultiValue{values: values, trailing: trailing, length: total}
}

func (m *MultiValue) Len() int                       { return m.length }
func (m *MultiValue) Values() []*ValueWithBackground { return m.values }
func (m *MultiValue) Trailing() *BackgroundList      { return m.trailing }

// HasValue reports whether this slot actually captured a value, i.e. its
// first content is not MissingValue.
func (m *MultiValue) HasValue() bool {
	_, missing := m.values[0].Content.(MissingValue)
	return !missing
}

// KeyValue is one map entry: an optional recognized key plus a
// colon-separated sequence of value slots (normally exactly two: the key
// slot and the value slot, but recovery may append more).
type KeyValue struct {
	validKey *StringLiteral
	sections *SeparatedSpanList[*MultiValue]
}

// NewKeyValue builds a KeyValue. sections must be non-empty. If validKey
// is non-nil it must equal the content of sections' first element's
// first value — the caller is responsible for that invariant since
// equality here is by reference, matching how the parser always passes
// the very literal it just parsed.
func NewKeyValue(validKey *StringLiteral, sections *SeparatedSpanList[*MultiValue]) *KeyValue {
	if sections.Len() == 0 {
		panic("green: KeyValue requires at least one section")
	}
	if validKey != nil {
		first := sections.ElementAt(0).Values()[0].Content
		if sl, ok := first.(*StringLiteral); !ok || sl != validKey {
			panic("green: KeyValue valid_key must equal sections[0].values[0].content")
		}
	}
	return &KeyValue{validKey: validKey, sections: sections}
}

func (k *KeyValue) Len() int                                { return k.sections.TotalLength() }
func (k *KeyValue) ValidKey() *StringLiteral                { return k.validKey }
func (k *KeyValue) Sections() *SeparatedSpanList[*MultiValue] { return k.sections }

// List is a bracketed, comma-separated sequence of value slots.
type List struct {
	items        *SeparatedSpanList[*MultiValue]
	missingClose bool
}

// NewList builds a List. items must be non-empty.
func NewList(items *SeparatedSpanList[*MultiValue], missingClose bool) *List {
	if items.Len() == 0 {
		panic("green: List requires at least one item")
	}
	return &List{items: items, missingClose: missingClose}
}

func (l *List) Len() int {
	n := 1 + l.items.TotalLength()
	if !l.missingClose {
		n++
	}
	return n
}
func (*List) value() {}
func (l *List) Items() *SeparatedSpanList[*MultiValue] { return l.items }
func (l *List) MissingClose() bool                     { return l.missingClose }

// FilteredItemCount is items.Len()-1 when the last item's content is
// MissingValue (trailing-comma tolerance), else items.Len().
func (l *List) FilteredItemCount() int {
	n := l.items.Len()
	if !l.items.ElementAt(n - 1).HasValue() {
		return n - 1
	}
	return n
}

// Map is a braced, comma-separated sequence of key-value entries.
type Map struct {
	entries      *SeparatedSpanList[*KeyValue]
	missingClose bool
}

// NewMap builds a Map. entries must be non-empty.
func NewMap(entries *SeparatedSpanList[*KeyValue], missingClose bool) *Map {
	if entries.Len() == 0 {
		panic("green: Map requires at least one entry")
	}
	return &Map{entries: entries, missingClose: missingClose}
}

func (m *Map) Len() int {
	n := 1 + m.entries.TotalLength()
	if !m.missingClose {
		n++
	}
	return n
}
func (*Map) value() {}
func (m *Map) Entries() *SeparatedSpanList[*KeyValue] { return m.entries }
func (m *Map) MissingClose() bool                     { return m.missingClose }

// KeyValuePair is one yielded element of Map.ValidKeyValuePairs: the
// offsets are relative to the start of Map's own entries span (i.e. the
// byte immediately after the opening '{'), since green nodes never carry
// absolute positions. A red-tree consumer adds its own Map node's
// AbsoluteStart()+1 to recover a true absolute offset.
type KeyValuePair struct {
	KeyOffset   int
	Key         *StringLiteral
	ValueOffset int
	Value       Value
}

// ValidKeyValuePairs enumerates the entries whose ValidKey is set and
// whose value section actually captured a value, in source order. Each
// key offset points to the first non-background character of that
// entry's key; each value offset likewise to the first non-background
// character of the value.
func (m *Map) ValidKeyValuePairs() []KeyValuePair {
	var out []KeyValuePair
	for i := 0; i < m.entries.Len(); i++ {
		kv := m.entries.ElementAt(i)
		if kv.validKey == nil {
			continue
		}
		if kv.sections.Len() < 2 {
			continue
		}
		valueSlot := kv.sections.ElementAt(1)
		if !valueSlot.HasValue() {
			continue
		}
		entryOffset := m.entries.ElementOffset(i)
		keySlot := kv.sections.ElementAt(0)
		keyFirst := keySlot.Values()[0]
		keyOffset := entryOffset + kv.sections.ElementOffset(0) + keyFirst.Before.Len()

		valueSectionOffset := entryOffset + kv.sections.ElementOffset(1)
		valueFirst := valueSlot.Values()[0]
		valueOffset := valueSectionOffset + valueFirst.Before.Len()

		out = append(out, KeyValuePair{
			KeyOffset:   keyOffset,
			Key:         kv.validKey,
			ValueOffset: valueOffset,
			Value:       valueFirst.Content,
		})
	}
	return out
}
