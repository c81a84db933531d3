package green

// SpanList is an ordered sequence of elements with a precomputed
// prefix-sum offset index, giving O(1) positional queries. None of the
// composites in this package builds one: BackgroundList keeps its own
// item slice and total length instead, since its elements are never
// queried by index from outside the package.
type SpanList[E Lengthed] struct {
	elements []E
	offsets  []int
	total    int
}

// NewSpanList builds a SpanList from elements in order.
func NewSpanList[E Lengthed](elements []E) *SpanList[E] {
	offsets := make([]int, len(elements))
	total := 0
	for i, e := range elements {
		offsets[i] = total
		total += e.Len()
	}
	return &SpanList[E]{elements: elements, offsets: offsets, total: total}
}

func (s *SpanList[E]) Len() int            { return len(s.elements) }
func (s *SpanList[E]) TotalLength() int    { return s.total }
func (s *SpanList[E]) ElementAt(i int) E   { return s.elements[i] }
func (s *SpanList[E]) OffsetOf(i int) int  { return s.offsets[i] }

// SeparatedSpanList is an ordered sequence of elements interleaved with a
// single shared separator value, with precomputed element offsets.
// Separator offsets and the combined "interleaved" index (treating
// element and separator positions as one stride of 2*len-1) are derived
// from the element offsets, as spec'd: no extra bookkeeping is stored for
// them. The separator is a single shared value (typically a green
// singleton such as Comma or Colon), not a per-position instance.
type SeparatedSpanList[E Lengthed] struct {
	elements       []E
	separator      Lengthed
	elementOffsets []int
	total          int
}

// NewSeparatedSpanList builds a SeparatedSpanList from elements in order,
// punctuated by separator between each consecutive pair.
func NewSeparatedSpanList[E Lengthed](elements []E, separator Lengthed) *SeparatedSpanList[E] {
	n := len(elements)
	offsets := make([]int, n)
	pos := 0
	sepLen := separator.Len()
	for i, e := range elements {
		offsets[i] = pos
		pos += e.Len()
		if i < n-1 {
			pos += sepLen
		}
	}
	return &SeparatedSpanList[E]{elements: elements, separator: separator, elementOffsets: offsets, total: pos}
}

func (s *SeparatedSpanList[E]) Len() int          { return len(s.elements) }
func (s *SeparatedSpanList[E]) TotalLength() int  { return s.total }
func (s *SeparatedSpanList[E]) ElementAt(i int) E { return s.elements[i] }
func (s *SeparatedSpanList[E]) Separator() Lengthed { return s.separator }
func (s *SeparatedSpanList[E]) SeparatorLen() int { return s.separator.Len() }

func (s *SeparatedSpanList[E]) ElementOffset(i int) int { return s.elementOffsets[i] }

// SeparatorOffset returns the offset of the separator following element
// i. i must be in [0, Len()-2].
func (s *SeparatedSpanList[E]) SeparatorOffset(i int) int {
	return s.elementOffsets[i+1] - s.separator.Len()
}

// InterleavedOffset treats elements and separators as a single stride of
// 2*Len()-1 positions (element, separator, element, separator, ...,
// element) and returns the offset of position i.
func (s *SeparatedSpanList[E]) InterleavedOffset(i int) int {
	if i%2 == 0 {
		return s.ElementOffset(i / 2)
	}
	return s.SeparatorOffset(i / 2)
}
