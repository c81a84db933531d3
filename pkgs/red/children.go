package red

import "github.com/aledsdavies/jsontree/pkgs/green"

// childSpec names one child of a composite green node: its offset within
// the parent (in the parent's own coordinate system, 0 at the parent's
// first byte) and the green value it wraps. Building this list is a pure
// function of the green tree and is computed once per red.Node, before
// any child is actually materialized.
type childSpec struct {
	offset int
	green  green.Lengthed
}

// childrenOf returns g's children in source order, or nil if g is a
// terminal (a green.Symbol with nothing further to recurse into).
// Structural brackets/braces are not stored on List/Map themselves (they
// are fixed-length singletons implied by the green length formula), so
// this is also where they are synthesized back into the child list.
func childrenOf(g green.Lengthed) []childSpec {
	switch n := g.(type) {
	case *green.MultiValue:
		values := n.Values()
		out := make([]childSpec, 0, len(values)+1)
		off := 0
		for _, vwb := range values {
			out = append(out, childSpec{off, vwb})
			off += vwb.Len()
		}
		out = append(out, childSpec{off, n.Trailing()})
		return out

	case *green.ValueWithBackground:
		return []childSpec{
			{0, n.Before},
			{n.Before.Len(), n.Content},
		}

	case *green.BackgroundList:
		items := n.Items()
		out := make([]childSpec, 0, len(items))
		off := 0
		for _, it := range items {
			out = append(out, childSpec{off, it})
			off += it.Len()
		}
		return out

	case *green.KeyValue:
		sections := n.Sections()
		return separatedChildren(sections.Len(), sections.ElementOffset, sections.SeparatorOffset,
			func(i int) green.Lengthed { return sections.ElementAt(i) }, sections.Separator())

	case *green.List:
		return bracketedChildren[*green.MultiValue](green.OpenBracketSymbol, green.CloseBracketSymbol, n.MissingClose(), n.Items())

	case *green.Map:
		return bracketedChildren[*green.KeyValue](green.OpenBraceSymbol, green.CloseBraceSymbol, n.MissingClose(), n.Entries())

	default:
		return nil
	}
}

// separatedChildren interleaves a SeparatedSpanList's elements and
// separators into a flat, offset-ordered child list.
func separatedChildren(n int, elementOffset, separatorOffset func(int) int, elementAt func(int) green.Lengthed, separator green.Lengthed) []childSpec {
	out := make([]childSpec, 0, 2*n-1)
	for i := 0; i < n; i++ {
		out = append(out, childSpec{elementOffset(i), elementAt(i)})
		if i < n-1 {
			out = append(out, childSpec{separatorOffset(i), separator})
		}
	}
	return out
}

func bracketedChildren[E any](open, close *green.Structural, missingClose bool, items interface {
	Len() int
	TotalLength() int
	ElementAt(int) E
	ElementOffset(int) int
	SeparatorOffset(int) int
	Separator() green.Lengthed
}) []childSpec {
	n := items.Len()
	out := make([]childSpec, 0, 2*n+2)
	out = append(out, childSpec{0, open})
	for i := 0; i < n; i++ {
		e := items.ElementAt(i)
		lengthed, ok := any(e).(green.Lengthed)
		if !ok {
			panic("red: bracketed element does not implement green.Lengthed")
		}
		out = append(out, childSpec{1 + items.ElementOffset(i), lengthed})
		if i < n-1 {
			out = append(out, childSpec{1 + items.SeparatorOffset(i), items.Separator()})
		}
	}
	if !missingClose {
		out = append(out, childSpec{1 + items.TotalLength(), close})
	}
	return out
}
