package green

// Shared instances for fixed-shape leaves, pooled at startup exactly
// once: structural brackets, separators and booleans have no varying
// field at all, so a single instance of each suffices for the whole
// process. This is the "small fixed-length green leaves... pooled at
// startup" optimization; equality on these kinds is by identity.
var (
	OpenBracketSymbol  = &Structural{kind: OpenBracket}
	CloseBracketSymbol = &Structural{kind: CloseBracket}
	OpenBraceSymbol    = &Structural{kind: OpenBrace}
	CloseBraceSymbol   = &Structural{kind: CloseBrace}
	ColonSymbol        = &Colon{}
	CommaSymbol        = &Comma{}
	TrueSymbol         = &Boolean{isTrue: true}
	FalseSymbol        = &Boolean{isTrue: false}
)

// sharedCacheBound is the length below which whitespace and comment runs
// share a precomputed instance rather than allocating a fresh one.
const sharedCacheBound = 255

var (
	whitespaceCache [sharedCacheBound]*Whitespace
	commentCache    [sharedCacheBound]*Comment
)

func init() {
	for i := 1; i < sharedCacheBound; i++ {
		whitespaceCache[i] = &Whitespace{length: i}
		commentCache[i] = &Comment{length: i}
	}
}

// NewWhitespace returns a Whitespace of the given length, sharing a
// pooled instance when length is below the cache bound.
func NewWhitespace(length int) *Whitespace {
	if length > 0 && length < sharedCacheBound {
		return whitespaceCache[length]
	}
	return &Whitespace{length: length}
}

// NewComment returns a Comment of the given length, sharing a pooled
// instance when length is below the cache bound.
func NewComment(length int) *Comment {
	if length > 0 && length < sharedCacheBound {
		return commentCache[length]
	}
	return &Comment{length: length}
}

// NewUnterminatedBlockComment always allocates: an unterminated comment's
// length is whatever remains of the source, rarely repeated across a
// single parse, and it is never a singleton candidate per spec.
func NewUnterminatedBlockComment(length int) *UnterminatedBlockComment {
	return &UnterminatedBlockComment{length: length}
}
