package red

import "github.com/aledsdavies/jsontree/pkgs/green"

// Visitor mirrors green.Visitor but dispatches on red nodes, so a
// rendering consumer (e.g. a syntax highlighter) can query each
// terminal's absolute position as it visits.
type Visitor interface {
	VisitWhitespace(*Node)
	VisitComment(*Node)
	VisitUnterminatedBlockComment(*Node)
	VisitStructural(*Node)
	VisitColon(*Node)
	VisitComma(*Node)
	VisitStringLiteral(*Node)
	VisitErrorString(*Node)
	VisitIntegerLiteral(*Node)
	VisitUnknownValueToken(*Node)
	VisitUnknownSymbol(*Node)
	VisitBoolean(*Node)
	VisitDefault(*Node)
}

// Accept dispatches n to the Visitor method matching its underlying
// green terminal kind, or VisitDefault if n is not a terminal.
func Accept(n *Node, v Visitor) {
	sym, ok := n.Symbol()
	if !ok {
		v.VisitDefault(n)
		return
	}
	switch sym.(type) {
	case *green.Whitespace:
		v.VisitWhitespace(n)
	case *green.Comment:
		v.VisitComment(n)
	case *green.UnterminatedBlockComment:
		v.VisitUnterminatedBlockComment(n)
	case *green.Structural:
		v.VisitStructural(n)
	case *green.Colon:
		v.VisitColon(n)
	case *green.Comma:
		v.VisitComma(n)
	case *green.StringLiteral:
		v.VisitStringLiteral(n)
	case *green.ErrorString:
		v.VisitErrorString(n)
	case *green.IntegerLiteral:
		v.VisitIntegerLiteral(n)
	case *green.UnknownValueToken:
		v.VisitUnknownValueToken(n)
	case *green.UnknownSymbol:
		v.VisitUnknownSymbol(n)
	case *green.Boolean:
		v.VisitBoolean(n)
	default:
		v.VisitDefault(n)
	}
}

// ResultVisitor is the result-returning variant of Visitor.
type ResultVisitor[R any] interface {
	VisitWhitespace(*Node) R
	VisitComment(*Node) R
	VisitUnterminatedBlockComment(*Node) R
	VisitStructural(*Node) R
	VisitColon(*Node) R
	VisitComma(*Node) R
	VisitStringLiteral(*Node) R
	VisitErrorString(*Node) R
	VisitIntegerLiteral(*Node) R
	VisitUnknownValueToken(*Node) R
	VisitUnknownSymbol(*Node) R
	VisitBoolean(*Node) R
	VisitDefault(*Node) R
}

// AcceptResult dispatches n through a ResultVisitor and returns its
// result.
func AcceptResult[R any](n *Node, v ResultVisitor[R]) R {
	sym, ok := n.Symbol()
	if !ok {
		return v.VisitDefault(n)
	}
	switch sym.(type) {
	case *green.Whitespace:
		return v.VisitWhitespace(n)
	case *green.Comment:
		return v.VisitComment(n)
	case *green.UnterminatedBlockComment:
		return v.VisitUnterminatedBlockComment(n)
	case *green.Structural:
		return v.VisitStructural(n)
	case *green.Colon:
		return v.VisitColon(n)
	case *green.Comma:
		return v.VisitComma(n)
	case *green.StringLiteral:
		return v.VisitStringLiteral(n)
	case *green.ErrorString:
		return v.VisitErrorString(n)
	case *green.IntegerLiteral:
		return v.VisitIntegerLiteral(n)
	case *green.UnknownValueToken:
		return v.VisitUnknownValueToken(n)
	case *green.UnknownSymbol:
		return v.VisitUnknownSymbol(n)
	case *green.Boolean:
		return v.VisitBoolean(n)
	default:
		return v.VisitDefault(n)
	}
}

// ArgVisitor is the result-plus-argument variant of Visitor.
type ArgVisitor[A, R any] interface {
	VisitWhitespace(*Node, A) R
	VisitComment(*Node, A) R
	VisitUnterminatedBlockComment(*Node, A) R
	VisitStructural(*Node, A) R
	VisitColon(*Node, A) R
	VisitComma(*Node, A) R
	VisitStringLiteral(*Node, A) R
	VisitErrorString(*Node, A) R
	VisitIntegerLiteral(*Node, A) R
	VisitUnknownValueToken(*Node, A) R
	VisitUnknownSymbol(*Node, A) R
	VisitBoolean(*Node, A) R
	VisitDefault(*Node, A) R
}

// AcceptArg dispatches n through an ArgVisitor, threading arg through.
func AcceptArg[A, R any](n *Node, v ArgVisitor[A, R], arg A) R {
	sym, ok := n.Symbol()
	if !ok {
		return v.VisitDefault(n, arg)
	}
	switch sym.(type) {
	case *green.Whitespace:
		return v.VisitWhitespace(n, arg)
	case *green.Comment:
		return v.VisitComment(n, arg)
	case *green.UnterminatedBlockComment:
		return v.VisitUnterminatedBlockComment(n, arg)
	case *green.Structural:
		return v.VisitStructural(n, arg)
	case *green.Colon:
		return v.VisitColon(n, arg)
	case *green.Comma:
		return v.VisitComma(n, arg)
	case *green.StringLiteral:
		return v.VisitStringLiteral(n, arg)
	case *green.ErrorString:
		return v.VisitErrorString(n, arg)
	case *green.IntegerLiteral:
		return v.VisitIntegerLiteral(n, arg)
	case *green.UnknownValueToken:
		return v.VisitUnknownValueToken(n, arg)
	case *green.UnknownSymbol:
		return v.VisitUnknownSymbol(n, arg)
	case *green.Boolean:
		return v.VisitBoolean(n, arg)
	default:
		return v.VisitDefault(n, arg)
	}
}
