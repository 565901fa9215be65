// Package ast defines the syntax tree consumed by the WorldSrc code
// generators. The tree is produced by an external parser; this package only
// models the node families, their source locations, and the visitor protocol
// used by the generators to walk them.
//
// The four node families (Declaration, Statement, Expression, TypeNode) are
// sealed: each family interface carries an unexported marker method, so the
// set of concrete node kinds is closed and the Visitor interface enumerates
// every kind. Adding a node kind forces every generator to handle it.
package ast

// Position is a single point in a source file. Line and Column are 1-based;
// Offset is a 0-based byte offset.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// SourceLocation is the span a node covers in its source file.
type SourceLocation struct {
	File  string   `json:"file,omitempty"`
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// IsZero returns true if the location carries no information.
func (l SourceLocation) IsZero() bool {
	return l.File == "" && l.Start == (Position{}) && l.End == (Position{})
}

// Node is implemented by every syntax tree node.
type Node interface {
	// Loc returns the node's source span.
	Loc() SourceLocation

	// Accept dispatches to the visitor method for the node's concrete kind.
	Accept(v Visitor)
}

// node is the embedded base carrying the source span.
type node struct {
	Location SourceLocation `json:"loc"`
}

func (n node) Loc() SourceLocation { return n.Location }

// Declaration is a top-level or member declaration.
type Declaration interface {
	Node
	declNode()
}

// Statement is an executable statement.
type Statement interface {
	Node
	stmtNode()
}

// Expression is a value-producing expression.
type Expression interface {
	Node
	exprNode()
}

// TypeNode is a syntactic type reference, resolved against the type registry
// during semantic analysis.
type TypeNode interface {
	Node
	typeNode()
}

// Program is the root of the tree: an ordered sequence of declarations.
// Each child node is uniquely owned by its parent; the tree is acyclic.
type Program struct {
	node
	Declarations []Declaration
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// NewProgram returns a Program with the given declarations.
func NewProgram(decls ...Declaration) *Program {
	return &Program{Declarations: decls}
}
