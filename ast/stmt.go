package ast

// BlockStmt is a braced sequence of statements.
type BlockStmt struct {
	node
	Statements []Statement
}

func (s *BlockStmt) Accept(v Visitor) { v.VisitBlockStmt(s) }
func (*BlockStmt) stmtNode()          {}

// ExpressionStmt evaluates an expression for its side effects.
type ExpressionStmt struct {
	node
	Expr Expression
}

func (s *ExpressionStmt) Accept(v Visitor) { v.VisitExpressionStmt(s) }
func (*ExpressionStmt) stmtNode()          {}

// VariableDeclStmt is a local variable declaration in statement position.
type VariableDeclStmt struct {
	node
	Decl *VariableDecl
}

func (s *VariableDeclStmt) Accept(v Visitor) { v.VisitVariableDeclStmt(s) }
func (*VariableDeclStmt) stmtNode()          {}

// IfStmt is a conditional. Else may be nil, or another IfStmt for else-if
// chains.
type IfStmt struct {
	node
	Condition Expression
	Then      Statement
	Else      Statement
}

func (s *IfStmt) Accept(v Visitor) { v.VisitIfStmt(s) }
func (*IfStmt) stmtNode()          {}

// ForStmt is a C-style for loop. Init, Condition, and Update may each be nil.
type ForStmt struct {
	node
	Init      Statement
	Condition Expression
	Update    Expression
	Body      Statement
}

func (s *ForStmt) Accept(v Visitor) { v.VisitForStmt(s) }
func (*ForStmt) stmtNode()          {}

// WhileStmt is a pre-test loop.
type WhileStmt struct {
	node
	Condition Expression
	Body      Statement
}

func (s *WhileStmt) Accept(v Visitor) { v.VisitWhileStmt(s) }
func (*WhileStmt) stmtNode()          {}

// DoWhileStmt is a post-test loop.
type DoWhileStmt struct {
	node
	Body      Statement
	Condition Expression
}

func (s *DoWhileStmt) Accept(v Visitor) { v.VisitDoWhileStmt(s) }
func (*DoWhileStmt) stmtNode()          {}

// CaseClause is one arm of a switch. Test is nil for the default clause.
type CaseClause struct {
	Test Expression
	Body []Statement
}

// SwitchStmt dispatches on a discriminant expression.
type SwitchStmt struct {
	node
	Discriminant Expression
	Cases        []CaseClause
}

func (s *SwitchStmt) Accept(v Visitor) { v.VisitSwitchStmt(s) }
func (*SwitchStmt) stmtNode()          {}

// ReturnStmt returns from a function. Value may be nil.
type ReturnStmt struct {
	node
	Value Expression
}

func (s *ReturnStmt) Accept(v Visitor) { v.VisitReturnStmt(s) }
func (*ReturnStmt) stmtNode()          {}

// BreakStmt exits the innermost loop or switch.
type BreakStmt struct {
	node
}

func (s *BreakStmt) Accept(v Visitor) { v.VisitBreakStmt(s) }
func (*BreakStmt) stmtNode()          {}

// ContinueStmt skips to the next iteration of the innermost loop.
type ContinueStmt struct {
	node
}

func (s *ContinueStmt) Accept(v Visitor) { v.VisitContinueStmt(s) }
func (*ContinueStmt) stmtNode()          {}

// ThrowStmt raises an exception value.
type ThrowStmt struct {
	node
	Value Expression
}

func (s *ThrowStmt) Accept(v Visitor) { v.VisitThrowStmt(s) }
func (*ThrowStmt) stmtNode()          {}

// CatchClause handles an exception. Param is the caught binding name and may
// be empty.
type CatchClause struct {
	Param string
	Body  *BlockStmt
}

// TryStmt is a try/catch/finally. Catch and Finally may each be nil, but not
// both.
type TryStmt struct {
	node
	Block   *BlockStmt
	Catch   *CatchClause
	Finally *BlockStmt
}

func (s *TryStmt) Accept(v Visitor) { v.VisitTryStmt(s) }
func (*TryStmt) stmtNode()          {}
