package ast

// Identifier is a bare name reference.
type Identifier struct {
	node
	Name string
}

func (e *Identifier) Accept(v Visitor) { v.VisitIdentifier(e) }
func (*Identifier) exprNode()          {}

// IntLiteral is an integer literal.
type IntLiteral struct {
	node
	Value int64
}

func (e *IntLiteral) Accept(v Visitor) { v.VisitIntLiteral(e) }
func (*IntLiteral) exprNode()          {}

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	node
	Value float64
}

func (e *FloatLiteral) Accept(v Visitor) { v.VisitFloatLiteral(e) }
func (*FloatLiteral) exprNode()          {}

// StringLiteral is a string literal. Value is the unescaped text.
type StringLiteral struct {
	node
	Value string
}

func (e *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(e) }
func (*StringLiteral) exprNode()          {}

// BoolLiteral is true or false.
type BoolLiteral struct {
	node
	Value bool
}

func (e *BoolLiteral) Accept(v Visitor) { v.VisitBoolLiteral(e) }
func (*BoolLiteral) exprNode()          {}

// NullLiteral is the null constant.
type NullLiteral struct {
	node
}

func (e *NullLiteral) Accept(v Visitor) { v.VisitNullLiteral(e) }
func (*NullLiteral) exprNode()          {}

// ArrayLiteral is an ordered element list.
type ArrayLiteral struct {
	node
	Elements []Expression
}

func (e *ArrayLiteral) Accept(v Visitor) { v.VisitArrayLiteral(e) }
func (*ArrayLiteral) exprNode()          {}

// ObjectProperty is a single key/value pair in an object literal.
type ObjectProperty struct {
	Key   string
	Value Expression
}

// ObjectLiteral is a keyed value list.
type ObjectLiteral struct {
	node
	Properties []ObjectProperty
}

func (e *ObjectLiteral) Accept(v Visitor) { v.VisitObjectLiteral(e) }
func (*ObjectLiteral) exprNode()          {}

// BinaryExpr applies a binary operator. Operator is the source-level token
// ("+", "==", "&&", ...); targets may re-map it during lowering.
type BinaryExpr struct {
	node
	Operator string
	Left     Expression
	Right    Expression
}

func (e *BinaryExpr) Accept(v Visitor) { v.VisitBinaryExpr(e) }
func (*BinaryExpr) exprNode()          {}

// UnaryExpr applies a unary operator. Prefix distinguishes ++x from x++ for
// the increment/decrement operators.
type UnaryExpr struct {
	node
	Operator string
	Operand  Expression
	Prefix   bool
}

func (e *UnaryExpr) Accept(v Visitor) { v.VisitUnaryExpr(e) }
func (*UnaryExpr) exprNode()          {}

// AssignExpr assigns Value to Target. Operator is "=" or a compound form
// ("+=", "-=", ...).
type AssignExpr struct {
	node
	Operator string
	Target   Expression
	Value    Expression
}

func (e *AssignExpr) Accept(v Visitor) { v.VisitAssignExpr(e) }
func (*AssignExpr) exprNode()          {}

// ConditionalExpr is the ternary ?: operator.
type ConditionalExpr struct {
	node
	Condition Expression
	Then      Expression
	Else      Expression
}

func (e *ConditionalExpr) Accept(v Visitor) { v.VisitConditionalExpr(e) }
func (*ConditionalExpr) exprNode()          {}

// CallExpr invokes a callee with positional arguments.
type CallExpr struct {
	node
	Callee Expression
	Args   []Expression
}

func (e *CallExpr) Accept(v Visitor) { v.VisitCallExpr(e) }
func (*CallExpr) exprNode()          {}

// MemberExpr accesses a named property of an object.
type MemberExpr struct {
	node
	Object   Expression
	Property string
}

func (e *MemberExpr) Accept(v Visitor) { v.VisitMemberExpr(e) }
func (*MemberExpr) exprNode()          {}

// IndexExpr accesses an element by computed index.
type IndexExpr struct {
	node
	Object Expression
	Index  Expression
}

func (e *IndexExpr) Accept(v Visitor) { v.VisitIndexExpr(e) }
func (*IndexExpr) exprNode()          {}

// NewExpr constructs an instance.
type NewExpr struct {
	node
	Callee Expression
	Args   []Expression
}

func (e *NewExpr) Accept(v Visitor) { v.VisitNewExpr(e) }
func (*NewExpr) exprNode()          {}

// CastExpr converts a value to an explicit type.
type CastExpr struct {
	node
	Target TypeNode
	Value  Expression
}

func (e *CastExpr) Accept(v Visitor) { v.VisitCastExpr(e) }
func (*CastExpr) exprNode()          {}

// TemplateInstantiationExpr applies explicit type arguments to a generic
// callee, e.g. make<Buffer>(...).
type TemplateInstantiationExpr struct {
	node
	Base     Expression
	TypeArgs []TypeNode
}

func (e *TemplateInstantiationExpr) Accept(v Visitor) { v.VisitTemplateInstantiationExpr(e) }
func (*TemplateInstantiationExpr) exprNode()          {}
