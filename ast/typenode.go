package ast

// NamedTypeNode references a type by name ("int", "vec3", "MyClass", "auto").
type NamedTypeNode struct {
	node
	Name       string
	IsConst    bool
	IsUnsigned bool
}

func (t *NamedTypeNode) Accept(v Visitor) { v.VisitNamedTypeNode(t) }
func (*NamedTypeNode) typeNode()          {}

// PointerTypeNode is T*.
type PointerTypeNode struct {
	node
	Pointee TypeNode
}

func (t *PointerTypeNode) Accept(v Visitor) { v.VisitPointerTypeNode(t) }
func (*PointerTypeNode) typeNode()          {}

// ReferenceTypeNode is T&.
type ReferenceTypeNode struct {
	node
	Referenced TypeNode
}

func (t *ReferenceTypeNode) Accept(v Visitor) { v.VisitReferenceTypeNode(t) }
func (*ReferenceTypeNode) typeNode()          {}

// ArrayTypeNode is T[N] or T[]. Length <= 0 means a dynamic array.
type ArrayTypeNode struct {
	node
	Element TypeNode
	Length  int
}

func (t *ArrayTypeNode) Accept(v Visitor) { v.VisitArrayTypeNode(t) }
func (*ArrayTypeNode) typeNode()          {}

// FunctionTypeNode is a function signature type.
type FunctionTypeNode struct {
	node
	Parameters []TypeNode
	Return     TypeNode // nil means void
	Variadic   bool
}

func (t *FunctionTypeNode) Accept(v Visitor) { v.VisitFunctionTypeNode(t) }
func (*FunctionTypeNode) typeNode()          {}

// UnionTypeNode is T | U | ...
type UnionTypeNode struct {
	node
	Members []TypeNode
}

func (t *UnionTypeNode) Accept(v Visitor) { v.VisitUnionTypeNode(t) }
func (*UnionTypeNode) typeNode()          {}

// TemplateTypeNode is a generic instantiation Base<Arg1, Arg2, ...>.
type TemplateTypeNode struct {
	node
	Name string
	Args []TypeNode
}

func (t *TemplateTypeNode) Accept(v Visitor) { v.VisitTemplateTypeNode(t) }
func (*TemplateTypeNode) typeNode()          {}
