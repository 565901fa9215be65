package ast

// TypeParameter is a generic parameter on a function, class, or alias.
// Constraint is a type name resolved against the registry; empty means
// unconstrained.
type TypeParameter struct {
	Name       string
	Constraint string
}

// Parameter is a single function parameter.
type Parameter struct {
	Name         string
	Type         TypeNode
	DefaultValue Expression
}

// FunctionDecl declares a function. Body may be nil for a forward
// declaration.
type FunctionDecl struct {
	node
	Name           string
	TypeParameters []TypeParameter
	Parameters     []Parameter
	ReturnType     TypeNode // nil means void
	Body           *BlockStmt
	IsExported     bool
	IsAsync        bool
}

func (d *FunctionDecl) Accept(v Visitor) { v.VisitFunctionDecl(d) }
func (*FunctionDecl) declNode()          {}

// VariableDecl declares a variable or a class/struct field.
type VariableDecl struct {
	node
	Name        string
	Type        TypeNode // nil means inferred (auto/var)
	Initializer Expression
	IsConst     bool
	IsExported  bool
}

func (d *VariableDecl) Accept(v Visitor) { v.VisitVariableDecl(d) }
func (*VariableDecl) declNode()          {}

// ClassDecl declares a class. Members holds field (VariableDecl) and method
// (FunctionDecl) declarations in source order.
type ClassDecl struct {
	node
	Name           string
	TypeParameters []TypeParameter
	SuperClass     string // empty means no base class
	Interfaces     []string
	Members        []Declaration
	IsExported     bool
}

func (d *ClassDecl) Accept(v Visitor) { v.VisitClassDecl(d) }
func (*ClassDecl) declNode()          {}

// InterfaceDecl declares an interface.
type InterfaceDecl struct {
	node
	Name           string
	TypeParameters []TypeParameter
	Extends        []string
	Members        []Declaration
	IsExported     bool
}

func (d *InterfaceDecl) Accept(v Visitor) { v.VisitInterfaceDecl(d) }
func (*InterfaceDecl) declNode()          {}

// StructDecl declares a plain-data struct.
type StructDecl struct {
	node
	Name       string
	Fields     []*VariableDecl
	IsExported bool
}

func (d *StructDecl) Accept(v Visitor) { v.VisitStructDecl(d) }
func (*StructDecl) declNode()          {}

// EnumMember is a single enum constant. Value may be nil for implicit
// sequential values.
type EnumMember struct {
	Name  string
	Value Expression
}

// EnumDecl declares an enumeration.
type EnumDecl struct {
	node
	Name       string
	Members    []EnumMember
	IsExported bool
}

func (d *EnumDecl) Accept(v Visitor) { v.VisitEnumDecl(d) }
func (*EnumDecl) declNode()          {}

// TypeAliasDecl declares a named alias for a type.
type TypeAliasDecl struct {
	node
	Name       string
	Target     TypeNode
	IsExported bool
}

func (d *TypeAliasDecl) Accept(v Visitor) { v.VisitTypeAliasDecl(d) }
func (*TypeAliasDecl) declNode()          {}

// ImportDecl imports names from another module.
type ImportDecl struct {
	node
	Names  []string // empty means import the whole module
	Module string
}

func (d *ImportDecl) Accept(v Visitor) { v.VisitImportDecl(d) }
func (*ImportDecl) declNode()          {}

// ExportDecl re-exports names from another module.
type ExportDecl struct {
	node
	Names  []string
	Module string // empty means re-export local names
}

func (d *ExportDecl) Accept(v Visitor) { v.VisitExportDecl(d) }
func (*ExportDecl) declNode()          {}

// NamespaceDecl groups declarations under a qualified name.
type NamespaceDecl struct {
	node
	Name         string
	Declarations []Declaration
}

func (d *NamespaceDecl) Accept(v Visitor) { v.VisitNamespaceDecl(d) }
func (*NamespaceDecl) declNode()          {}
