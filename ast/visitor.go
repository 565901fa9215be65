package ast

// Visitor is the double-dispatch protocol for walking the tree. One method
// per concrete node kind: because the node families are sealed, a type that
// implements Visitor is guaranteed at compile time to handle every kind.
type Visitor interface {
	VisitProgram(*Program)

	// Declarations
	VisitFunctionDecl(*FunctionDecl)
	VisitVariableDecl(*VariableDecl)
	VisitClassDecl(*ClassDecl)
	VisitInterfaceDecl(*InterfaceDecl)
	VisitStructDecl(*StructDecl)
	VisitEnumDecl(*EnumDecl)
	VisitTypeAliasDecl(*TypeAliasDecl)
	VisitImportDecl(*ImportDecl)
	VisitExportDecl(*ExportDecl)
	VisitNamespaceDecl(*NamespaceDecl)

	// Statements
	VisitBlockStmt(*BlockStmt)
	VisitExpressionStmt(*ExpressionStmt)
	VisitVariableDeclStmt(*VariableDeclStmt)
	VisitIfStmt(*IfStmt)
	VisitForStmt(*ForStmt)
	VisitWhileStmt(*WhileStmt)
	VisitDoWhileStmt(*DoWhileStmt)
	VisitSwitchStmt(*SwitchStmt)
	VisitReturnStmt(*ReturnStmt)
	VisitBreakStmt(*BreakStmt)
	VisitContinueStmt(*ContinueStmt)
	VisitThrowStmt(*ThrowStmt)
	VisitTryStmt(*TryStmt)

	// Expressions
	VisitIdentifier(*Identifier)
	VisitIntLiteral(*IntLiteral)
	VisitFloatLiteral(*FloatLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitBoolLiteral(*BoolLiteral)
	VisitNullLiteral(*NullLiteral)
	VisitArrayLiteral(*ArrayLiteral)
	VisitObjectLiteral(*ObjectLiteral)
	VisitBinaryExpr(*BinaryExpr)
	VisitUnaryExpr(*UnaryExpr)
	VisitAssignExpr(*AssignExpr)
	VisitConditionalExpr(*ConditionalExpr)
	VisitCallExpr(*CallExpr)
	VisitMemberExpr(*MemberExpr)
	VisitIndexExpr(*IndexExpr)
	VisitNewExpr(*NewExpr)
	VisitCastExpr(*CastExpr)
	VisitTemplateInstantiationExpr(*TemplateInstantiationExpr)

	// Type nodes
	VisitNamedTypeNode(*NamedTypeNode)
	VisitPointerTypeNode(*PointerTypeNode)
	VisitReferenceTypeNode(*ReferenceTypeNode)
	VisitArrayTypeNode(*ArrayTypeNode)
	VisitFunctionTypeNode(*FunctionTypeNode)
	VisitUnionTypeNode(*UnionTypeNode)
	VisitTemplateTypeNode(*TemplateTypeNode)
}
