// Package assemblyscript lowers WorldSrc syntax trees to AssemblyScript
// source text. It follows the same contract as the TypeScript target with
// its own type map and reserved-word set; constructs WebAssembly cannot
// express (exceptions, shapeless object literals, union types) are skipped
// with warnings.
package assemblyscript

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Elastic-Softworks/worldsrc/ast"
	"github.com/Elastic-Softworks/worldsrc/codegen"
)

// Generator is the AssemblyScript target.
type Generator struct {
	*codegen.Emitter

	imports map[string]bool
}

var _ codegen.Target = (*Generator)(nil)

// New returns an AssemblyScript generator ready for a Generate call.
func New() *Generator {
	g := &Generator{Emitter: codegen.NewEmitter("//")}
	g.resetLocal()
	return g
}

func (g *Generator) Name() string          { return "assemblyscript" }
func (g *Generator) FileExtension() string { return ".as.ts" }

// State returns the embedded emitter.
func (g *Generator) State() *codegen.Emitter { return g.Emitter }

// Reset clears the emitter and target-local bookkeeping.
func (g *Generator) Reset() {
	g.Emitter.Reset()
	g.resetLocal()
}

func (g *Generator) resetLocal() {
	g.imports = make(map[string]bool)
}

// DefaultOptions returns the AssemblyScript baseline.
func (g *Generator) DefaultOptions() codegen.Options {
	return codegen.Options{
		Target:             "assemblyscript",
		Optimization:       "basic",
		OutputFormat:       "esm",
		IndentSize:         2,
		InsertFinalNewline: true,
		StrictMode:         true,
		ModuleSystem:       "esm",
	}
}

// ValidateOptions flags options this target cannot honor.
func (g *Generator) ValidateOptions(opts codegen.Options) {
	if opts.AsyncSupport {
		g.Warnf(codegen.CodeSuspiciousOption, nil, "asyncSupport is ignored: WebAssembly has no async functions")
	}
	if opts.OutputFormat != "esm" {
		g.Warnf(codegen.CodeSuspiciousOption, nil, "output format %s is ignored: AssemblyScript modules are always ESM", opts.OutputFormat)
	}
	if opts.TypeDeclarations {
		g.Warnf(codegen.CodeSuspiciousOption, nil, "typeDeclarations is ignored: the AssemblyScript compiler produces its own declarations")
	}
}

// Analyze runs the shared semantic analysis pass.
func (g *Generator) Analyze(ctx context.Context, program *ast.Program) error {
	return codegen.NewAnalyzer(g.Emitter).Analyze(ctx, program)
}

// EmitHeader writes the file preamble.
func (g *Generator) EmitHeader() {
	g.EmitComment("Code generated by worldsrc (assemblyscript). DO NOT EDIT.")
	if tmpl, ok := g.Options.Templates["header"]; ok {
		g.Emit(tmpl + "\n")
	}
	g.EmitLine("")
}

// EmitFooter writes the file epilogue.
func (g *Generator) EmitFooter() {
	if tmpl, ok := g.Options.Templates["footer"]; ok {
		g.Emit(tmpl + "\n")
	}
	if g.Options.InsertFinalNewline && !strings.HasSuffix(g.Code(), "\n") {
		g.Emit("\n")
	}
}

// VisitProgram emits every top-level declaration in order.
func (g *Generator) VisitProgram(p *ast.Program) {
	g.CountModule()
	for _, decl := range p.Declarations {
		decl.Accept(g)
	}
}

// --- Declarations ---

func (g *Generator) VisitFunctionDecl(d *ast.FunctionDecl) {
	g.CountFunction()

	if d.IsAsync {
		g.Warnf(codegen.CodeUnsupportedDecl, d, "async function %s lowered as synchronous", d.Name)
	}

	var sig strings.Builder
	if d.IsExported {
		sig.WriteString("export ")
	}
	if d.Body == nil {
		sig.WriteString("declare ")
	}
	sig.WriteString("function ")
	sig.WriteString(sanitizeIdentifier(d.Name))
	sig.WriteString(g.typeParameterText(d.TypeParameters))
	sig.WriteString("(")
	sig.WriteString(g.parameterText(d.Parameters))
	sig.WriteString("): ")
	sig.WriteString(g.typeText(d.ReturnType))

	if d.Body == nil {
		g.EmitLine(sig.String() + ";")
		return
	}

	g.EmitLine(sig.String() + " {")
	g.EnterScope(d.Name)
	g.Indent()
	for _, stmt := range d.Body.Statements {
		stmt.Accept(g)
	}
	g.Dedent()
	g.ExitScope()
	g.EmitLine("}")
}

func (g *Generator) VisitVariableDecl(d *ast.VariableDecl) {
	prefix := ""
	if d.IsExported {
		prefix = "export "
	}
	g.EmitLine(prefix + g.variableText(d) + ";")
}

func (g *Generator) VisitClassDecl(d *ast.ClassDecl) {
	g.CountClass()

	var sig strings.Builder
	if d.IsExported {
		sig.WriteString("export ")
	}
	sig.WriteString("class ")
	sig.WriteString(sanitizeIdentifier(d.Name))
	sig.WriteString(g.typeParameterText(d.TypeParameters))
	if d.SuperClass != "" {
		sig.WriteString(" extends ")
		sig.WriteString(sanitizeIdentifier(d.SuperClass))
	}
	if len(d.Interfaces) > 0 {
		names := make([]string, len(d.Interfaces))
		for i, iface := range d.Interfaces {
			names[i] = sanitizeIdentifier(iface)
		}
		sig.WriteString(" implements ")
		sig.WriteString(strings.Join(names, ", "))
	}
	sig.WriteString(" {")
	g.EmitLine(sig.String())

	g.EnterScope(d.Name)
	g.Indent()
	for _, member := range d.Members {
		switch m := member.(type) {
		case *ast.VariableDecl:
			field := sanitizeIdentifier(m.Name) + ": " + g.typeText(m.Type)
			if m.Initializer != nil {
				field += " = " + g.expr(m.Initializer)
			}
			g.EmitLine(field + ";")
		case *ast.FunctionDecl:
			g.emitMethod(m)
		default:
			g.Warnf(codegen.CodeUnsupportedDecl, member, "unsupported class member in %s", d.Name)
		}
	}
	g.Dedent()
	g.ExitScope()
	g.EmitLine("}")
}

func (g *Generator) VisitInterfaceDecl(d *ast.InterfaceDecl) {
	var sig strings.Builder
	if d.IsExported {
		sig.WriteString("export ")
	}
	sig.WriteString("interface ")
	sig.WriteString(sanitizeIdentifier(d.Name))
	if len(d.Extends) > 0 {
		names := make([]string, len(d.Extends))
		for i, ext := range d.Extends {
			names[i] = sanitizeIdentifier(ext)
		}
		sig.WriteString(" extends ")
		sig.WriteString(strings.Join(names, ", "))
	}
	sig.WriteString(" {")
	g.EmitLine(sig.String())

	g.Indent()
	for _, member := range d.Members {
		switch m := member.(type) {
		case *ast.VariableDecl:
			g.EmitLinef("%s: %s;", sanitizeIdentifier(m.Name), g.typeText(m.Type))
		case *ast.FunctionDecl:
			g.EmitLinef("%s(%s): %s;", sanitizeIdentifier(m.Name), g.parameterText(m.Parameters), g.typeText(m.ReturnType))
		default:
			g.Warnf(codegen.CodeUnsupportedDecl, member, "unsupported interface member in %s", d.Name)
		}
	}
	g.Dedent()
	g.EmitLine("}")
}

// VisitStructDecl lowers a struct to an unmanaged class, the AssemblyScript
// idiom for plain linear-memory data.
func (g *Generator) VisitStructDecl(d *ast.StructDecl) {
	g.CountClass()

	prefix := ""
	if d.IsExported {
		prefix = "export "
	}
	g.EmitLine("@unmanaged")
	g.EmitLinef("%sclass %s {", prefix, sanitizeIdentifier(d.Name))
	g.Indent()
	for _, f := range d.Fields {
		g.EmitLinef("%s: %s;", sanitizeIdentifier(f.Name), g.typeText(f.Type))
	}
	g.Dedent()
	g.EmitLine("}")
}

func (g *Generator) VisitEnumDecl(d *ast.EnumDecl) {
	prefix := ""
	if d.IsExported {
		prefix = "export "
	}
	g.EmitLinef("%senum %s {", prefix, sanitizeIdentifier(d.Name))
	g.Indent()
	for _, member := range d.Members {
		if member.Value != nil {
			g.EmitLinef("%s = %s,", sanitizeIdentifier(member.Name), g.expr(member.Value))
		} else {
			g.EmitLine(sanitizeIdentifier(member.Name) + ",")
		}
	}
	g.Dedent()
	g.EmitLine("}")
}

func (g *Generator) VisitTypeAliasDecl(d *ast.TypeAliasDecl) {
	prefix := ""
	if d.IsExported {
		prefix = "export "
	}
	g.EmitLinef("%stype %s = %s;", prefix, sanitizeIdentifier(d.Name), g.typeText(d.Target))
}

func (g *Generator) VisitImportDecl(d *ast.ImportDecl) {
	var stmt string
	if len(d.Names) == 0 {
		base := d.Module
		if i := strings.LastIndexByte(base, '/'); i >= 0 {
			base = base[i+1:]
		}
		stmt = fmt.Sprintf("import * as %s from %q;", sanitizeIdentifier(base), d.Module)
	} else {
		names := make([]string, len(d.Names))
		for i, n := range d.Names {
			names[i] = sanitizeIdentifier(n)
		}
		stmt = fmt.Sprintf("import { %s } from %q;", strings.Join(names, ", "), d.Module)
	}
	if g.imports[stmt] {
		return
	}
	g.imports[stmt] = true
	g.EmitLine(stmt)
}

func (g *Generator) VisitExportDecl(d *ast.ExportDecl) {
	names := make([]string, len(d.Names))
	for i, n := range d.Names {
		names[i] = sanitizeIdentifier(n)
	}
	if d.Module != "" {
		g.EmitLinef("export { %s } from %q;", strings.Join(names, ", "), d.Module)
	} else {
		g.EmitLinef("export { %s };", strings.Join(names, ", "))
	}
}

func (g *Generator) VisitNamespaceDecl(d *ast.NamespaceDecl) {
	g.CountModule()
	g.EmitLinef("export namespace %s {", sanitizeIdentifier(d.Name))
	g.EnterScope(d.Name)
	g.Indent()
	for _, decl := range d.Declarations {
		decl.Accept(g)
	}
	g.Dedent()
	g.ExitScope()
	g.EmitLine("}")
}

func (g *Generator) emitMethod(d *ast.FunctionDecl) {
	g.CountFunction()

	var sig strings.Builder
	sig.WriteString(sanitizeIdentifier(d.Name))
	sig.WriteString("(")
	sig.WriteString(g.parameterText(d.Parameters))
	sig.WriteString(")")
	if d.Name != "constructor" {
		sig.WriteString(": " + g.typeText(d.ReturnType))
	}

	if d.Body == nil {
		g.EmitLine(sig.String() + ";")
		return
	}

	g.EmitLine(sig.String() + " {")
	g.EnterScope(d.Name)
	g.Indent()
	for _, stmt := range d.Body.Statements {
		stmt.Accept(g)
	}
	g.Dedent()
	g.ExitScope()
	g.EmitLine("}")
}

func (g *Generator) parameterText(params []ast.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		part := sanitizeIdentifier(p.Name) + ": " + g.typeText(p.Type)
		if p.DefaultValue != nil {
			part += " = " + g.expr(p.DefaultValue)
		}
		parts[i] = part
	}
	return strings.Join(parts, ", ")
}

func (g *Generator) typeParameterText(params []ast.TypeParameter) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		part := sanitizeIdentifier(p.Name)
		if p.Constraint != "" {
			part += " extends " + g.mapTypeName(p.Constraint)
		}
		parts[i] = part
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

func (g *Generator) variableText(d *ast.VariableDecl) string {
	keyword := "let"
	if d.IsConst {
		keyword = "const"
	}
	text := keyword + " " + sanitizeIdentifier(d.Name)
	// AssemblyScript requires a type or an inferable initializer.
	if d.Type != nil {
		if named, ok := d.Type.(*ast.NamedTypeNode); !ok || (named.Name != "auto" && named.Name != "var") {
			text += ": " + g.typeText(d.Type)
		}
	}
	if d.Initializer != nil {
		text += " = " + g.expr(d.Initializer)
	}
	return text
}

// --- Statements ---

func (g *Generator) VisitBlockStmt(s *ast.BlockStmt) {
	g.EmitLine("{")
	g.Indent()
	for _, stmt := range s.Statements {
		stmt.Accept(g)
	}
	g.Dedent()
	g.EmitLine("}")
}

func (g *Generator) VisitExpressionStmt(s *ast.ExpressionStmt) {
	g.EmitLine(g.expr(s.Expr) + ";")
}

func (g *Generator) VisitVariableDeclStmt(s *ast.VariableDeclStmt) {
	g.EmitLine(g.variableText(s.Decl) + ";")
}

func (g *Generator) VisitIfStmt(s *ast.IfStmt) {
	g.EmitLinef("if (%s) {", g.expr(s.Condition))
	g.Indent()
	g.emitBody(s.Then)
	g.Dedent()
	if s.Else == nil {
		g.EmitLine("}")
		return
	}
	g.EmitLine("} else {")
	g.Indent()
	g.emitBody(s.Else)
	g.Dedent()
	g.EmitLine("}")
}

func (g *Generator) VisitForStmt(s *ast.ForStmt) {
	init := ""
	switch i := s.Init.(type) {
	case nil:
	case *ast.VariableDeclStmt:
		init = g.variableText(i.Decl)
	case *ast.ExpressionStmt:
		init = g.expr(i.Expr)
	default:
		g.Warnf(codegen.CodeUnsupportedStmt, s.Init, "unsupported for-loop initializer")
	}
	cond := ""
	if s.Condition != nil {
		cond = g.expr(s.Condition)
	}
	update := ""
	if s.Update != nil {
		update = g.expr(s.Update)
	}
	g.EmitLinef("for (%s; %s; %s) {", init, cond, update)
	g.Indent()
	g.emitBody(s.Body)
	g.Dedent()
	g.EmitLine("}")
}

func (g *Generator) VisitWhileStmt(s *ast.WhileStmt) {
	g.EmitLinef("while (%s) {", g.expr(s.Condition))
	g.Indent()
	g.emitBody(s.Body)
	g.Dedent()
	g.EmitLine("}")
}

func (g *Generator) VisitDoWhileStmt(s *ast.DoWhileStmt) {
	g.EmitLine("do {")
	g.Indent()
	g.emitBody(s.Body)
	g.Dedent()
	g.EmitLinef("} while (%s);", g.expr(s.Condition))
}

func (g *Generator) VisitSwitchStmt(s *ast.SwitchStmt) {
	g.EmitLinef("switch (%s) {", g.expr(s.Discriminant))
	g.Indent()
	for _, clause := range s.Cases {
		if clause.Test != nil {
			g.EmitLinef("case %s:", g.expr(clause.Test))
		} else {
			g.EmitLine("default:")
		}
		g.Indent()
		for _, stmt := range clause.Body {
			stmt.Accept(g)
		}
		g.Dedent()
	}
	g.Dedent()
	g.EmitLine("}")
}

func (g *Generator) VisitReturnStmt(s *ast.ReturnStmt) {
	if s.Value == nil {
		g.EmitLine("return;")
		return
	}
	g.EmitLine("return " + g.expr(s.Value) + ";")
}

func (g *Generator) VisitBreakStmt(*ast.BreakStmt)       { g.EmitLine("break;") }
func (g *Generator) VisitContinueStmt(*ast.ContinueStmt) { g.EmitLine("continue;") }

// VisitThrowStmt: WebAssembly has no exceptions; the statement is skipped.
func (g *Generator) VisitThrowStmt(s *ast.ThrowStmt) {
	g.Warnf(codegen.CodeUnsupportedStmt, s, "throw statement is not supported by the assemblyscript target")
	g.EmitComment("skipped: throw")
}

// VisitTryStmt: only the try block survives; handlers are skipped.
func (g *Generator) VisitTryStmt(s *ast.TryStmt) {
	g.Warnf(codegen.CodeUnsupportedStmt, s, "try/catch is not supported by the assemblyscript target; emitting try block only")
	if s.Block != nil {
		for _, stmt := range s.Block.Statements {
			stmt.Accept(g)
		}
	}
	if s.Finally != nil {
		for _, stmt := range s.Finally.Statements {
			stmt.Accept(g)
		}
	}
}

func (g *Generator) emitBody(s ast.Statement) {
	if s == nil {
		return
	}
	if block, ok := s.(*ast.BlockStmt); ok {
		for _, stmt := range block.Statements {
			stmt.Accept(g)
		}
		return
	}
	s.Accept(g)
}

// --- Expressions ---

func (g *Generator) VisitIdentifier(e *ast.Identifier)       { g.Emit(g.expr(e)) }
func (g *Generator) VisitIntLiteral(e *ast.IntLiteral)       { g.Emit(g.expr(e)) }
func (g *Generator) VisitFloatLiteral(e *ast.FloatLiteral)   { g.Emit(g.expr(e)) }
func (g *Generator) VisitStringLiteral(e *ast.StringLiteral) { g.Emit(g.expr(e)) }
func (g *Generator) VisitBoolLiteral(e *ast.BoolLiteral)     { g.Emit(g.expr(e)) }
func (g *Generator) VisitNullLiteral(e *ast.NullLiteral)     { g.Emit(g.expr(e)) }
func (g *Generator) VisitArrayLiteral(e *ast.ArrayLiteral)   { g.Emit(g.expr(e)) }
func (g *Generator) VisitObjectLiteral(e *ast.ObjectLiteral) { g.Emit(g.expr(e)) }
func (g *Generator) VisitBinaryExpr(e *ast.BinaryExpr)       { g.Emit(g.expr(e)) }
func (g *Generator) VisitUnaryExpr(e *ast.UnaryExpr)         { g.Emit(g.expr(e)) }
func (g *Generator) VisitAssignExpr(e *ast.AssignExpr)       { g.Emit(g.expr(e)) }
func (g *Generator) VisitConditionalExpr(e *ast.ConditionalExpr) {
	g.Emit(g.expr(e))
}
func (g *Generator) VisitCallExpr(e *ast.CallExpr)     { g.Emit(g.expr(e)) }
func (g *Generator) VisitMemberExpr(e *ast.MemberExpr) { g.Emit(g.expr(e)) }
func (g *Generator) VisitIndexExpr(e *ast.IndexExpr)   { g.Emit(g.expr(e)) }
func (g *Generator) VisitNewExpr(e *ast.NewExpr)       { g.Emit(g.expr(e)) }
func (g *Generator) VisitCastExpr(e *ast.CastExpr)     { g.Emit(g.expr(e)) }
func (g *Generator) VisitTemplateInstantiationExpr(e *ast.TemplateInstantiationExpr) {
	g.Emit(g.expr(e))
}

func (g *Generator) expr(e ast.Expression) string {
	switch n := e.(type) {
	case nil:
		return ""

	case *ast.Identifier:
		return sanitizeIdentifier(n.Name)

	case *ast.IntLiteral:
		return strconv.FormatInt(n.Value, 10)

	case *ast.FloatLiteral:
		text := strconv.FormatFloat(n.Value, 'g', -1, 64)
		if !strings.ContainsAny(text, ".eE") {
			text += ".0"
		}
		return text

	case *ast.StringLiteral:
		return `"` + escapeString(n.Value) + `"`

	case *ast.BoolLiteral:
		if n.Value {
			return "true"
		}
		return "false"

	case *ast.NullLiteral:
		return "null"

	case *ast.ArrayLiteral:
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = g.expr(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"

	case *ast.ObjectLiteral:
		// No structural object literals in linear memory.
		g.Warnf(codegen.CodeUnsupportedExpr, n, "object literal is not supported by the assemblyscript target")
		return "0"

	case *ast.BinaryExpr:
		// AssemblyScript == already has strict value semantics; no rewrite.
		return g.operand(n.Left) + " " + n.Operator + " " + g.operand(n.Right)

	case *ast.UnaryExpr:
		if n.Prefix {
			return n.Operator + g.operand(n.Operand)
		}
		return g.operand(n.Operand) + n.Operator

	case *ast.AssignExpr:
		return g.expr(n.Target) + " " + n.Operator + " " + g.expr(n.Value)

	case *ast.ConditionalExpr:
		return g.operand(n.Condition) + " ? " + g.operand(n.Then) + " : " + g.operand(n.Else)

	case *ast.CallExpr:
		return g.expr(n.Callee) + "(" + g.argList(n.Args) + ")"

	case *ast.MemberExpr:
		return g.operand(n.Object) + "." + sanitizeIdentifier(n.Property)

	case *ast.IndexExpr:
		return g.operand(n.Object) + "[" + g.expr(n.Index) + "]"

	case *ast.NewExpr:
		return "new " + g.expr(n.Callee) + "(" + g.argList(n.Args) + ")"

	case *ast.CastExpr:
		return "<" + g.typeText(n.Target) + ">(" + g.expr(n.Value) + ")"

	case *ast.TemplateInstantiationExpr:
		args := make([]string, len(n.TypeArgs))
		for i, arg := range n.TypeArgs {
			args[i] = g.typeText(arg)
		}
		return g.expr(n.Base) + "<" + strings.Join(args, ", ") + ">"

	default:
		g.Warnf(codegen.CodeUnsupportedExpr, e, "unsupported expression kind")
		return "0"
	}
}

func (g *Generator) operand(e ast.Expression) string {
	switch e.(type) {
	case *ast.BinaryExpr, *ast.ConditionalExpr, *ast.AssignExpr, *ast.CastExpr:
		return "(" + g.expr(e) + ")"
	default:
		return g.expr(e)
	}
}

func (g *Generator) argList(args []ast.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = g.expr(a)
	}
	return strings.Join(parts, ", ")
}

// --- Type nodes ---

func (g *Generator) VisitNamedTypeNode(t *ast.NamedTypeNode)         { g.Emit(g.typeText(t)) }
func (g *Generator) VisitPointerTypeNode(t *ast.PointerTypeNode)     { g.Emit(g.typeText(t)) }
func (g *Generator) VisitReferenceTypeNode(t *ast.ReferenceTypeNode) { g.Emit(g.typeText(t)) }
func (g *Generator) VisitArrayTypeNode(t *ast.ArrayTypeNode)         { g.Emit(g.typeText(t)) }
func (g *Generator) VisitFunctionTypeNode(t *ast.FunctionTypeNode)   { g.Emit(g.typeText(t)) }
func (g *Generator) VisitUnionTypeNode(t *ast.UnionTypeNode)         { g.Emit(g.typeText(t)) }
func (g *Generator) VisitTemplateTypeNode(t *ast.TemplateTypeNode)   { g.Emit(g.typeText(t)) }

func (g *Generator) typeText(t ast.TypeNode) string {
	switch n := t.(type) {
	case nil:
		return "void"

	case *ast.NamedTypeNode:
		if n.Name == "any" {
			g.Warnf(codegen.CodeUnsupportedType, n, "any has no assemblyscript representation; lowering to usize")
			return "usize"
		}
		return g.mapTypeName(n.Name)

	case *ast.PointerTypeNode:
		if named, ok := n.Pointee.(*ast.NamedTypeNode); ok {
			if mapped, ok := pointerTypeMap[named.Name+"*"]; ok {
				return mapped
			}
		}
		// Raw linear-memory address.
		return "usize"

	case *ast.ReferenceTypeNode:
		return g.typeText(n.Referenced)

	case *ast.ArrayTypeNode:
		elem := g.typeText(n.Element)
		if n.Length > 0 {
			return "StaticArray<" + elem + ">"
		}
		return "Array<" + elem + ">"

	case *ast.FunctionTypeNode:
		params := make([]string, len(n.Parameters))
		for i, p := range n.Parameters {
			params[i] = fmt.Sprintf("arg%d: %s", i, g.typeText(p))
		}
		return "(" + strings.Join(params, ", ") + ") => " + g.typeText(n.Return)

	case *ast.UnionTypeNode:
		// Unions cannot be represented; fall back to the first member.
		g.Warnf(codegen.CodeUnsupportedType, n, "union type is not supported by the assemblyscript target; using first member")
		if len(n.Members) > 0 {
			return g.typeText(n.Members[0])
		}
		return "usize"

	case *ast.TemplateTypeNode:
		args := make([]string, len(n.Args))
		for i, arg := range n.Args {
			args[i] = g.typeText(arg)
		}
		return g.mapTypeName(n.Name) + "<" + strings.Join(args, ", ") + ">"

	default:
		g.Warnf(codegen.CodeUnsupportedType, t, "unsupported type node kind")
		return "usize"
	}
}

func (g *Generator) mapTypeName(name string) string {
	if mapped, ok := primitiveTypeMap[name]; ok {
		return mapped
	}
	return sanitizeIdentifier(name)
}
