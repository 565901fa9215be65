// Package typescript lowers WorldSrc syntax trees to TypeScript source
// text.
package typescript

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Elastic-Softworks/worldsrc/ast"
	"github.com/Elastic-Softworks/worldsrc/codegen"
)

// Tuple emission cutoff for fixed-length arrays: T[3] becomes [T, T, T],
// larger fixed arrays fall back to T[].
const maxTupleLength = 10

// Generator is the TypeScript target. It embeds the framework emitter for
// per-run state and implements ast.Visitor for every node kind.
type Generator struct {
	*codegen.Emitter

	// imports de-duplicates emitted import statements.
	imports map[string]bool

	// interfaces records declared interface names for forward references.
	interfaces map[string]bool
}

var _ codegen.Target = (*Generator)(nil)

// New returns a TypeScript generator ready for a Generate call.
func New() *Generator {
	g := &Generator{Emitter: codegen.NewEmitter("//")}
	g.resetLocal()
	return g
}

func (g *Generator) Name() string          { return "typescript" }
func (g *Generator) FileExtension() string { return ".ts" }

// State returns the embedded emitter.
func (g *Generator) State() *codegen.Emitter { return g.Emitter }

// Reset clears the emitter and target-local bookkeeping.
func (g *Generator) Reset() {
	g.Emitter.Reset()
	g.resetLocal()
}

func (g *Generator) resetLocal() {
	g.imports = make(map[string]bool)
	g.interfaces = make(map[string]bool)
}

// DefaultOptions returns the TypeScript baseline: ESM output, two-space
// indentation, strict mode.
func (g *Generator) DefaultOptions() codegen.Options {
	return codegen.Options{
		Target:             "typescript",
		Optimization:       "basic",
		OutputFormat:       "esm",
		IndentSize:         2,
		InsertFinalNewline: true,
		StrictMode:         true,
		AsyncSupport:       true,
		ModuleSystem:       "esm",
	}
}

// ValidateOptions flags option combinations this target cannot honor. The
// diagnostics accumulate; generation proceeds regardless.
func (g *Generator) ValidateOptions(opts codegen.Options) {
	if opts.Minify {
		g.Warnf(codegen.CodeSuspiciousOption, nil, "minify is ignored: the generator emits readable source, minification belongs to the bundler")
	}
	if opts.SourceMaps {
		g.Warnf(codegen.CodeSuspiciousOption, nil, "sourceMaps requested but the TypeScript target does not emit source maps yet")
	}
	if (opts.OutputFormat == "umd" || opts.OutputFormat == "iife") && opts.ModuleSystem == "esm" {
		g.Warnf(codegen.CodeSuspiciousOption, nil, "output format %s conflicts with the esm module system", opts.OutputFormat)
	}
}

// Analyze runs the shared semantic analysis pass.
func (g *Generator) Analyze(ctx context.Context, program *ast.Program) error {
	return codegen.NewAnalyzer(g.Emitter).Analyze(ctx, program)
}

// EmitHeader writes the file preamble.
func (g *Generator) EmitHeader() {
	g.EmitComment("Code generated by worldsrc. DO NOT EDIT.")
	if g.Options.OutputPath != "" {
		g.EmitComment("target: " + g.Options.OutputPath)
	}
	if tmpl, ok := g.Options.Templates["header"]; ok {
		g.Emit(tmpl + "\n")
	}
	if g.Options.StrictMode && g.Options.ModuleSystem == "commonjs" {
		g.EmitLine(`"use strict";`)
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
	g.emitFunction(d)
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
			g.EmitLine(g.fieldText(m) + ";")
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
	g.interfaces[d.Name] = true

	var sig strings.Builder
	if d.IsExported {
		sig.WriteString("export ")
	}
	sig.WriteString("interface ")
	sig.WriteString(sanitizeIdentifier(d.Name))
	sig.WriteString(g.typeParameterText(d.TypeParameters))
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
			g.EmitLine(g.fieldText(m) + ";")
		case *ast.FunctionDecl:
			g.EmitLinef("%s(%s): %s;", sanitizeIdentifier(m.Name), g.parameterText(m.Parameters), g.returnTypeText(m))
		default:
			g.Warnf(codegen.CodeUnsupportedDecl, member, "unsupported interface member in %s", d.Name)
		}
	}
	g.Dedent()
	g.EmitLine("}")
}

// VisitStructDecl lowers a plain-data struct to an interface.
func (g *Generator) VisitStructDecl(d *ast.StructDecl) {
	g.interfaces[d.Name] = true

	prefix := ""
	if d.IsExported {
		prefix = "export "
	}
	g.EmitLinef("%sinterface %s {", prefix, sanitizeIdentifier(d.Name))
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
		stmt = fmt.Sprintf("import * as %s from %q;", sanitizeIdentifier(moduleBasename(d.Module)), d.Module)
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

// emitFunction emits a top-level function declaration.
func (g *Generator) emitFunction(d *ast.FunctionDecl) {
	g.CountFunction()

	var sig strings.Builder
	if d.IsExported {
		sig.WriteString("export ")
	}
	if d.Body == nil {
		// Ambient declarations cannot carry async.
		sig.WriteString("declare ")
	} else if d.IsAsync {
		sig.WriteString("async ")
	}
	sig.WriteString("function ")
	sig.WriteString(sanitizeIdentifier(d.Name))
	sig.WriteString(g.typeParameterText(d.TypeParameters))
	sig.WriteString("(")
	sig.WriteString(g.parameterText(d.Parameters))
	sig.WriteString("): ")
	sig.WriteString(g.returnTypeText(d))

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

// emitMethod emits a class method.
func (g *Generator) emitMethod(d *ast.FunctionDecl) {
	g.CountFunction()

	var sig strings.Builder
	if d.IsAsync {
		sig.WriteString("async ")
	}
	sig.WriteString(sanitizeIdentifier(d.Name))
	sig.WriteString(g.typeParameterText(d.TypeParameters))
	sig.WriteString("(")
	sig.WriteString(g.parameterText(d.Parameters))
	sig.WriteString(")")
	if d.Name != "constructor" {
		sig.WriteString(": " + g.returnTypeText(d))
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

// returnTypeText maps the return type, wrapping non-void async returns in
// Promise<>.
func (g *Generator) returnTypeText(d *ast.FunctionDecl) string {
	ret := g.typeText(d.ReturnType)
	if d.IsAsync && ret != "void" {
		return "Promise<" + ret + ">"
	}
	return ret
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

// variableText renders a const/let declaration without the trailing
// semicolon, shared by declarations, statements, and for-loop initializers.
func (g *Generator) variableText(d *ast.VariableDecl) string {
	keyword := "let"
	if d.IsConst {
		keyword = "const"
	}
	text := keyword + " " + sanitizeIdentifier(d.Name)
	if t := g.annotationText(d.Type); t != "" {
		text += ": " + t
	}
	if d.Initializer != nil {
		text += " = " + g.expr(d.Initializer)
	}
	return text
}

// fieldText renders a class/interface field.
func (g *Generator) fieldText(d *ast.VariableDecl) string {
	text := sanitizeIdentifier(d.Name)
	if t := g.annotationText(d.Type); t != "" {
		text += ": " + t
	} else {
		text += ": " + g.typeText(d.Type)
	}
	if d.Initializer != nil {
		text += " = " + g.expr(d.Initializer)
	}
	return text
}

// annotationText returns the explicit type annotation, or empty when the
// declaration uses inference (no type, auto, var).
func (g *Generator) annotationText(t ast.TypeNode) string {
	if t == nil {
		return ""
	}
	if named, ok := t.(*ast.NamedTypeNode); ok {
		if named.Name == "auto" || named.Name == "var" {
			return ""
		}
	}
	return g.typeText(t)
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

func (g *Generator) VisitThrowStmt(s *ast.ThrowStmt) {
	g.EmitLine("throw " + g.expr(s.Value) + ";")
}

func (g *Generator) VisitTryStmt(s *ast.TryStmt) {
	g.EmitLine("try {")
	g.Indent()
	if s.Block != nil {
		for _, stmt := range s.Block.Statements {
			stmt.Accept(g)
		}
	}
	g.Dedent()
	if s.Catch != nil {
		param := s.Catch.Param
		if param == "" {
			param = "err"
		}
		g.EmitLinef("} catch (%s) {", sanitizeIdentifier(param))
		g.Indent()
		if s.Catch.Body != nil {
			for _, stmt := range s.Catch.Body.Statements {
				stmt.Accept(g)
			}
		}
		g.Dedent()
	}
	if s.Finally != nil {
		g.EmitLine("} finally {")
		g.Indent()
		for _, stmt := range s.Finally.Statements {
			stmt.Accept(g)
		}
		g.Dedent()
	}
	g.EmitLine("}")
}

// emitBody emits a statement as a body, flattening a block's statements into
// the surrounding braces.
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
//
// The Visit methods satisfy the visitor contract; the lowering itself is
// expression-to-text composition in expr.

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

// expr lowers an expression subtree to TypeScript text.
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
		if len(n.Properties) == 0 {
			return "{}"
		}
		parts := make([]string, len(n.Properties))
		for i, p := range n.Properties {
			parts[i] = sanitizeIdentifier(p.Key) + ": " + g.expr(p.Value)
		}
		return "{ " + strings.Join(parts, ", ") + " }"

	case *ast.BinaryExpr:
		return g.operand(n.Left) + " " + g.mapOperator(n.Operator) + " " + g.operand(n.Right)

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
		return "(" + g.expr(n.Value) + " as " + g.typeText(n.Target) + ")"

	case *ast.TemplateInstantiationExpr:
		args := make([]string, len(n.TypeArgs))
		for i, arg := range n.TypeArgs {
			args[i] = g.typeText(arg)
		}
		return g.expr(n.Base) + "<" + strings.Join(args, ", ") + ">"

	default:
		g.Warnf(codegen.CodeUnsupportedExpr, e, "unsupported expression kind")
		return "undefined"
	}
}

// operand wraps compound subexpressions in parentheses so operator
// precedence survives the flattened emission.
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

// mapOperator rewrites loose equality to strict equality; WorldSrc == has
// value semantics, which in TypeScript only === preserves.
func (g *Generator) mapOperator(op string) string {
	switch op {
	case "==":
		return "==="
	case "!=":
		return "!=="
	default:
		return op
	}
}

// --- Type nodes ---

func (g *Generator) VisitNamedTypeNode(t *ast.NamedTypeNode)         { g.Emit(g.typeText(t)) }
func (g *Generator) VisitPointerTypeNode(t *ast.PointerTypeNode)     { g.Emit(g.typeText(t)) }
func (g *Generator) VisitReferenceTypeNode(t *ast.ReferenceTypeNode) { g.Emit(g.typeText(t)) }
func (g *Generator) VisitArrayTypeNode(t *ast.ArrayTypeNode)         { g.Emit(g.typeText(t)) }
func (g *Generator) VisitFunctionTypeNode(t *ast.FunctionTypeNode)   { g.Emit(g.typeText(t)) }
func (g *Generator) VisitUnionTypeNode(t *ast.UnionTypeNode)         { g.Emit(g.typeText(t)) }
func (g *Generator) VisitTemplateTypeNode(t *ast.TemplateTypeNode)   { g.Emit(g.typeText(t)) }

// typeText lowers a type node to TypeScript type syntax.
func (g *Generator) typeText(t ast.TypeNode) string {
	switch n := t.(type) {
	case nil:
		return "void"

	case *ast.NamedTypeNode:
		return g.mapTypeName(n.Name)

	case *ast.PointerTypeNode:
		if named, ok := n.Pointee.(*ast.NamedTypeNode); ok {
			if mapped, ok := pointerTypeMap[named.Name+"*"]; ok {
				return mapped
			}
		}
		return g.typeText(n.Pointee) + " | null"

	case *ast.ReferenceTypeNode:
		// References are call-site plumbing; the referent's type survives.
		return g.typeText(n.Referenced)

	case *ast.ArrayTypeNode:
		elem := g.typeText(n.Element)
		if n.Length > 0 && n.Length <= maxTupleLength {
			parts := make([]string, n.Length)
			for i := range parts {
				parts[i] = elem
			}
			return "[" + strings.Join(parts, ", ") + "]"
		}
		if strings.Contains(elem, " ") {
			return "(" + elem + ")[]"
		}
		return elem + "[]"

	case *ast.FunctionTypeNode:
		params := make([]string, len(n.Parameters))
		for i, p := range n.Parameters {
			params[i] = fmt.Sprintf("arg%d: %s", i, g.typeText(p))
		}
		if n.Variadic {
			params = append(params, "...rest: any[]")
		}
		return "(" + strings.Join(params, ", ") + ") => " + g.typeText(n.Return)

	case *ast.UnionTypeNode:
		parts := make([]string, len(n.Members))
		for i, m := range n.Members {
			part := g.typeText(m)
			if _, fn := m.(*ast.FunctionTypeNode); fn {
				part = "(" + part + ")"
			}
			parts[i] = part
		}
		return strings.Join(parts, " | ")

	case *ast.TemplateTypeNode:
		args := make([]string, len(n.Args))
		for i, arg := range n.Args {
			args[i] = g.typeText(arg)
		}
		return g.mapTypeName(n.Name) + "<" + strings.Join(args, ", ") + ">"

	default:
		g.Warnf(codegen.CodeUnsupportedType, t, "unsupported type node kind")
		return "unknown"
	}
}

// mapTypeName maps a builtin name to its TypeScript spelling, or sanitizes a
// user-declared name.
func (g *Generator) mapTypeName(name string) string {
	if mapped, ok := primitiveTypeMap[name]; ok {
		return mapped
	}
	return sanitizeIdentifier(name)
}

// moduleBasename returns the last path segment of a module specifier.
func moduleBasename(module string) string {
	if i := strings.LastIndexByte(module, '/'); i >= 0 {
		return module[i+1:]
	}
	return module
}
