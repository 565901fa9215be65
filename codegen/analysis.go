package codegen

import (
	"context"
	"fmt"

	"github.com/Elastic-Softworks/worldsrc/ast"
	"github.com/Elastic-Softworks/worldsrc/types"
)

// Analyzer is the semantic analysis pass both targets run before emission.
// It registers declared types in the compilation's registry, resolves type
// references, collects function overload sets, and checks the assignability
// of initializers. Diagnostics go to the emitter; Analyze returns an error
// iff any error-severity diagnostic was produced, which the generation
// lifecycle turns into a failure result.
type Analyzer struct {
	e       *Emitter
	symbols map[string]*types.Descriptor   // top-level variable types
	funcs   map[string][]*types.Descriptor // overload sets by name
	errors  int
}

// NewAnalyzer returns an analyzer reporting through the given emitter.
func NewAnalyzer(e *Emitter) *Analyzer {
	return &Analyzer{
		e:       e,
		symbols: make(map[string]*types.Descriptor),
		funcs:   make(map[string][]*types.Descriptor),
	}
}

// Analyze walks the program: first declaring every named type so forward
// references resolve, then checking declarations in order.
func (a *Analyzer) Analyze(ctx context.Context, program *ast.Program) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if program == nil {
		return fmt.Errorf("nil program")
	}

	a.declareTypes(program.Declarations)
	a.checkDecls(program.Declarations)

	if a.errors > 0 {
		return fmt.Errorf("%d semantic error(s)", a.errors)
	}
	return nil
}

func (a *Analyzer) errorf(code string, at ast.Node, format string, args ...any) {
	a.errors++
	a.e.Errorf(code, at, format, args...)
}

// declareTypes registers a placeholder descriptor for every named type so
// that members and bases can reference types declared later in the file.
func (a *Analyzer) declareTypes(decls []ast.Declaration) {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.ClassDecl:
			a.declareNamed(d, d.Name, types.KindClass)
		case *ast.InterfaceDecl:
			a.declareNamed(d, d.Name, types.KindInterface)
		case *ast.StructDecl:
			a.declareNamed(d, d.Name, types.KindStruct)
		case *ast.EnumDecl:
			if a.declareNamed(d, d.Name, types.KindEnum) {
				// Enums are int-sized constants.
				desc := a.e.Registry.Get(d.Name)
				desc.Size = 4
				desc.Alignment = 4
			}
		case *ast.NamespaceDecl:
			a.declareTypes(d.Declarations)
		}
	}
}

func (a *Analyzer) declareNamed(at ast.Node, name string, kind types.Kind) bool {
	if existing := a.e.Registry.Get(name); existing != nil {
		a.errorf(CodeDuplicateType, at, "type %s already declared", name)
		return false
	}
	a.e.Registry.Register(name, &types.Descriptor{
		Kind:      kind,
		Name:      name,
		Members:   make(map[string]*types.Descriptor),
		Alignment: 1,
	})
	return true
}

// checkDecls fills in the declared placeholders and validates each
// declaration.
func (a *Analyzer) checkDecls(decls []ast.Declaration) {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.FunctionDecl:
			a.checkFunction(d)
		case *ast.VariableDecl:
			a.checkVariable(d)
		case *ast.ClassDecl:
			a.checkClass(d)
		case *ast.InterfaceDecl:
			a.checkInterface(d)
		case *ast.StructDecl:
			a.checkStruct(d)
		case *ast.TypeAliasDecl:
			a.checkAlias(d)
		case *ast.EnumDecl:
			// Members are constants; nothing to resolve.
		case *ast.ImportDecl, *ast.ExportDecl:
			// Module wiring is the target generator's concern.
		case *ast.NamespaceDecl:
			a.e.EnterScope(d.Name)
			a.checkDecls(d.Declarations)
			a.e.ExitScope()
		}
	}
}

func (a *Analyzer) checkFunction(d *ast.FunctionDecl) {
	params := make([]*types.Descriptor, len(d.Parameters))
	for i, p := range d.Parameters {
		params[i] = a.resolveType(p.Type)
	}
	ret := a.resolveType(d.ReturnType)
	sig := a.e.Registry.FunctionOf(ret, params, false)

	for _, existing := range a.funcs[d.Name] {
		if a.e.Checker.Equal(existing, sig) {
			a.errorf(CodeDuplicateFunction, d, "function %s redeclared with identical signature %s", d.Name, sig.Name)
			return
		}
	}
	a.funcs[d.Name] = append(a.funcs[d.Name], sig)
}

func (a *Analyzer) checkVariable(d *ast.VariableDecl) {
	initType := a.inferExprType(d.Initializer)

	ictx := types.ContextNone
	if d.Initializer != nil {
		ictx = types.ContextInitialization
	}

	// A missing annotation is inference, same as an explicit auto.
	var declared *types.Descriptor
	if d.Type == nil {
		declared = a.e.Checker.Infer("auto", ictx, initType)
	} else {
		declared = a.resolveType(d.Type)
		if declared.Kind == types.KindAuto {
			declared = a.e.Checker.Infer(declared.Name, ictx, initType)
		}
	}

	if initType != nil && !declared.IsUnknown() && !initType.IsUnknown() {
		if !a.e.Checker.Assignable(initType, declared) {
			a.errorf(CodeTypeMismatch, d, "cannot initialize %s (%s) from %s", d.Name, declared.Name, initType.Name)
		}
	}
	a.symbols[d.Name] = declared
}

func (a *Analyzer) checkClass(d *ast.ClassDecl) {
	desc := a.e.Registry.Get(d.Name)
	if desc == nil {
		return
	}

	if d.SuperClass != "" {
		base := a.e.Registry.Get(d.SuperClass)
		if base == nil {
			a.e.Warnf(CodeUnknownType, d, "class %s extends unknown type %s", d.Name, d.SuperClass)
		} else {
			desc.Bases = append(desc.Bases, base)
		}
	}
	for _, iface := range d.Interfaces {
		if a.e.Registry.Get(iface) == nil {
			a.e.Warnf(CodeUnknownType, d, "class %s implements unknown interface %s", d.Name, iface)
		}
	}

	a.e.EnterScope(d.Name)
	for _, member := range d.Members {
		switch m := member.(type) {
		case *ast.VariableDecl:
			desc.Members[m.Name] = a.resolveType(m.Type)
		case *ast.FunctionDecl:
			params := make([]*types.Descriptor, len(m.Parameters))
			for i, p := range m.Parameters {
				params[i] = a.resolveType(p.Type)
			}
			desc.Members[m.Name] = a.e.Registry.FunctionOf(a.resolveType(m.ReturnType), params, false)
		}
	}
	a.e.ExitScope()
}

func (a *Analyzer) checkInterface(d *ast.InterfaceDecl) {
	desc := a.e.Registry.Get(d.Name)
	if desc == nil {
		return
	}
	for _, ext := range d.Extends {
		base := a.e.Registry.Get(ext)
		if base == nil {
			a.e.Warnf(CodeUnknownType, d, "interface %s extends unknown type %s", d.Name, ext)
			continue
		}
		desc.Bases = append(desc.Bases, base)
	}
	for _, member := range d.Members {
		if m, ok := member.(*ast.FunctionDecl); ok {
			params := make([]*types.Descriptor, len(m.Parameters))
			for i, p := range m.Parameters {
				params[i] = a.resolveType(p.Type)
			}
			desc.Members[m.Name] = a.e.Registry.FunctionOf(a.resolveType(m.ReturnType), params, false)
		}
	}
}

func (a *Analyzer) checkStruct(d *ast.StructDecl) {
	desc := a.e.Registry.Get(d.Name)
	if desc == nil {
		return
	}
	size := 0
	alignment := 1
	for _, f := range d.Fields {
		ft := a.resolveType(f.Type)
		desc.Members[f.Name] = ft
		size += ft.Size
		if ft.Alignment > alignment {
			alignment = ft.Alignment
		}
	}
	desc.Size = size
	desc.Alignment = alignment
}

func (a *Analyzer) checkAlias(d *ast.TypeAliasDecl) {
	target := a.resolveType(d.Target)
	if target.IsUnknown() {
		a.e.Warnf(CodeUnknownType, d, "alias %s targets unknown type %s", d.Name, target.Name)
		return
	}
	a.e.Registry.RegisterAlias(d.Name, target.Name)
}

// resolveType maps a syntactic type node to its canonical descriptor. A nil
// node is void; an unknown name resolves to an Unknown descriptor with a
// warning, never a failure.
func (a *Analyzer) resolveType(t ast.TypeNode) *types.Descriptor {
	switch tn := t.(type) {
	case nil:
		return a.e.Registry.Resolve("void")

	case *ast.NamedTypeNode:
		d := a.e.Registry.Resolve(tn.Name)
		if d.IsUnknown() {
			a.e.Warnf(CodeUnknownType, tn, "unknown type %s", tn.Name)
		}
		return d

	case *ast.PointerTypeNode:
		return a.e.Registry.PointerTo(a.resolveType(tn.Pointee))

	case *ast.ReferenceTypeNode:
		return a.e.Registry.ReferenceTo(a.resolveType(tn.Referenced))

	case *ast.ArrayTypeNode:
		return a.e.Registry.ArrayOf(a.resolveType(tn.Element), tn.Length)

	case *ast.FunctionTypeNode:
		params := make([]*types.Descriptor, len(tn.Parameters))
		for i, p := range tn.Parameters {
			params[i] = a.resolveType(p)
		}
		return a.e.Registry.FunctionOf(a.resolveType(tn.Return), params, tn.Variadic)

	case *ast.UnionTypeNode:
		members := make([]*types.Descriptor, len(tn.Members))
		for i, m := range tn.Members {
			members[i] = a.resolveType(m)
		}
		return a.e.Registry.UnionOf(members)

	case *ast.TemplateTypeNode:
		template := a.e.Registry.Get(tn.Name)
		if template == nil {
			a.e.Warnf(CodeUnknownType, tn, "unknown template %s", tn.Name)
			return types.Unknown(tn.Name)
		}
		args := make([]*types.Descriptor, len(tn.Args))
		for i, arg := range tn.Args {
			args[i] = a.resolveType(arg)
		}
		for i, param := range template.TemplateParams {
			if i >= len(args) {
				break
			}
			if !a.e.Checker.CheckTemplateConstraint(param, args[i]) {
				a.errorf(CodeTemplateConstraint, tn, "argument %s does not satisfy constraint %s on %s", args[i].Name, param.Constraint, param.Name)
			}
		}
		return a.e.Registry.Instantiate(template, args)

	default:
		return types.Unknown("")
	}
}

// inferExprType types literal initializers and known identifiers; anything
// else is nil (unchecked).
func (a *Analyzer) inferExprType(expr ast.Expression) *types.Descriptor {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return a.e.Registry.Resolve("int")
	case *ast.FloatLiteral:
		return a.e.Registry.Resolve("double")
	case *ast.StringLiteral:
		return a.e.Registry.Resolve("string")
	case *ast.BoolLiteral:
		return a.e.Registry.Resolve("bool")
	case *ast.Identifier:
		return a.symbols[e.Name]
	default:
		return nil
	}
}
