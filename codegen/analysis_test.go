package codegen

import (
	"context"
	"testing"

	"github.com/Elastic-Softworks/worldsrc/ast"
	"github.com/Elastic-Softworks/worldsrc/types"
)

func named(name string) *ast.NamedTypeNode {
	return &ast.NamedTypeNode{Name: name}
}

func analyze(t *testing.T, decls ...ast.Declaration) (*Emitter, error) {
	t.Helper()
	e := NewEmitter("//")
	err := NewAnalyzer(e).Analyze(context.Background(), ast.NewProgram(decls...))
	return e, err
}

func TestAnalyzeDuplicateType(t *testing.T) {
	_, err := analyze(t,
		&ast.ClassDecl{Name: "Player"},
		&ast.StructDecl{Name: "Player"},
	)
	if err == nil {
		t.Fatal("duplicate type accepted")
	}
}

func TestAnalyzeDuplicateOfBuiltin(t *testing.T) {
	e, err := analyze(t, &ast.ClassDecl{Name: "int"})
	if err == nil {
		t.Fatal("shadowing a builtin accepted")
	}
	if !hasCode(e.Diagnostics(), CodeDuplicateType) {
		t.Errorf("diagnostics %+v missing %s", e.Diagnostics(), CodeDuplicateType)
	}
}

func TestAnalyzeDuplicateFunction(t *testing.T) {
	sig := func() *ast.FunctionDecl {
		return &ast.FunctionDecl{
			Name:       "spawn",
			Parameters: []ast.Parameter{{Name: "count", Type: named("int")}},
		}
	}
	e, err := analyze(t, sig(), sig())
	if err == nil {
		t.Fatal("identical redeclaration accepted")
	}
	if !hasCode(e.Diagnostics(), CodeDuplicateFunction) {
		t.Errorf("diagnostics %+v missing %s", e.Diagnostics(), CodeDuplicateFunction)
	}
}

func TestAnalyzeOverloadsAllowed(t *testing.T) {
	_, err := analyze(t,
		&ast.FunctionDecl{Name: "spawn", Parameters: []ast.Parameter{{Name: "n", Type: named("int")}}},
		&ast.FunctionDecl{Name: "spawn", Parameters: []ast.Parameter{{Name: "n", Type: named("float")}}},
	)
	if err != nil {
		t.Fatalf("distinct overloads rejected: %v", err)
	}
}

func TestAnalyzeInitializerMismatch(t *testing.T) {
	e, err := analyze(t, &ast.VariableDecl{
		Name:        "hp",
		Type:        named("int"),
		Initializer: &ast.StringLiteral{Value: "full"},
	})
	if err == nil {
		t.Fatal("string initializer for int accepted")
	}
	if !hasCode(e.Diagnostics(), CodeTypeMismatch) {
		t.Errorf("diagnostics %+v missing %s", e.Diagnostics(), CodeTypeMismatch)
	}
}

func TestAnalyzeInitializerConversion(t *testing.T) {
	_, err := analyze(t, &ast.VariableDecl{
		Name:        "ratio",
		Type:        named("double"),
		Initializer: &ast.IntLiteral{Value: 1},
	})
	if err != nil {
		t.Fatalf("int to double initialization rejected: %v", err)
	}
}

func TestAnalyzeAutoInference(t *testing.T) {
	// auto takes the initializer type, so a later identifier reference
	// carries it: the string variable must not initialize an int.
	e, err := analyze(t,
		&ast.VariableDecl{Name: "tag", Type: named("auto"), Initializer: &ast.StringLiteral{Value: "x"}},
		&ast.VariableDecl{Name: "n", Type: named("int"), Initializer: &ast.Identifier{Name: "tag"}},
	)
	if err == nil {
		t.Fatal("auto-inferred string assigned to int")
	}
	if !hasCode(e.Diagnostics(), CodeTypeMismatch) {
		t.Errorf("diagnostics %+v missing %s", e.Diagnostics(), CodeTypeMismatch)
	}
}

func TestAnalyzeUntypedVariableInfers(t *testing.T) {
	// No annotation at all infers from the initializer, the same as an
	// explicit auto: the int must flow into double, the string must not
	// flow into int.
	_, err := analyze(t,
		&ast.VariableDecl{Name: "x", Initializer: &ast.IntLiteral{Value: 5}},
		&ast.VariableDecl{Name: "total", Type: named("double"), Initializer: &ast.Identifier{Name: "x"}},
	)
	if err != nil {
		t.Fatalf("untyped declaration rejected: %v", err)
	}

	e, err := analyze(t,
		&ast.VariableDecl{Name: "tag", Initializer: &ast.StringLiteral{Value: "x"}},
		&ast.VariableDecl{Name: "n", Type: named("int"), Initializer: &ast.Identifier{Name: "tag"}},
	)
	if err == nil {
		t.Fatal("untyped string flowed into int")
	}
	if !hasCode(e.Diagnostics(), CodeTypeMismatch) {
		t.Errorf("diagnostics %+v missing %s", e.Diagnostics(), CodeTypeMismatch)
	}
}

func TestAnalyzeUnknownTypeWarns(t *testing.T) {
	e, err := analyze(t, &ast.VariableDecl{Name: "w", Type: named("Widget")})
	if err != nil {
		t.Fatalf("unknown type escalated to failure: %v", err)
	}
	if !hasCode(e.Warnings(), CodeUnknownType) {
		t.Errorf("warnings %+v missing %s", e.Warnings(), CodeUnknownType)
	}
}

func TestAnalyzeForwardReference(t *testing.T) {
	// Class members may reference types declared later in the file.
	e, err := analyze(t,
		&ast.ClassDecl{Name: "World", Members: []ast.Declaration{
			&ast.VariableDecl{Name: "player", Type: named("Player")},
		}},
		&ast.ClassDecl{Name: "Player"},
	)
	if err != nil {
		t.Fatalf("forward reference rejected: %v", err)
	}
	if hasCode(e.Warnings(), CodeUnknownType) {
		t.Errorf("forward reference warned: %+v", e.Warnings())
	}
}

func TestAnalyzeClassHierarchy(t *testing.T) {
	e, err := analyze(t,
		&ast.ClassDecl{Name: "Entity"},
		&ast.ClassDecl{Name: "Player", SuperClass: "Entity"},
	)
	if err != nil {
		t.Fatalf("hierarchy rejected: %v", err)
	}

	player := e.Registry.Get("Player")
	entity := e.Registry.Get("Entity")
	if player == nil || len(player.Bases) != 1 || player.Bases[0] != entity {
		t.Errorf("Player bases = %+v, want [Entity]", player)
	}
	if cost, ok := e.Checker.ConversionCost(player, entity); !ok || cost != 1 {
		t.Errorf("Player to Entity = (%d, %v), want (1, true)", cost, ok)
	}
}

func TestAnalyzeStructLayout(t *testing.T) {
	e, err := analyze(t, &ast.StructDecl{Name: "Packet", Fields: []*ast.VariableDecl{
		{Name: "id", Type: named("int")},
		{Name: "weight", Type: named("double")},
	}})
	if err != nil {
		t.Fatalf("struct rejected: %v", err)
	}
	d := e.Registry.Get("Packet")
	if d.Size != 12 || d.Alignment != 8 {
		t.Errorf("Packet size/alignment = %d/%d, want 12/8", d.Size, d.Alignment)
	}
}

func TestAnalyzeAlias(t *testing.T) {
	e, err := analyze(t, &ast.TypeAliasDecl{Name: "EntityId", Target: named("int64")})
	if err != nil {
		t.Fatalf("alias rejected: %v", err)
	}
	if d := e.Registry.Get("EntityId"); d == nil || d.Name != "int64" {
		t.Errorf("alias resolves to %v, want int64", d)
	}
}

func TestAnalyzeTemplateConstraint(t *testing.T) {
	e := NewEmitter("//")
	e.Registry.Register("Box", &types.Descriptor{
		Kind:           types.KindClass,
		Name:           "Box",
		TemplateParams: []types.TemplateParam{{Name: "T", Constraint: "number"}},
	})

	bad := ast.NewProgram(&ast.VariableDecl{
		Name: "b",
		Type: &ast.TemplateTypeNode{Name: "Box", Args: []ast.TypeNode{named("string")}},
	})
	if err := NewAnalyzer(e).Analyze(context.Background(), bad); err == nil {
		t.Fatal("constraint violation accepted")
	}
	if !hasCode(e.Diagnostics(), CodeTemplateConstraint) {
		t.Errorf("diagnostics %+v missing %s", e.Diagnostics(), CodeTemplateConstraint)
	}

	e.Reset()
	e.Registry.Register("Box", &types.Descriptor{
		Kind:           types.KindClass,
		Name:           "Box",
		TemplateParams: []types.TemplateParam{{Name: "T", Constraint: "number"}},
	})
	good := ast.NewProgram(&ast.VariableDecl{
		Name: "b",
		Type: &ast.TemplateTypeNode{Name: "Box", Args: []ast.TypeNode{named("int")}},
	})
	if err := NewAnalyzer(e).Analyze(context.Background(), good); err != nil {
		t.Fatalf("satisfied constraint rejected: %v", err)
	}
}

func TestAnalyzeNamespaceScopesDiagnostics(t *testing.T) {
	e, err := analyze(t, &ast.NamespaceDecl{Name: "game", Declarations: []ast.Declaration{
		&ast.VariableDecl{Name: "hp", Type: named("int"), Initializer: &ast.StringLiteral{Value: "x"}},
	}})
	if err == nil {
		t.Fatal("mismatch inside namespace accepted")
	}
	found := false
	for _, d := range e.Diagnostics() {
		if d.Code == CodeTypeMismatch && len(d.Message) > 5 && d.Message[:5] == "game:" {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics %+v missing namespace-qualified mismatch", e.Diagnostics())
	}
}

func TestAnalyzeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := NewEmitter("//")
	if err := NewAnalyzer(e).Analyze(ctx, ast.NewProgram()); err == nil {
		t.Fatal("cancelled context accepted")
	}
}
