package ast

import (
	"strings"
	"testing"
)

func TestDecodeProgram(t *testing.T) {
	data := []byte(`{
		"kind": "Program",
		"declarations": [
			{
				"kind": "FunctionDecl",
				"name": "damage",
				"isExported": true,
				"loc": {"file": "combat.ws", "start": {"line": 3, "column": 1}},
				"parameters": [
					{"name": "amount", "type": {"kind": "NamedTypeNode", "name": "int"}},
					{"name": "crit", "type": {"kind": "NamedTypeNode", "name": "bool"}, "default": {"kind": "BoolLiteral", "value": false}}
				],
				"returnType": {"kind": "NamedTypeNode", "name": "float"},
				"body": {
					"kind": "BlockStmt",
					"statements": [
						{
							"kind": "IfStmt",
							"condition": {"kind": "Identifier", "name": "crit"},
							"then": {
								"kind": "ReturnStmt",
								"value": {
									"kind": "BinaryExpr",
									"operator": "*",
									"left": {"kind": "Identifier", "name": "amount"},
									"right": {"kind": "FloatLiteral", "value": 1.5}
								}
							}
						},
						{"kind": "ReturnStmt", "value": {"kind": "Identifier", "name": "amount"}}
					]
				}
			},
			{
				"kind": "VariableDecl",
				"name": "maxHealth",
				"isConst": true,
				"type": {"kind": "NamedTypeNode", "name": "int"},
				"initializer": {"kind": "IntLiteral", "value": 100}
			}
		]
	}`)

	program, err := DecodeProgram(data)
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}
	if len(program.Declarations) != 2 {
		t.Fatalf("len(Declarations) = %d, want 2", len(program.Declarations))
	}

	fn, ok := program.Declarations[0].(*FunctionDecl)
	if !ok {
		t.Fatalf("first declaration is %T, want *FunctionDecl", program.Declarations[0])
	}
	if fn.Name != "damage" || !fn.IsExported {
		t.Errorf("function = %q exported=%v, want damage exported", fn.Name, fn.IsExported)
	}
	if fn.Location.File != "combat.ws" || fn.Location.Start.Line != 3 {
		t.Errorf("location = %+v, want combat.ws:3", fn.Location)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("len(Parameters) = %d, want 2", len(fn.Parameters))
	}
	if fn.Parameters[1].DefaultValue == nil {
		t.Error("second parameter lost its default value")
	}
	if named, ok := fn.ReturnType.(*NamedTypeNode); !ok || named.Name != "float" {
		t.Errorf("return type = %#v, want float", fn.ReturnType)
	}
	if fn.Body == nil || len(fn.Body.Statements) != 2 {
		t.Fatalf("body = %+v, want 2 statements", fn.Body)
	}
	ifStmt, ok := fn.Body.Statements[0].(*IfStmt)
	if !ok {
		t.Fatalf("first statement is %T, want *IfStmt", fn.Body.Statements[0])
	}
	if ifStmt.Else != nil {
		t.Error("absent else decoded as non-nil")
	}

	v, ok := program.Declarations[1].(*VariableDecl)
	if !ok {
		t.Fatalf("second declaration is %T, want *VariableDecl", program.Declarations[1])
	}
	if !v.IsConst {
		t.Error("const flag lost")
	}
	if lit, ok := v.Initializer.(*IntLiteral); !ok || lit.Value != 100 {
		t.Errorf("initializer = %#v, want IntLiteral 100", v.Initializer)
	}
}

func TestDecodeClassWithMembers(t *testing.T) {
	data := []byte(`{
		"kind": "Program",
		"declarations": [{
			"kind": "ClassDecl",
			"name": "Player",
			"superClass": "Entity",
			"interfaces": ["Damageable"],
			"typeParameters": [{"name": "T", "constraint": "number"}],
			"members": [
				{"kind": "VariableDecl", "name": "health", "type": {"kind": "NamedTypeNode", "name": "int"}},
				{"kind": "FunctionDecl", "name": "heal", "parameters": [{"name": "hp", "type": {"kind": "NamedTypeNode", "name": "int"}}]}
			]
		}]
	}`)

	program, err := DecodeProgram(data)
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}
	class, ok := program.Declarations[0].(*ClassDecl)
	if !ok {
		t.Fatalf("declaration is %T, want *ClassDecl", program.Declarations[0])
	}
	if class.SuperClass != "Entity" || len(class.Interfaces) != 1 {
		t.Errorf("hierarchy = %q/%v, want Entity/[Damageable]", class.SuperClass, class.Interfaces)
	}
	if len(class.TypeParameters) != 1 || class.TypeParameters[0].Constraint != "number" {
		t.Errorf("type parameters = %+v, want [T: number]", class.TypeParameters)
	}
	if len(class.Members) != 2 {
		t.Fatalf("len(Members) = %d, want 2", len(class.Members))
	}
	if method, ok := class.Members[1].(*FunctionDecl); !ok || method.Body != nil {
		t.Errorf("second member = %#v, want bodyless method", class.Members[1])
	}
}

func TestDecodeTypeNodes(t *testing.T) {
	data := []byte(`{
		"kind": "Program",
		"declarations": [{
			"kind": "VariableDecl",
			"name": "handler",
			"type": {
				"kind": "FunctionTypeNode",
				"paramTypes": [
					{"kind": "PointerTypeNode", "pointee": {"kind": "NamedTypeNode", "name": "char"}},
					{"kind": "ArrayTypeNode", "element": {"kind": "NamedTypeNode", "name": "int"}, "length": 4},
					{"kind": "UnionTypeNode", "members": [
						{"kind": "NamedTypeNode", "name": "int"},
						{"kind": "NamedTypeNode", "name": "string"}
					]}
				],
				"return": {"kind": "TemplateTypeNode", "name": "Promise", "typeArgs": [{"kind": "NamedTypeNode", "name": "void"}]}
			}
		}]
	}`)

	program, err := DecodeProgram(data)
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}
	v := program.Declarations[0].(*VariableDecl)
	fn, ok := v.Type.(*FunctionTypeNode)
	if !ok {
		t.Fatalf("type is %T, want *FunctionTypeNode", v.Type)
	}
	if len(fn.Parameters) != 3 {
		t.Fatalf("len(Parameters) = %d, want 3", len(fn.Parameters))
	}
	ptr, ok := fn.Parameters[0].(*PointerTypeNode)
	if !ok {
		t.Fatalf("first parameter is %T, want *PointerTypeNode", fn.Parameters[0])
	}
	if named, ok := ptr.Pointee.(*NamedTypeNode); !ok || named.Name != "char" {
		t.Errorf("pointee = %#v, want char", ptr.Pointee)
	}
	if arr, ok := fn.Parameters[1].(*ArrayTypeNode); !ok || arr.Length != 4 {
		t.Errorf("second parameter = %#v, want int[4]", fn.Parameters[1])
	}
	if union, ok := fn.Parameters[2].(*UnionTypeNode); !ok || len(union.Members) != 2 {
		t.Errorf("third parameter = %#v, want a two-member union", fn.Parameters[2])
	}
	if tmpl, ok := fn.Return.(*TemplateTypeNode); !ok || tmpl.Name != "Promise" || len(tmpl.Args) != 1 {
		t.Errorf("return = %#v, want Promise<void>", fn.Return)
	}
}

func TestDecodeTryStmt(t *testing.T) {
	data := []byte(`{
		"kind": "Program",
		"declarations": [{
			"kind": "FunctionDecl",
			"name": "risky",
			"body": {
				"kind": "BlockStmt",
				"statements": [{
					"kind": "TryStmt",
					"block": {"kind": "BlockStmt", "statements": [
						{"kind": "ThrowStmt", "value": {"kind": "StringLiteral", "value": "boom"}}
					]},
					"catch": {"param": "err", "body": {"kind": "BlockStmt", "statements": []}},
					"finally": {"kind": "BlockStmt", "statements": [{"kind": "BreakStmt"}]}
				}]
			}
		}]
	}`)

	program, err := DecodeProgram(data)
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}
	fn := program.Declarations[0].(*FunctionDecl)
	tryStmt, ok := fn.Body.Statements[0].(*TryStmt)
	if !ok {
		t.Fatalf("statement is %T, want *TryStmt", fn.Body.Statements[0])
	}
	if tryStmt.Block == nil || len(tryStmt.Block.Statements) != 1 {
		t.Errorf("try block = %+v, want one statement", tryStmt.Block)
	}
	if tryStmt.Catch == nil || tryStmt.Catch.Param != "err" {
		t.Errorf("catch = %+v, want param err", tryStmt.Catch)
	}
	if tryStmt.Finally == nil || len(tryStmt.Finally.Statements) != 1 {
		t.Errorf("finally = %+v, want one statement", tryStmt.Finally)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not json", `{gibberish`, "decode program"},
		{"wrong root", `{"kind": "BlockStmt"}`, `root kind is "BlockStmt"`},
		{"unknown declaration", `{"kind": "Program", "declarations": [{"kind": "MacroDecl"}]}`, `unknown kind "MacroDecl"`},
		{"missing kind", `{"kind": "Program", "declarations": [{"name": "x"}]}`, "missing kind"},
		{"unknown expression", `{"kind": "Program", "declarations": [{"kind": "VariableDecl", "name": "x", "initializer": {"kind": "SpreadExpr"}}]}`, `unknown kind "SpreadExpr"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeProgram([]byte(tt.data))
			if err == nil {
				t.Fatal("DecodeProgram accepted malformed input")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}
