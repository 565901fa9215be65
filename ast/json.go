package ast

import (
	"encoding/json"
	"fmt"
)

// This file decodes the parser's serialized tree format. Every node is an
// object with a "kind" discriminator matching the Go type name, an optional
// "loc" span, and kind-specific fields. The decoder is strict about kinds
// (an unknown kind is an error; the generators' best-effort policy applies
// only to constructs a target cannot lower, not to malformed input).

// DecodeProgram decodes a serialized Program tree.
func DecodeProgram(data []byte) (*Program, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}
	if env.Kind != "Program" {
		return nil, fmt.Errorf("decode program: root kind is %q, want Program", env.Kind)
	}
	decls, err := decodeDeclList(env.Declarations)
	if err != nil {
		return nil, err
	}
	p := &Program{Declarations: decls}
	p.Location = env.location()
	return p, nil
}

// envelope is the union of every serialized node field. Children stay raw
// until the kind switch decides which family decoder applies.
type envelope struct {
	Kind string          `json:"kind"`
	Loc  *SourceLocation `json:"loc"`

	Name       string `json:"name"`
	Module     string `json:"module"`
	Operator   string `json:"operator"`
	Property   string `json:"property"`
	SuperClass string `json:"superClass"`

	Names      []string `json:"names"`
	Interfaces []string `json:"interfaces"`
	Extends    []string `json:"extends"`

	IsExported bool `json:"isExported"`
	IsAsync    bool `json:"isAsync"`
	IsConst    bool `json:"isConst"`
	IsUnsigned bool `json:"isUnsigned"`
	Prefix     bool `json:"prefix"`
	Variadic   bool `json:"variadic"`
	Length     int  `json:"length"`

	Value json.RawMessage `json:"value"`

	Left         json.RawMessage `json:"left"`
	Right        json.RawMessage `json:"right"`
	Object       json.RawMessage `json:"object"`
	Index        json.RawMessage `json:"index"`
	Callee       json.RawMessage `json:"callee"`
	Base         json.RawMessage `json:"base"`
	Condition    json.RawMessage `json:"condition"`
	Then         json.RawMessage `json:"then"`
	Else         json.RawMessage `json:"else"`
	Init         json.RawMessage `json:"init"`
	Update       json.RawMessage `json:"update"`
	Body         json.RawMessage `json:"body"`
	Block        json.RawMessage `json:"block"`
	Finally      json.RawMessage `json:"finally"`
	Discriminant json.RawMessage `json:"discriminant"`
	Expr         json.RawMessage `json:"expr"`
	Target       json.RawMessage `json:"target"`
	Initializer  json.RawMessage `json:"initializer"`
	Type         json.RawMessage `json:"type"`
	ReturnType   json.RawMessage `json:"returnType"`
	Element      json.RawMessage `json:"element"`
	Pointee      json.RawMessage `json:"pointee"`
	Referenced   json.RawMessage `json:"referenced"`
	Decl         json.RawMessage `json:"decl"`
	Return       json.RawMessage `json:"return"`

	Declarations []json.RawMessage `json:"declarations"`
	Statements   []json.RawMessage `json:"statements"`
	Members      []json.RawMessage `json:"members"`
	Fields       []json.RawMessage `json:"fields"`
	Elements     []json.RawMessage `json:"elements"`
	Args         []json.RawMessage `json:"args"`
	TypeArgs     []json.RawMessage `json:"typeArgs"`
	ParamTypes   []json.RawMessage `json:"paramTypes"`

	TypeParameters []TypeParameter `json:"typeParameters"`

	Parameters []struct {
		Name         string          `json:"name"`
		Type         json.RawMessage `json:"type"`
		DefaultValue json.RawMessage `json:"default"`
	} `json:"parameters"`

	Cases []struct {
		Test json.RawMessage   `json:"test"`
		Body []json.RawMessage `json:"body"`
	} `json:"cases"`

	Properties []struct {
		Key   string          `json:"key"`
		Value json.RawMessage `json:"value"`
	} `json:"properties"`

	Catch *struct {
		Param string          `json:"param"`
		Body  json.RawMessage `json:"body"`
	} `json:"catch"`
}

func (e *envelope) location() SourceLocation {
	if e.Loc == nil {
		return SourceLocation{}
	}
	return *e.Loc
}

func parseEnvelope(raw json.RawMessage) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode node: %w", err)
	}
	if env.Kind == "" {
		return nil, fmt.Errorf("decode node: missing kind")
	}
	return &env, nil
}

func decodeDeclList(raws []json.RawMessage) ([]Declaration, error) {
	decls := make([]Declaration, 0, len(raws))
	for _, raw := range raws {
		d, err := decodeDecl(raw)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return decls, nil
}

func decodeStmtList(raws []json.RawMessage) ([]Statement, error) {
	stmts := make([]Statement, 0, len(raws))
	for _, raw := range raws {
		s, err := decodeStmt(raw)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func decodeExprList(raws []json.RawMessage) ([]Expression, error) {
	exprs := make([]Expression, 0, len(raws))
	for _, raw := range raws {
		e, err := decodeExpr(raw)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func decodeTypeList(raws []json.RawMessage) ([]TypeNode, error) {
	types := make([]TypeNode, 0, len(raws))
	for _, raw := range raws {
		t, err := decodeType(raw)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func optExpr(raw json.RawMessage) (Expression, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return decodeExpr(raw)
}

func optStmt(raw json.RawMessage) (Statement, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return decodeStmt(raw)
}

func optType(raw json.RawMessage) (TypeNode, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return decodeType(raw)
}

func optBlock(raw json.RawMessage) (*BlockStmt, error) {
	s, err := optStmt(raw)
	if err != nil || s == nil {
		return nil, err
	}
	block, ok := s.(*BlockStmt)
	if !ok {
		return nil, fmt.Errorf("decode node: expected BlockStmt body")
	}
	return block, nil
}

func decodeDecl(raw json.RawMessage) (Declaration, error) {
	env, err := parseEnvelope(raw)
	if err != nil {
		return nil, err
	}

	switch env.Kind {
	case "FunctionDecl":
		d := &FunctionDecl{
			Name:           env.Name,
			TypeParameters: env.TypeParameters,
			IsExported:     env.IsExported,
			IsAsync:        env.IsAsync,
		}
		d.Location = env.location()
		for _, p := range env.Parameters {
			param := Parameter{Name: p.Name}
			if param.Type, err = optType(p.Type); err != nil {
				return nil, err
			}
			if param.DefaultValue, err = optExpr(p.DefaultValue); err != nil {
				return nil, err
			}
			d.Parameters = append(d.Parameters, param)
		}
		if d.ReturnType, err = optType(env.ReturnType); err != nil {
			return nil, err
		}
		if d.Body, err = optBlock(env.Body); err != nil {
			return nil, err
		}
		return d, nil

	case "VariableDecl":
		return decodeVariableDecl(env)

	case "ClassDecl":
		d := &ClassDecl{
			Name:           env.Name,
			TypeParameters: env.TypeParameters,
			SuperClass:     env.SuperClass,
			Interfaces:     env.Interfaces,
			IsExported:     env.IsExported,
		}
		d.Location = env.location()
		if d.Members, err = decodeDeclList(env.Members); err != nil {
			return nil, err
		}
		return d, nil

	case "InterfaceDecl":
		d := &InterfaceDecl{
			Name:           env.Name,
			TypeParameters: env.TypeParameters,
			Extends:        env.Extends,
			IsExported:     env.IsExported,
		}
		d.Location = env.location()
		if d.Members, err = decodeDeclList(env.Members); err != nil {
			return nil, err
		}
		return d, nil

	case "StructDecl":
		d := &StructDecl{Name: env.Name, IsExported: env.IsExported}
		d.Location = env.location()
		for _, f := range env.Fields {
			fieldEnv, err := parseEnvelope(f)
			if err != nil {
				return nil, err
			}
			field, err := decodeVariableDecl(fieldEnv)
			if err != nil {
				return nil, err
			}
			d.Fields = append(d.Fields, field)
		}
		return d, nil

	case "EnumDecl":
		d := &EnumDecl{Name: env.Name, IsExported: env.IsExported}
		d.Location = env.location()
		for _, m := range env.Members {
			memberEnv, err := parseEnvelope(m)
			if err != nil {
				return nil, err
			}
			member := EnumMember{Name: memberEnv.Name}
			if member.Value, err = optExpr(memberEnv.Value); err != nil {
				return nil, err
			}
			d.Members = append(d.Members, member)
		}
		return d, nil

	case "TypeAliasDecl":
		d := &TypeAliasDecl{Name: env.Name, IsExported: env.IsExported}
		d.Location = env.location()
		if d.Target, err = decodeType(env.Target); err != nil {
			return nil, err
		}
		return d, nil

	case "ImportDecl":
		d := &ImportDecl{Names: env.Names, Module: env.Module}
		d.Location = env.location()
		return d, nil

	case "ExportDecl":
		d := &ExportDecl{Names: env.Names, Module: env.Module}
		d.Location = env.location()
		return d, nil

	case "NamespaceDecl":
		d := &NamespaceDecl{Name: env.Name}
		d.Location = env.location()
		if d.Declarations, err = decodeDeclList(env.Declarations); err != nil {
			return nil, err
		}
		return d, nil

	default:
		return nil, fmt.Errorf("decode declaration: unknown kind %q", env.Kind)
	}
}

func decodeVariableDecl(env *envelope) (*VariableDecl, error) {
	d := &VariableDecl{
		Name:       env.Name,
		IsConst:    env.IsConst,
		IsExported: env.IsExported,
	}
	d.Location = env.location()
	var err error
	if d.Type, err = optType(env.Type); err != nil {
		return nil, err
	}
	if d.Initializer, err = optExpr(env.Initializer); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeStmt(raw json.RawMessage) (Statement, error) {
	env, err := parseEnvelope(raw)
	if err != nil {
		return nil, err
	}

	switch env.Kind {
	case "BlockStmt":
		s := &BlockStmt{}
		s.Location = env.location()
		if s.Statements, err = decodeStmtList(env.Statements); err != nil {
			return nil, err
		}
		return s, nil

	case "ExpressionStmt":
		s := &ExpressionStmt{}
		s.Location = env.location()
		if s.Expr, err = decodeExpr(env.Expr); err != nil {
			return nil, err
		}
		return s, nil

	case "VariableDeclStmt":
		s := &VariableDeclStmt{}
		s.Location = env.location()
		declEnv, err := parseEnvelope(env.Decl)
		if err != nil {
			return nil, err
		}
		if s.Decl, err = decodeVariableDecl(declEnv); err != nil {
			return nil, err
		}
		return s, nil

	case "IfStmt":
		s := &IfStmt{}
		s.Location = env.location()
		if s.Condition, err = decodeExpr(env.Condition); err != nil {
			return nil, err
		}
		if s.Then, err = decodeStmt(env.Then); err != nil {
			return nil, err
		}
		if s.Else, err = optStmt(env.Else); err != nil {
			return nil, err
		}
		return s, nil

	case "ForStmt":
		s := &ForStmt{}
		s.Location = env.location()
		if s.Init, err = optStmt(env.Init); err != nil {
			return nil, err
		}
		if s.Condition, err = optExpr(env.Condition); err != nil {
			return nil, err
		}
		if s.Update, err = optExpr(env.Update); err != nil {
			return nil, err
		}
		if s.Body, err = decodeStmt(env.Body); err != nil {
			return nil, err
		}
		return s, nil

	case "WhileStmt":
		s := &WhileStmt{}
		s.Location = env.location()
		if s.Condition, err = decodeExpr(env.Condition); err != nil {
			return nil, err
		}
		if s.Body, err = decodeStmt(env.Body); err != nil {
			return nil, err
		}
		return s, nil

	case "DoWhileStmt":
		s := &DoWhileStmt{}
		s.Location = env.location()
		if s.Body, err = decodeStmt(env.Body); err != nil {
			return nil, err
		}
		if s.Condition, err = decodeExpr(env.Condition); err != nil {
			return nil, err
		}
		return s, nil

	case "SwitchStmt":
		s := &SwitchStmt{}
		s.Location = env.location()
		if s.Discriminant, err = decodeExpr(env.Discriminant); err != nil {
			return nil, err
		}
		for _, c := range env.Cases {
			clause := CaseClause{}
			if clause.Test, err = optExpr(c.Test); err != nil {
				return nil, err
			}
			if clause.Body, err = decodeStmtList(c.Body); err != nil {
				return nil, err
			}
			s.Cases = append(s.Cases, clause)
		}
		return s, nil

	case "ReturnStmt":
		s := &ReturnStmt{}
		s.Location = env.location()
		if s.Value, err = optExpr(env.Value); err != nil {
			return nil, err
		}
		return s, nil

	case "BreakStmt":
		s := &BreakStmt{}
		s.Location = env.location()
		return s, nil

	case "ContinueStmt":
		s := &ContinueStmt{}
		s.Location = env.location()
		return s, nil

	case "ThrowStmt":
		s := &ThrowStmt{}
		s.Location = env.location()
		if s.Value, err = decodeExpr(env.Value); err != nil {
			return nil, err
		}
		return s, nil

	case "TryStmt":
		s := &TryStmt{}
		s.Location = env.location()
		if s.Block, err = optBlock(env.Block); err != nil {
			return nil, err
		}
		if env.Catch != nil {
			clause := &CatchClause{Param: env.Catch.Param}
			if clause.Body, err = optBlock(env.Catch.Body); err != nil {
				return nil, err
			}
			s.Catch = clause
		}
		if s.Finally, err = optBlock(env.Finally); err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, fmt.Errorf("decode statement: unknown kind %q", env.Kind)
	}
}

func decodeExpr(raw json.RawMessage) (Expression, error) {
	env, err := parseEnvelope(raw)
	if err != nil {
		return nil, err
	}

	switch env.Kind {
	case "Identifier":
		e := &Identifier{Name: env.Name}
		e.Location = env.location()
		return e, nil

	case "IntLiteral":
		e := &IntLiteral{}
		e.Location = env.location()
		if err := json.Unmarshal(env.Value, &e.Value); err != nil {
			return nil, fmt.Errorf("decode int literal: %w", err)
		}
		return e, nil

	case "FloatLiteral":
		e := &FloatLiteral{}
		e.Location = env.location()
		if err := json.Unmarshal(env.Value, &e.Value); err != nil {
			return nil, fmt.Errorf("decode float literal: %w", err)
		}
		return e, nil

	case "StringLiteral":
		e := &StringLiteral{}
		e.Location = env.location()
		if err := json.Unmarshal(env.Value, &e.Value); err != nil {
			return nil, fmt.Errorf("decode string literal: %w", err)
		}
		return e, nil

	case "BoolLiteral":
		e := &BoolLiteral{}
		e.Location = env.location()
		if err := json.Unmarshal(env.Value, &e.Value); err != nil {
			return nil, fmt.Errorf("decode bool literal: %w", err)
		}
		return e, nil

	case "NullLiteral":
		e := &NullLiteral{}
		e.Location = env.location()
		return e, nil

	case "ArrayLiteral":
		e := &ArrayLiteral{}
		e.Location = env.location()
		if e.Elements, err = decodeExprList(env.Elements); err != nil {
			return nil, err
		}
		return e, nil

	case "ObjectLiteral":
		e := &ObjectLiteral{}
		e.Location = env.location()
		for _, p := range env.Properties {
			prop := ObjectProperty{Key: p.Key}
			if prop.Value, err = decodeExpr(p.Value); err != nil {
				return nil, err
			}
			e.Properties = append(e.Properties, prop)
		}
		return e, nil

	case "BinaryExpr":
		e := &BinaryExpr{Operator: env.Operator}
		e.Location = env.location()
		if e.Left, err = decodeExpr(env.Left); err != nil {
			return nil, err
		}
		if e.Right, err = decodeExpr(env.Right); err != nil {
			return nil, err
		}
		return e, nil

	case "UnaryExpr":
		e := &UnaryExpr{Operator: env.Operator, Prefix: env.Prefix}
		e.Location = env.location()
		if e.Operand, err = decodeExpr(env.Expr); err != nil {
			return nil, err
		}
		return e, nil

	case "AssignExpr":
		e := &AssignExpr{Operator: env.Operator}
		e.Location = env.location()
		if e.Target, err = decodeExpr(env.Target); err != nil {
			return nil, err
		}
		if e.Value, err = decodeExpr(env.Value); err != nil {
			return nil, err
		}
		return e, nil

	case "ConditionalExpr":
		e := &ConditionalExpr{}
		e.Location = env.location()
		if e.Condition, err = decodeExpr(env.Condition); err != nil {
			return nil, err
		}
		if e.Then, err = decodeExpr(env.Then); err != nil {
			return nil, err
		}
		if e.Else, err = decodeExpr(env.Else); err != nil {
			return nil, err
		}
		return e, nil

	case "CallExpr":
		e := &CallExpr{}
		e.Location = env.location()
		if e.Callee, err = decodeExpr(env.Callee); err != nil {
			return nil, err
		}
		if e.Args, err = decodeExprList(env.Args); err != nil {
			return nil, err
		}
		return e, nil

	case "MemberExpr":
		e := &MemberExpr{Property: env.Property}
		e.Location = env.location()
		if e.Object, err = decodeExpr(env.Object); err != nil {
			return nil, err
		}
		return e, nil

	case "IndexExpr":
		e := &IndexExpr{}
		e.Location = env.location()
		if e.Object, err = decodeExpr(env.Object); err != nil {
			return nil, err
		}
		if e.Index, err = decodeExpr(env.Index); err != nil {
			return nil, err
		}
		return e, nil

	case "NewExpr":
		e := &NewExpr{}
		e.Location = env.location()
		if e.Callee, err = decodeExpr(env.Callee); err != nil {
			return nil, err
		}
		if e.Args, err = decodeExprList(env.Args); err != nil {
			return nil, err
		}
		return e, nil

	case "CastExpr":
		e := &CastExpr{}
		e.Location = env.location()
		if e.Target, err = decodeType(env.Target); err != nil {
			return nil, err
		}
		if e.Value, err = decodeExpr(env.Value); err != nil {
			return nil, err
		}
		return e, nil

	case "TemplateInstantiationExpr":
		e := &TemplateInstantiationExpr{}
		e.Location = env.location()
		if e.Base, err = decodeExpr(env.Base); err != nil {
			return nil, err
		}
		if e.TypeArgs, err = decodeTypeList(env.TypeArgs); err != nil {
			return nil, err
		}
		return e, nil

	default:
		return nil, fmt.Errorf("decode expression: unknown kind %q", env.Kind)
	}
}

func decodeType(raw json.RawMessage) (TypeNode, error) {
	env, err := parseEnvelope(raw)
	if err != nil {
		return nil, err
	}

	switch env.Kind {
	case "NamedTypeNode":
		t := &NamedTypeNode{Name: env.Name, IsConst: env.IsConst, IsUnsigned: env.IsUnsigned}
		t.Location = env.location()
		return t, nil

	case "PointerTypeNode":
		t := &PointerTypeNode{}
		t.Location = env.location()
		if t.Pointee, err = decodeType(env.Pointee); err != nil {
			return nil, err
		}
		return t, nil

	case "ReferenceTypeNode":
		t := &ReferenceTypeNode{}
		t.Location = env.location()
		if t.Referenced, err = decodeType(env.Referenced); err != nil {
			return nil, err
		}
		return t, nil

	case "ArrayTypeNode":
		t := &ArrayTypeNode{Length: env.Length}
		t.Location = env.location()
		if t.Element, err = decodeType(env.Element); err != nil {
			return nil, err
		}
		return t, nil

	case "FunctionTypeNode":
		t := &FunctionTypeNode{Variadic: env.Variadic}
		t.Location = env.location()
		if t.Parameters, err = decodeTypeList(env.ParamTypes); err != nil {
			return nil, err
		}
		if t.Return, err = optType(env.Return); err != nil {
			return nil, err
		}
		return t, nil

	case "UnionTypeNode":
		t := &UnionTypeNode{}
		t.Location = env.location()
		if t.Members, err = decodeTypeList(env.Members); err != nil {
			return nil, err
		}
		return t, nil

	case "TemplateTypeNode":
		t := &TemplateTypeNode{Name: env.Name}
		t.Location = env.location()
		if t.Args, err = decodeTypeList(env.TypeArgs); err != nil {
			return nil, err
		}
		return t, nil

	default:
		return nil, fmt.Errorf("decode type node: unknown kind %q", env.Kind)
	}
}
