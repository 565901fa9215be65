package codegen

import (
	"testing"
)

func TestEmitLineIndentation(t *testing.T) {
	e := NewEmitter("//")
	e.Options.IndentSize = 2

	e.EmitLine("a")
	e.Indent()
	e.EmitLine("b")
	e.Indent()
	e.EmitLine("c")
	e.Dedent()
	e.Dedent()
	e.EmitLine("d")

	want := "a\n  b\n    c\nd\n"
	if e.Code() != want {
		t.Errorf("Code() = %q, want %q", e.Code(), want)
	}
	if e.Meta().Lines != 4 {
		t.Errorf("Lines = %d, want 4", e.Meta().Lines)
	}
}

func TestEmitLineTabs(t *testing.T) {
	e := NewEmitter("//")
	e.Options.UseTabs = true

	e.Indent()
	e.EmitLine("x")

	if e.Code() != "\tx\n" {
		t.Errorf("Code() = %q, want %q", e.Code(), "\tx\n")
	}
}

func TestDedentFloorsAtZero(t *testing.T) {
	e := NewEmitter("//")
	e.Dedent()
	e.Dedent()
	e.EmitLine("x")
	if e.Code() != "x\n" {
		t.Errorf("Code() = %q, want %q", e.Code(), "x\n")
	}
}

func TestEmitComment(t *testing.T) {
	e := NewEmitter("//")
	e.EmitComment("hello")
	if e.Code() != "// hello\n" {
		t.Errorf("Code() = %q, want %q", e.Code(), "// hello\n")
	}
}

func TestScopeQualification(t *testing.T) {
	e := NewEmitter("//")

	if got := e.QualifiedName("x"); got != "x" {
		t.Errorf("QualifiedName at top level = %q, want %q", got, "x")
	}

	e.EnterScope("Game")
	e.EnterScope("Player")
	if got := e.ScopePath(); got != "Game.Player" {
		t.Errorf("ScopePath = %q, want %q", got, "Game.Player")
	}
	if got := e.QualifiedName("hp"); got != "Game.Player.hp" {
		t.Errorf("QualifiedName = %q, want %q", got, "Game.Player.hp")
	}

	e.Errorf(CodeTypeMismatch, nil, "boom")
	diags := e.Diagnostics()
	if len(diags) != 1 || diags[0].Message != "Game.Player: boom" {
		t.Errorf("diagnostic = %+v, want scope-qualified message", diags)
	}

	e.ExitScope()
	e.ExitScope()
	e.ExitScope() // popping empty stack is a no-op
	if got := e.ScopePath(); got != "" {
		t.Errorf("ScopePath after exits = %q, want empty", got)
	}
}

func TestDiagnosticViews(t *testing.T) {
	e := NewEmitter("//")
	e.Warnf(CodeUnknownType, nil, "w1")
	e.Errorf(CodeTypeMismatch, nil, "e1")
	e.Warnf(CodeUnknownType, nil, "w2")
	e.Infof(CodeSuspiciousOption, nil, "i1")

	if len(e.Diagnostics()) != 4 {
		t.Errorf("len(Diagnostics) = %d, want 4", len(e.Diagnostics()))
	}
	if len(e.Warnings()) != 2 {
		t.Errorf("len(Warnings) = %d, want 2", len(e.Warnings()))
	}
	if !e.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestResetClearsState(t *testing.T) {
	e := NewEmitter("//")
	e.EmitLine("stale")
	e.Indent()
	e.EnterScope("s")
	e.Errorf(CodeTypeMismatch, nil, "stale")
	e.CountFunction()
	firstRegistry := e.Registry

	e.Reset()

	if e.Code() != "" {
		t.Errorf("Code after Reset = %q, want empty", e.Code())
	}
	if len(e.Diagnostics()) != 0 || e.HasErrors() {
		t.Error("diagnostics survived Reset")
	}
	if e.Meta() != (Metadata{}) {
		t.Errorf("Meta after Reset = %+v, want zero", e.Meta())
	}
	if e.ScopePath() != "" {
		t.Error("scopes survived Reset")
	}
	if e.Registry == firstRegistry {
		t.Error("Reset reused the previous registry")
	}
}
