package ast

import (
	"testing"
)

// dispatchRecorder overrides the callbacks under test; the embedded nil
// Visitor makes any unexpected dispatch panic.
type dispatchRecorder struct {
	Visitor
	calls []string
}

func (r *dispatchRecorder) VisitProgram(p *Program) {
	r.calls = append(r.calls, "Program")
	for _, d := range p.Declarations {
		d.Accept(r)
	}
}

func (r *dispatchRecorder) VisitFunctionDecl(d *FunctionDecl) {
	r.calls = append(r.calls, "FunctionDecl:"+d.Name)
	for _, s := range d.Body.Statements {
		s.Accept(r)
	}
}

func (r *dispatchRecorder) VisitReturnStmt(s *ReturnStmt) {
	r.calls = append(r.calls, "ReturnStmt")
	s.Value.Accept(r)
}

func (r *dispatchRecorder) VisitBinaryExpr(e *BinaryExpr) {
	r.calls = append(r.calls, "BinaryExpr:"+e.Operator)
	e.Left.Accept(r)
	e.Right.Accept(r)
}

func (r *dispatchRecorder) VisitIdentifier(e *Identifier) {
	r.calls = append(r.calls, "Identifier:"+e.Name)
}

func (r *dispatchRecorder) VisitIntLiteral(e *IntLiteral) {
	r.calls = append(r.calls, "IntLiteral")
}

func TestAcceptDispatch(t *testing.T) {
	program := NewProgram(&FunctionDecl{
		Name: "add",
		Body: &BlockStmt{Statements: []Statement{
			&ReturnStmt{Value: &BinaryExpr{
				Operator: "+",
				Left:     &Identifier{Name: "a"},
				Right:    &IntLiteral{Value: 1},
			}},
		}},
	})

	r := &dispatchRecorder{}
	program.Accept(r)

	want := []string{
		"Program",
		"FunctionDecl:add",
		"ReturnStmt",
		"BinaryExpr:+",
		"Identifier:a",
		"IntLiteral",
	}
	if len(r.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, r.calls[i], want[i])
		}
	}
}

func TestSourceLocationIsZero(t *testing.T) {
	var zero SourceLocation
	if !zero.IsZero() {
		t.Error("zero location reports non-zero")
	}
	loc := SourceLocation{File: "main.ws", Start: Position{Line: 1, Column: 1}}
	if loc.IsZero() {
		t.Error("populated location reports zero")
	}
}
