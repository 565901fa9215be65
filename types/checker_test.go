package types

import (
	"testing"
)

func TestStructuralEquality(t *testing.T) {
	r := NewRegistry()
	c := NewChecker(r)
	intType := r.Get("int")
	floatType := r.Get("float")

	// Distinct descriptor instances with the same shape compare equal.
	a := &Descriptor{Kind: KindPointer, Pointee: intType}
	b := &Descriptor{Kind: KindPointer, Pointee: intType}
	if !c.Equal(a, b) {
		t.Error("identically shaped pointers compare unequal")
	}
	if c.Equal(a, &Descriptor{Kind: KindPointer, Pointee: floatType}) {
		t.Error("int* and float* compare equal")
	}

	fixed3 := &Descriptor{Kind: KindArray, Element: intType, Length: 3}
	fixed4 := &Descriptor{Kind: KindArray, Element: intType, Length: 4}
	if c.Equal(fixed3, fixed4) {
		t.Error("int[3] and int[4] compare equal")
	}

	fn1 := &Descriptor{Kind: KindFunction, Return: intType, Parameters: []*Descriptor{floatType}}
	fn2 := &Descriptor{Kind: KindFunction, Return: intType, Parameters: []*Descriptor{floatType}}
	fn3 := &Descriptor{Kind: KindFunction, Return: intType, Parameters: []*Descriptor{floatType}, Variadic: true}
	if !c.Equal(fn1, fn2) {
		t.Error("identical function signatures compare unequal")
	}
	if c.Equal(fn1, fn3) {
		t.Error("variadic flag ignored in function equality")
	}

	if !c.Equal(nil, nil) {
		t.Error("nil descriptors compare unequal")
	}
	if c.Equal(intType, nil) {
		t.Error("int compares equal to nil")
	}
}

func TestConversionCosts(t *testing.T) {
	r := NewRegistry()
	c := NewChecker(r)

	tests := []struct {
		from, to string
		cost     int
		ok       bool
	}{
		{"char", "int", 1, true},
		{"int", "float", 2, true},
		{"int", "double", 2, true},
		{"float", "double", 1, true},
		{"double", "float", 4, true},
		{"int", "number", 1, true},
		{"number", "int", 2, true},
		{"bool", "boolean", 1, true},
		{"boolean", "bool", 1, true},
		{"any", "int", 4, true},
		{"int", "any", 2, true},
		{"int", "int", 0, true},
		{"string", "int", 0, false},
		{"void", "any", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			cost, ok := c.ConversionCost(r.Get(tt.from), r.Get(tt.to))
			if ok != tt.ok || cost != tt.cost {
				t.Errorf("ConversionCost(%s, %s) = (%d, %v), want (%d, %v)",
					tt.from, tt.to, cost, ok, tt.cost, tt.ok)
			}
		})
	}
}

func TestPointerAndArrayConversions(t *testing.T) {
	r := NewRegistry()
	c := NewChecker(r)
	intType := r.Get("int")
	floatType := r.Get("float")
	voidPtr := r.PointerTo(r.Get("void"))
	intPtr := r.PointerTo(intType)
	floatPtr := r.PointerTo(floatType)

	if cost, ok := c.ConversionCost(intPtr, voidPtr); !ok || cost != 1 {
		t.Errorf("int* to void* = (%d, %v), want (1, true)", cost, ok)
	}

	// Pointee conversion carries through with one extra level of cost.
	if cost, ok := c.ConversionCost(intPtr, floatPtr); !ok || cost != 3 {
		t.Errorf("int* to float* = (%d, %v), want (3, true)", cost, ok)
	}

	stringPtr := r.PointerTo(r.Get("string"))
	if _, ok := c.ConversionCost(intPtr, stringPtr); ok {
		t.Error("int* to string* converts but should not")
	}

	arr := r.ArrayOf(intType, 8)
	if cost, ok := c.ConversionCost(arr, intPtr); !ok || cost != 1 {
		t.Errorf("int[8] to int* = (%d, %v), want (1, true)", cost, ok)
	}
	if _, ok := c.ConversionCost(arr, floatPtr); ok {
		t.Error("int[8] decays to float* but should not")
	}
}

func TestBaseClassConversion(t *testing.T) {
	r := NewRegistry()
	c := NewChecker(r)

	entity := &Descriptor{Kind: KindClass, Name: "Entity"}
	actor := &Descriptor{Kind: KindClass, Name: "Actor", Bases: []*Descriptor{entity}}
	player := &Descriptor{Kind: KindClass, Name: "Player", Bases: []*Descriptor{actor}}

	if cost, ok := c.ConversionCost(actor, entity); !ok || cost != 1 {
		t.Errorf("Actor to Entity = (%d, %v), want (1, true)", cost, ok)
	}
	if cost, ok := c.ConversionCost(player, entity); !ok || cost != 2 {
		t.Errorf("Player to Entity = (%d, %v), want (2, true)", cost, ok)
	}
	if _, ok := c.ConversionCost(entity, player); ok {
		t.Error("downcast Entity to Player converts but should not")
	}
}

func TestBaseSearchTakesFirstDeclaredPath(t *testing.T) {
	r := NewRegistry()
	c := NewChecker(r)

	// Diamond: both bases reach Root, the first declared base decides.
	root := &Descriptor{Kind: KindClass, Name: "Root"}
	left := &Descriptor{Kind: KindClass, Name: "Left", Bases: []*Descriptor{root}}
	right := &Descriptor{Kind: KindClass, Name: "Right"}
	derived := &Descriptor{Kind: KindClass, Name: "Derived", Bases: []*Descriptor{left, right}}

	cost, ok := c.ConversionCost(derived, root)
	if !ok || cost != 2 {
		t.Errorf("Derived to Root = (%d, %v), want (2, true) via first base", cost, ok)
	}
}

func TestBaseSearchTerminatesOnCycle(t *testing.T) {
	r := NewRegistry()
	c := NewChecker(r)

	// Mutually recursive bases must not send the walk into infinite
	// recursion when the target is off the cycle.
	a := &Descriptor{Kind: KindClass, Name: "A"}
	b := &Descriptor{Kind: KindClass, Name: "B", Bases: []*Descriptor{a}}
	a.Bases = []*Descriptor{b}
	other := &Descriptor{Kind: KindClass, Name: "Other"}

	if _, ok := c.ConversionCost(a, other); ok {
		t.Error("cyclic A converts to unrelated Other but should not")
	}
	if cost, ok := c.ConversionCost(a, b); !ok || cost != 1 {
		t.Errorf("A to B on the cycle = (%d, %v), want (1, true)", cost, ok)
	}
	if cost, ok := c.ConversionCost(b, a); !ok || cost != 1 {
		t.Errorf("B to A on the cycle = (%d, %v), want (1, true)", cost, ok)
	}
}

func TestAssignableThreshold(t *testing.T) {
	r := NewRegistry()
	c := NewChecker(r)

	if !c.Assignable(r.Get("int"), r.Get("float")) {
		t.Error("int not assignable to float")
	}
	if !c.Assignable(r.Get("int"), r.Get("int")) {
		t.Error("int not assignable to itself")
	}
	if c.Assignable(r.Get("string"), r.Get("int")) {
		t.Error("string assignable to int")
	}

	// A chain of pointee conversions can accumulate past the threshold.
	ptr := r.Get("int")
	for i := 0; i < AssignabilityThreshold; i++ {
		ptr = r.PointerTo(ptr)
	}
	target := r.Get("float")
	for i := 0; i < AssignabilityThreshold; i++ {
		target = r.PointerTo(target)
	}
	if c.Assignable(ptr, target) {
		t.Error("deeply nested pointer conversion stayed under the threshold")
	}
}

func TestResolveOverload(t *testing.T) {
	r := NewRegistry()
	c := NewChecker(r)
	intType := r.Get("int")
	numberType := r.Get("number")
	voidType := r.Get("void")

	fInt := r.FunctionOf(voidType, []*Descriptor{intType}, false)
	fNumber := r.FunctionOf(voidType, []*Descriptor{numberType}, false)
	fTwo := r.FunctionOf(voidType, []*Descriptor{intType, intType}, false)

	// Exact match beats a conversion.
	got, ok := c.ResolveOverload([]*Descriptor{fNumber, fInt}, []*Descriptor{intType})
	if !ok || got != fInt {
		t.Errorf("int argument selected %v, want f(int)", got)
	}

	// number argument: f(number) is free, f(int) costs a truncation.
	got, ok = c.ResolveOverload([]*Descriptor{fInt, fNumber}, []*Descriptor{numberType})
	if !ok || got != fNumber {
		t.Errorf("number argument selected %v, want f(number)", got)
	}

	// Arity filters before cost.
	got, ok = c.ResolveOverload([]*Descriptor{fTwo, fInt}, []*Descriptor{intType})
	if !ok || got != fInt {
		t.Errorf("arity filter selected %v, want f(int)", got)
	}

	// Tie: char converts to short and int at equal cost; first wins.
	fShort := r.FunctionOf(voidType, []*Descriptor{r.Get("short")}, false)
	charType := r.Get("char")
	got, ok = c.ResolveOverload([]*Descriptor{fInt, fShort}, []*Descriptor{charType})
	if !ok || got != fInt {
		t.Errorf("tie selected %v, want first candidate", got)
	}
	got, ok = c.ResolveOverload([]*Descriptor{fShort, fInt}, []*Descriptor{charType})
	if !ok || got != fShort {
		t.Errorf("tie selected %v, want first candidate", got)
	}

	// No viable candidate.
	if _, ok := c.ResolveOverload([]*Descriptor{fInt}, []*Descriptor{r.Get("string")}); ok {
		t.Error("string argument resolved against f(int)")
	}
}

func TestCheckTemplateConstraint(t *testing.T) {
	r := NewRegistry()
	c := NewChecker(r)

	if !c.CheckTemplateConstraint(TemplateParam{Name: "T"}, r.Get("string")) {
		t.Error("unconstrained parameter rejected an argument")
	}
	if !c.CheckTemplateConstraint(TemplateParam{Name: "T", Constraint: "number"}, r.Get("int")) {
		t.Error("int rejected against number constraint")
	}
	if c.CheckTemplateConstraint(TemplateParam{Name: "T", Constraint: "number"}, r.Get("string")) {
		t.Error("string accepted against number constraint")
	}
	if c.CheckTemplateConstraint(TemplateParam{Name: "T", Constraint: "NoSuchType"}, r.Get("int")) {
		t.Error("unresolvable constraint accepted an argument")
	}
}

func TestValidateOperatorOverload(t *testing.T) {
	r := NewRegistry()
	c := NewChecker(r)
	intType := r.Get("int")
	voidType := r.Get("void")

	if err := c.ValidateOperatorOverload("+", []*Descriptor{intType, intType}); err != nil {
		t.Errorf("binary + with two operands: %v", err)
	}
	if err := c.ValidateOperatorOverload("+", []*Descriptor{intType}); err == nil {
		t.Error("binary + with one operand accepted")
	}
	if err := c.ValidateOperatorOverload("!", []*Descriptor{intType}); err != nil {
		t.Errorf("unary ! with one operand: %v", err)
	}
	if err := c.ValidateOperatorOverload("!", []*Descriptor{intType, intType}); err == nil {
		t.Error("unary ! with two operands accepted")
	}
	if err := c.ValidateOperatorOverload("+", []*Descriptor{voidType, intType}); err == nil {
		t.Error("void operand accepted")
	}
	if err := c.ValidateOperatorOverload("=>", []*Descriptor{intType, intType}); err == nil {
		t.Error("non-overloadable operator accepted")
	}
}

func TestInfer(t *testing.T) {
	r := NewRegistry()
	c := NewChecker(r)
	floatType := r.Get("float")

	tests := []struct {
		name     string
		declared string
		ictx     InferenceContext
		expected *Descriptor
		want     string
	}{
		{"auto_init", "auto", ContextInitialization, floatType, "float"},
		{"auto_assignment", "auto", ContextAssignment, floatType, "int"},
		{"auto_bare", "auto", ContextNone, nil, "int"},
		{"var_init", "var", ContextInitialization, floatType, "float"},
		{"var_assignment", "var", ContextAssignment, floatType, "float"},
		{"var_bare", "var", ContextNone, nil, "any"},
		{"concrete", "double", ContextInitialization, floatType, "double"},
		{"unknown", "Mystery", ContextNone, nil, "Mystery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Infer(tt.declared, tt.ictx, tt.expected)
			if got.Name != tt.want {
				t.Errorf("Infer(%q) = %q, want %q", tt.declared, got.Name, tt.want)
			}
		})
	}
}
