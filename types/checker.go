package types

import "fmt"

// AssignabilityThreshold separates implicit conversions from forbidden ones:
// a conversion is usable for assignment and overload matching only when its
// cost is strictly below this value. The threshold is part of the language
// contract; changing it silently changes which programs compile.
const AssignabilityThreshold = 10

type conversionKey struct {
	from string
	to   string
}

// Checker decides type equality, assignability, conversion cost, and
// overload selection. It holds the registry of the compilation it belongs
// to; construct one per run alongside the registry.
type Checker struct {
	registry *Registry
	costs    map[conversionKey]int
}

// NewChecker returns a checker bound to the given registry, with the
// implicit conversion table seeded.
func NewChecker(registry *Registry) *Checker {
	c := &Checker{
		registry: registry,
		costs:    make(map[conversionKey]int),
	}
	c.seedConversions()
	return c
}

// Registry returns the registry this checker resolves names against.
func (c *Checker) Registry() *Registry { return c.registry }

// seedConversions installs the directed implicit conversion cost table.
func (c *Checker) seedConversions() {
	seed := func(from, to string, cost int) {
		c.costs[conversionKey{from, to}] = cost
	}

	// Integer widening.
	seed("char", "short", 1)
	seed("char", "int", 1)
	seed("short", "int", 1)
	seed("int", "int64", 1)
	seed("uint", "uint64", 1)
	seed("uint", "int64", 2)

	// Integer to floating point.
	seed("char", "float", 3)
	seed("int", "float", 2)
	seed("int", "double", 2)
	seed("int64", "double", 3)

	// Floating point widening and narrowing.
	seed("float", "double", 1)
	seed("double", "float", 4)

	// Script-side number interop. number is a 64-bit float at runtime, so
	// number to int truncates (cost 2) while int to number is near-free.
	seed("int", "number", 1)
	seed("float", "number", 1)
	seed("double", "number", 1)
	seed("number", "int", 2)
	seed("number", "float", 2)
	seed("number", "double", 1)

	// bool/boolean are the same value in both worlds.
	seed("bool", "boolean", 1)
	seed("boolean", "bool", 1)

	// Escaping from any is expensive but allowed.
	for _, to := range []string{"int", "int64", "float", "double", "number", "string", "bool", "boolean", "char"} {
		seed("any", to, 4)
	}
}

// Equal reports structural type equality. Matching canonical names
// short-circuit true; otherwise kinds must match and derived payloads are
// compared recursively. Function types are equal only when arity, every
// positional parameter, the return type, and the variadic flag all match.
func (c *Checker) Equal(a, b *Descriptor) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != "" && a.Name == b.Name {
		return true
	}
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindPointer:
		return c.Equal(a.Pointee, b.Pointee)
	case KindReference:
		return c.Equal(a.Referenced, b.Referenced)
	case KindArray:
		return a.Length == b.Length && c.Equal(a.Element, b.Element)
	case KindFunction:
		if len(a.Parameters) != len(b.Parameters) || a.Variadic != b.Variadic {
			return false
		}
		if !c.Equal(a.Return, b.Return) {
			return false
		}
		for i := range a.Parameters {
			if !c.Equal(a.Parameters[i], b.Parameters[i]) {
				return false
			}
		}
		return true
	case KindUnion:
		if len(a.UnionMembers) != len(b.UnionMembers) {
			return false
		}
		for i := range a.UnionMembers {
			if !c.Equal(a.UnionMembers[i], b.UnionMembers[i]) {
				return false
			}
		}
		return true
	default:
		// Named kinds with different names are different types.
		return false
	}
}

// Assignable reports whether a value of type from can be implicitly assigned
// to type to: the types are equal, or a conversion exists with cost below
// AssignabilityThreshold.
func (c *Checker) Assignable(from, to *Descriptor) bool {
	if c.Equal(from, to) {
		return true
	}
	cost, ok := c.ConversionCost(from, to)
	return ok && cost < AssignabilityThreshold
}

// ConversionCost returns the cost of implicitly converting from to to, and
// whether such a conversion exists at all. Equal types convert for free.
// Beyond the seeded table, three structural conversions apply: pointer to
// void-pointer (or recursively convertible pointee), array-to-pointer decay,
// and class upcasts through the base chain.
func (c *Checker) ConversionCost(from, to *Descriptor) (int, bool) {
	if from == nil || to == nil {
		return 0, false
	}
	if c.Equal(from, to) {
		return 0, true
	}

	if cost, ok := c.costs[conversionKey{from.Name, to.Name}]; ok {
		return cost, true
	}

	// Anything but void boxes into any.
	if to.Name == "any" && !from.IsVoid() {
		return 2, true
	}

	// Pointer conversions: T* converts to void* directly, and to U* when the
	// pointee itself converts.
	if from.Kind == KindPointer && to.Kind == KindPointer {
		if to.Pointee.IsVoid() {
			return 1, true
		}
		if inner, ok := c.ConversionCost(from.Pointee, to.Pointee); ok {
			return inner + 1, true
		}
		return 0, false
	}

	// Array-to-pointer decay: T[] and T[N] convert to T*, nothing else.
	if from.Kind == KindArray && to.Kind == KindPointer {
		if c.Equal(from.Element, to.Pointee) {
			return 1, true
		}
		return 0, false
	}

	// Class upcast: walk the base chain, cost 1 per level. The search takes
	// the first matching ancestor in declaration order and does not attempt
	// to disambiguate diamond inheritance paths; see baseConversionCost.
	if from.Kind == KindClass && to.Kind == KindClass {
		return c.baseConversionCost(from, to, map[*Descriptor]bool{from: true})
	}

	return 0, false
}

// baseConversionCost searches from's inheritance chain for to. The first
// matching ancestor wins: when two bases both lead to the target at equal
// depth, the declaration-order first one decides and the alternative path is
// never examined. This matches the compiler's historical behavior; it is a
// known limitation, not a tie-break policy. The seen set keeps the walk
// terminating on cyclic inheritance graphs, which the analyzer tolerates.
func (c *Checker) baseConversionCost(from, to *Descriptor, seen map[*Descriptor]bool) (int, bool) {
	for _, base := range from.Bases {
		if seen[base] {
			continue
		}
		seen[base] = true
		if c.Equal(base, to) {
			return 1, true
		}
		if cost, ok := c.baseConversionCost(base, to, seen); ok {
			return cost + 1, true
		}
	}
	return 0, false
}

// ResolveOverload selects the candidate function type whose parameters are
// cheapest to convert the argument types into. Candidates whose arity does
// not match, or with any unconvertible positional argument, are discarded.
// On an exact total-cost tie the first candidate in input order wins; the
// tie-break is deliberate and tested, callers may rely on it.
func (c *Checker) ResolveOverload(candidates []*Descriptor, args []*Descriptor) (*Descriptor, bool) {
	var best *Descriptor
	bestCost := 0

	for _, candidate := range candidates {
		if candidate == nil || candidate.Kind != KindFunction {
			continue
		}
		if len(candidate.Parameters) != len(args) {
			continue
		}

		total := 0
		viable := true
		for i, arg := range args {
			cost, ok := c.ConversionCost(arg, candidate.Parameters[i])
			if !ok || cost >= AssignabilityThreshold {
				viable = false
				break
			}
			total += cost
		}
		if !viable {
			continue
		}

		if best == nil || total < bestCost {
			best = candidate
			bestCost = total
		}
	}

	return best, best != nil
}

// CheckTemplateConstraint reports whether arg satisfies the template
// parameter's constraint. An unconstrained parameter accepts anything; an
// unresolvable constraint name rejects everything.
func (c *Checker) CheckTemplateConstraint(param TemplateParam, arg *Descriptor) bool {
	if param.Constraint == "" {
		return true
	}
	constraint := c.registry.Get(param.Constraint)
	if constraint == nil {
		return false
	}
	return c.Assignable(arg, constraint)
}

var binaryOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
	"&&": true, "||": true,
	"&": true, "|": true, "^": true, "<<": true, ">>": true,
}

var unaryOperators = map[string]bool{
	"-": true, "!": true, "~": true, "++": true, "--": true,
}

// ValidateOperatorOverload checks the operand list for an operator overload
// declaration: binary operators take exactly two operands, unary exactly
// one, and void never participates.
func (c *Checker) ValidateOperatorOverload(operator string, operands []*Descriptor) error {
	for _, op := range operands {
		if op.IsVoid() {
			return fmt.Errorf("operator %s: void operand", operator)
		}
	}

	switch {
	case binaryOperators[operator]:
		if len(operands) != 2 {
			return fmt.Errorf("operator %s: want 2 operands, got %d", operator, len(operands))
		}
	case unaryOperators[operator]:
		if len(operands) != 1 {
			return fmt.Errorf("operator %s: want 1 operand, got %d", operator, len(operands))
		}
	default:
		return fmt.Errorf("operator %s: not overloadable", operator)
	}
	return nil
}

// InferenceContext describes where an inferred type placeholder appears.
type InferenceContext int

const (
	ContextNone InferenceContext = iota
	ContextInitialization
	ContextAssignment
	ContextReturn
)

// Infer resolves the auto/var placeholders. auto takes the expected type
// only in initialization position and otherwise defaults to int; var takes
// the expected type wherever one exists and otherwise decays to any. Any
// other name resolves through the registry.
func (c *Checker) Infer(declared string, ictx InferenceContext, expected *Descriptor) *Descriptor {
	switch declared {
	case "auto":
		if expected != nil && ictx == ContextInitialization {
			return expected
		}
		return c.registry.Resolve("int")
	case "var":
		if expected != nil {
			return expected
		}
		return c.registry.Resolve("any")
	}
	return c.registry.Resolve(declared)
}
