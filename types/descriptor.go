// Package types implements the WorldSrc semantic type model: canonical,
// interned type descriptors, the registry that owns them, and the checker
// that decides equality, assignability, conversion cost, and overload
// selection over them.
package types

// Kind identifies the category of a type descriptor.
type Kind int

const (
	KindUnknown Kind = iota // unresolved or unregistered name
	KindPrimitive
	KindPointer
	KindReference
	KindArray
	KindFunction
	KindClass
	KindInterface
	KindStruct
	KindEnum
	KindTemplate
	KindUnion
	KindVoid
	KindAuto // placeholder resolved by inference
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindPointer:
		return "Pointer"
	case KindReference:
		return "Reference"
	case KindArray:
		return "Array"
	case KindFunction:
		return "Function"
	case KindClass:
		return "Class"
	case KindInterface:
		return "Interface"
	case KindStruct:
		return "Struct"
	case KindEnum:
		return "Enum"
	case KindTemplate:
		return "Template"
	case KindUnion:
		return "Union"
	case KindVoid:
		return "Void"
	case KindAuto:
		return "Auto"
	default:
		return "Unknown"
	}
}

// TemplateParam is a declared template parameter. Constraint names a type in
// the registry; empty means unconstrained.
type TemplateParam struct {
	Name       string
	Constraint string
}

// Descriptor is the canonical representation of one type. Name is the
// interning key: two descriptors obtained from the same Registry with the
// same canonical name are the same object. Descriptors built outside a
// registry (e.g. freshly resolved, not yet interned) must be compared
// structurally via Checker.Equal.
type Descriptor struct {
	Kind Kind
	Name string

	Size      int
	Alignment int

	IsConst    bool
	IsVolatile bool
	IsUnsigned bool

	// Pointer / Reference payload.
	Pointee    *Descriptor
	Referenced *Descriptor

	// Array payload. Length <= 0 means a dynamic array.
	Element *Descriptor
	Length  int

	// Function payload.
	Return     *Descriptor
	Parameters []*Descriptor
	Variadic   bool

	// Class / Interface / Struct payload.
	Members map[string]*Descriptor
	Bases   []*Descriptor

	// Template payload.
	TemplateParams []TemplateParam
	TemplateArgs   []*Descriptor

	// Union payload.
	UnionMembers []*Descriptor
}

// IsVoid reports whether the descriptor is the void type.
func (d *Descriptor) IsVoid() bool {
	return d != nil && d.Kind == KindVoid
}

// IsUnknown reports whether the descriptor is unresolved.
func (d *Descriptor) IsUnknown() bool {
	return d == nil || d.Kind == KindUnknown
}

// IsNumeric reports whether the descriptor is a numeric primitive.
func (d *Descriptor) IsNumeric() bool {
	if d == nil || d.Kind != KindPrimitive {
		return false
	}
	switch d.Name {
	case "char", "short", "int", "int64", "float", "double", "number":
		return true
	}
	return false
}

// String returns the canonical name.
func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}
	return d.Name
}

// Unknown returns a fresh Unknown descriptor for the given name. Callers
// that look up an unregistered type get one of these instead of a nil
// dereference downstream.
func Unknown(name string) *Descriptor {
	return &Descriptor{Kind: KindUnknown, Name: name}
}
