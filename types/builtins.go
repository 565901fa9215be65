package types

import "fmt"

// scalarSpec is one row of the builtin scalar table.
type scalarSpec struct {
	name     string
	kind     Kind
	size     int
	unsigned bool
}

// The scalar tier of the builtin table. Sizes follow the WorldSrc ABI:
// string and any are fat values (pointer + length / pointer + tag).
var scalarTable = []scalarSpec{
	{"void", KindVoid, 0, false},
	{"bool", KindPrimitive, 1, false},
	{"char", KindPrimitive, 1, false},
	{"short", KindPrimitive, 2, false},
	{"int", KindPrimitive, 4, false},
	{"int64", KindPrimitive, 8, false},
	{"uint", KindPrimitive, 4, true},
	{"uint64", KindPrimitive, 8, true},
	{"float", KindPrimitive, 4, false},
	{"double", KindPrimitive, 8, false},
	{"string", KindPrimitive, 16, false},
	{"number", KindPrimitive, 8, false},
	{"boolean", KindPrimitive, 1, false},
	{"any", KindPrimitive, 16, false},
}

// vectorSpec is one row of the vector/matrix tier.
type vectorSpec struct {
	name       string
	components int
	component  string
}

var vectorTable = []vectorSpec{
	{"vec2", 2, "float"},
	{"vec3", 3, "float"},
	{"vec4", 4, "float"},
	{"ivec2", 2, "int"},
	{"ivec3", 3, "int"},
	{"ivec4", 4, "int"},
	{"quat", 4, "float"},
	{"mat3", 9, "float"},
	{"mat4", 16, "float"},
}

var componentNames = []string{"x", "y", "z", "w"}

// seedBuiltins registers the two-tier builtin table: scalar primitives
// first, then the fixed-size vector/matrix structs synthesized from their
// component counts.
func (r *Registry) seedBuiltins() {
	for _, s := range scalarTable {
		alignment := s.size
		if alignment == 0 {
			alignment = 1
		}
		if alignment > wordSize {
			alignment = wordSize
		}
		r.Register(s.name, &Descriptor{
			Kind:       s.kind,
			Name:       s.name,
			Size:       s.size,
			Alignment:  alignment,
			IsUnsigned: s.unsigned,
		})
	}

	r.Register("auto", &Descriptor{Kind: KindAuto, Name: "auto"})
	r.Register("var", &Descriptor{Kind: KindAuto, Name: "var"})

	for _, v := range vectorTable {
		component := r.Get(v.component)
		members := make(map[string]*Descriptor, v.components)
		if v.components <= len(componentNames) {
			for i := 0; i < v.components; i++ {
				members[componentNames[i]] = component
			}
		} else {
			// Matrices are a flat component block: m0..mN-1.
			for i := 0; i < v.components; i++ {
				members[fmt.Sprintf("m%d", i)] = component
			}
		}
		r.Register(v.name, &Descriptor{
			Kind:      KindStruct,
			Name:      v.name,
			Size:      component.Size * v.components,
			Alignment: component.Alignment,
			Members:   members,
		})
	}
}
