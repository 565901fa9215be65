package types

import (
	"fmt"
	"strings"
	"sync"
)

// Pointer-sized quantities: pointers, references, function values, and
// dynamic array handles all occupy one machine word.
const wordSize = 8

// Registry owns the canonical descriptor for every type name seen during a
// compilation. Builtins are seeded at construction; derived types (pointers,
// references, arrays, functions, unions, template instantiations) are
// constructed lazily on first request and cached by canonical name.
//
// A Registry is an explicit per-compilation value, not a process singleton.
// The caches are mutex-guarded so a registry shared by concurrent generator
// runs behaves as an append-only interning table: once a name is cached, all
// callers observe the same descriptor instance.
type Registry struct {
	mu        sync.Mutex
	types     map[string]*Descriptor
	aliases   map[string]string
	templates map[string]*Descriptor // instantiation cache, kept apart from types
}

// NewRegistry returns a registry seeded with the builtin type table.
func NewRegistry() *Registry {
	r := &Registry{
		types:     make(map[string]*Descriptor),
		aliases:   make(map[string]string),
		templates: make(map[string]*Descriptor),
	}
	r.seedBuiltins()
	return r
}

// Register inserts or overwrites the descriptor for name. Only builtins and
// user declarations go through here; derived types use the create methods so
// they intern correctly.
func (r *Registry) Register(name string, d *Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = d
}

// RegisterAlias records a one-directional name substitution. Aliases are
// resolved before the primary table on lookup.
func (r *Registry) RegisterAlias(alias, target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = target
}

// Get returns the descriptor for name, resolving aliases first. It returns
// nil for unknown names: callers must treat an unknown type as Unknown kind,
// never crash.
func (r *Registry) Get(name string) *Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	return r.types[name]
}

// Resolve is Get with an Unknown-kind fallback instead of nil.
func (r *Registry) Resolve(name string) *Descriptor {
	if d := r.Get(name); d != nil {
		return d
	}
	return Unknown(name)
}

// PointerTo returns the interned pointer-to-pointee descriptor.
func (r *Registry) PointerTo(pointee *Descriptor) *Descriptor {
	name := pointee.Name + "*"
	return r.intern(name, func() *Descriptor {
		return &Descriptor{
			Kind:      KindPointer,
			Name:      name,
			Size:      wordSize,
			Alignment: wordSize,
			Pointee:   pointee,
		}
	})
}

// ReferenceTo returns the interned reference descriptor.
func (r *Registry) ReferenceTo(referenced *Descriptor) *Descriptor {
	name := referenced.Name + "&"
	return r.intern(name, func() *Descriptor {
		return &Descriptor{
			Kind:       KindReference,
			Name:       name,
			Size:       wordSize,
			Alignment:  wordSize,
			Referenced: referenced,
		}
	})
}

// ArrayOf returns the interned array descriptor. length <= 0 produces a
// dynamic array sized as a handle; a fixed array is element size times
// length.
func (r *Registry) ArrayOf(element *Descriptor, length int) *Descriptor {
	var name string
	if length > 0 {
		name = fmt.Sprintf("%s[%d]", element.Name, length)
	} else {
		name = element.Name + "[]"
		length = 0
	}
	return r.intern(name, func() *Descriptor {
		size := wordSize
		alignment := wordSize
		if length > 0 {
			size = element.Size * length
			alignment = element.Alignment
		}
		return &Descriptor{
			Kind:      KindArray,
			Name:      name,
			Size:      size,
			Alignment: alignment,
			Element:   element,
			Length:    length,
		}
	})
}

// FunctionOf returns the interned function type descriptor.
func (r *Registry) FunctionOf(ret *Descriptor, params []*Descriptor, variadic bool) *Descriptor {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	if variadic {
		names = append(names, "...")
	}
	name := fmt.Sprintf("%s(%s)", ret.Name, strings.Join(names, ", "))
	return r.intern(name, func() *Descriptor {
		return &Descriptor{
			Kind:       KindFunction,
			Name:       name,
			Size:       wordSize,
			Alignment:  wordSize,
			Return:     ret,
			Parameters: params,
			Variadic:   variadic,
		}
	})
}

// UnionOf returns the interned union descriptor. Size and alignment are the
// maxima over the members.
func (r *Registry) UnionOf(members []*Descriptor) *Descriptor {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	name := strings.Join(names, " | ")
	return r.intern(name, func() *Descriptor {
		size, alignment := 0, 1
		for _, m := range members {
			if m.Size > size {
				size = m.Size
			}
			if m.Alignment > alignment {
				alignment = m.Alignment
			}
		}
		return &Descriptor{
			Kind:         KindUnion,
			Name:         name,
			Size:         size,
			Alignment:    alignment,
			UnionMembers: members,
		}
	})
}

// Instantiate returns the interned template instantiation Base<Arg1, ...>.
// Instantiations are cached apart from ordinary derived types so a declared
// type whose name happens to format like an instantiation cannot collide
// with one.
func (r *Registry) Instantiate(template *Descriptor, args []*Descriptor) *Descriptor {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = a.Name
	}
	name := fmt.Sprintf("%s<%s>", template.Name, strings.Join(names, ", "))

	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.templates[name]; ok {
		return d
	}
	d := &Descriptor{
		Kind:           KindTemplate,
		Name:           name,
		Size:           template.Size,
		Alignment:      template.Alignment,
		Members:        template.Members,
		Bases:          template.Bases,
		TemplateParams: template.TemplateParams,
		TemplateArgs:   args,
	}
	r.templates[name] = d
	return d
}

// Clear drops all non-builtin state and re-seeds the builtins. Used between
// independent compilation runs so type identity never leaks across them.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.types = make(map[string]*Descriptor)
	r.aliases = make(map[string]string)
	r.templates = make(map[string]*Descriptor)
	r.mu.Unlock()
	r.seedBuiltins()
}

// intern returns the cached descriptor for name, constructing and caching it
// on first request.
func (r *Registry) intern(name string, build func() *Descriptor) *Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.types[name]; ok {
		return d
	}
	d := build()
	r.types[name] = d
	return d
}
