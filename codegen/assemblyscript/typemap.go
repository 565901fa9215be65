package assemblyscript

// primitiveTypeMap maps WorldSrc builtin names to AssemblyScript value
// types. number maps to f64 to keep script-side arithmetic semantics; any
// has no representation and degrades to usize with a warning at the use
// site.
var primitiveTypeMap = map[string]string{
	"void":    "void",
	"bool":    "bool",
	"boolean": "bool",
	"char":    "i32",
	"short":   "i16",
	"int":     "i32",
	"uint":    "u32",
	"int64":   "i64",
	"uint64":  "u64",
	"float":   "f32",
	"double":  "f64",
	"number":  "f64",
	"string":  "string",
	"auto":    "i32",
	"var":     "f64",
}

// pointerTypeMap maps whole pointer spellings with an idiomatic lowering;
// every other pointer is a raw linear-memory address.
var pointerTypeMap = map[string]string{
	"char*": "string | null",
	"void*": "usize",
}
