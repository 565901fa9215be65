package typescript

// primitiveTypeMap maps WorldSrc builtin type names to their TypeScript
// spellings. Names absent from the map pass through sanitization unchanged
// (user-declared classes, interfaces, vectors emitted as ambient types).
var primitiveTypeMap = map[string]string{
	"void":    "void",
	"bool":    "boolean",
	"boolean": "boolean",
	"char":    "string",
	"short":   "number",
	"int":     "number",
	"uint":    "number",
	"int64":   "bigint",
	"uint64":  "bigint",
	"float":   "number",
	"double":  "number",
	"number":  "number",
	"string":  "string",
	"any":     "any",
	"auto":    "any",
	"var":     "any",
}

// pointerTypeMap maps whole pointer spellings that have an idiomatic
// TypeScript equivalent. Other pointer types lower to `T | null`.
var pointerTypeMap = map[string]string{
	"char*": "string | null",
	"void*": "unknown",
}
