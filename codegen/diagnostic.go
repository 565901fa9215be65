// Package codegen provides the target-independent code generation framework:
// per-run options, the result and diagnostic model, the shared emission
// state (indentation, scopes, counters), the generation lifecycle, and the
// semantic analysis pass the targets run before emitting.
package codegen

import "github.com/Elastic-Softworks/worldsrc/ast"

// Severity classifies a diagnostic. Only error-severity diagnostics
// invalidate a generation run; warnings describe degraded output and info is
// advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Stable machine-readable diagnostic codes.
const (
	CodeSemanticError      = "SEMANTIC_ERROR"
	CodeCodegenException   = "CODEGEN_EXCEPTION"
	CodeInvalidOption      = "INVALID_OPTION"
	CodeSuspiciousOption   = "SUSPICIOUS_OPTION"
	CodeUnknownType        = "UNKNOWN_TYPE"
	CodeTypeMismatch       = "TYPE_MISMATCH"
	CodeDuplicateFunction  = "DUPLICATE_FUNCTION"
	CodeDuplicateType      = "DUPLICATE_TYPE"
	CodeUnsupportedDecl    = "UNSUPPORTED_DECLARATION"
	CodeUnsupportedStmt    = "UNSUPPORTED_STATEMENT"
	CodeUnsupportedExpr    = "UNSUPPORTED_EXPRESSION"
	CodeUnsupportedType    = "UNSUPPORTED_TYPE"
	CodeTemplateConstraint = "TEMPLATE_CONSTRAINT"
)

// Location points a diagnostic at a source span.
type Location struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Length int    `json:"length,omitempty"`
}

// Diagnostic is one reported condition. Location is nil when the condition
// is not tied to a source position (e.g. option validation).
type Diagnostic struct {
	Severity   Severity     `json:"severity"`
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Location   *Location    `json:"location,omitempty"`
	Suggestion string       `json:"suggestion,omitempty"`
	Related    []Diagnostic `json:"relatedInformation,omitempty"`
}

// LocationOf converts a node's source span to a diagnostic location, or nil
// when the node carries none.
func LocationOf(n ast.Node) *Location {
	if n == nil {
		return nil
	}
	loc := n.Loc()
	if loc.IsZero() {
		return nil
	}
	length := 0
	if loc.End.Offset > loc.Start.Offset {
		length = loc.End.Offset - loc.Start.Offset
	}
	return &Location{
		File:   loc.File,
		Line:   loc.Start.Line,
		Column: loc.Start.Column,
		Length: length,
	}
}
