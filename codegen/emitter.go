package codegen

import (
	"fmt"
	"strings"

	"github.com/Elastic-Softworks/worldsrc/ast"
	"github.com/Elastic-Softworks/worldsrc/types"
)

// Emitter holds the mutable per-run state shared by every target: the merged
// options, the compilation's type registry and checker, the output buffer,
// indentation and scope bookkeeping, the diagnostic lists, and the metadata
// counters. A target embeds an Emitter and must not share it between two
// in-flight runs.
type Emitter struct {
	Options  Options
	Registry *types.Registry
	Checker  *types.Checker

	commentPrefix string

	buf         strings.Builder
	indentLevel int
	scopes      []string

	diagnostics []Diagnostic
	warnings    []Diagnostic

	meta Metadata
}

// NewEmitter returns an emitter whose EmitComment uses the given line
// comment prefix (e.g. "//").
func NewEmitter(commentPrefix string) *Emitter {
	e := &Emitter{commentPrefix: commentPrefix}
	e.Reset()
	return e
}

// Reset clears all per-run state and installs a fresh type registry and
// checker, so type identity never leaks between runs.
func (e *Emitter) Reset() {
	e.Registry = types.NewRegistry()
	e.Checker = types.NewChecker(e.Registry)
	e.buf.Reset()
	e.indentLevel = 0
	e.scopes = nil
	e.diagnostics = nil
	e.warnings = nil
	e.meta = Metadata{}
}

// Emit appends raw text to the output and bumps the generated-lines counter
// once per newline it contains.
func (e *Emitter) Emit(text string) {
	e.buf.WriteString(text)
	e.meta.Lines += strings.Count(text, "\n")
}

// EmitLine emits the current indentation, the text, and a newline. An empty
// text emits a bare newline with no trailing indentation.
func (e *Emitter) EmitLine(text string) {
	if text == "" {
		e.Emit("\n")
		return
	}
	e.Emit(e.indentation() + text + "\n")
}

// EmitLinef is EmitLine with formatting.
func (e *Emitter) EmitLinef(format string, args ...any) {
	e.EmitLine(fmt.Sprintf(format, args...))
}

// EmitComment emits text as a line comment in the target's syntax.
func (e *Emitter) EmitComment(text string) {
	e.EmitLine(e.commentPrefix + " " + text)
}

// Indent increases the indentation level.
func (e *Emitter) Indent() { e.indentLevel++ }

// Dedent decreases the indentation level, flooring at zero.
func (e *Emitter) Dedent() {
	if e.indentLevel > 0 {
		e.indentLevel--
	}
}

func (e *Emitter) indentation() string {
	if e.indentLevel == 0 {
		return ""
	}
	if e.Options.UseTabs {
		return strings.Repeat("\t", e.indentLevel)
	}
	size := e.Options.IndentSize
	if size <= 0 {
		size = 2
	}
	return strings.Repeat(" ", size*e.indentLevel)
}

// EnterScope pushes a named scope. Scope names qualify diagnostics and
// nested declarations.
func (e *Emitter) EnterScope(name string) {
	e.scopes = append(e.scopes, name)
}

// ExitScope pops the innermost scope; popping an empty stack is a no-op.
func (e *Emitter) ExitScope() {
	if len(e.scopes) > 0 {
		e.scopes = e.scopes[:len(e.scopes)-1]
	}
}

// ScopePath returns the dot-joined path of the open scopes.
func (e *Emitter) ScopePath() string {
	return strings.Join(e.scopes, ".")
}

// QualifiedName returns name prefixed with the open scope path.
func (e *Emitter) QualifiedName(name string) string {
	if len(e.scopes) == 0 {
		return name
	}
	return e.ScopePath() + "." + name
}

// Code returns everything emitted so far.
func (e *Emitter) Code() string { return e.buf.String() }

// Errorf records an error diagnostic.
func (e *Emitter) Errorf(code string, at ast.Node, format string, args ...any) {
	e.report(Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  e.qualify(fmt.Sprintf(format, args...)),
		Location: LocationOf(at),
	})
}

// Warnf records a warning diagnostic.
func (e *Emitter) Warnf(code string, at ast.Node, format string, args ...any) {
	e.report(Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  e.qualify(fmt.Sprintf(format, args...)),
		Location: LocationOf(at),
	})
}

// Infof records an info diagnostic.
func (e *Emitter) Infof(code string, at ast.Node, format string, args ...any) {
	e.report(Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  e.qualify(fmt.Sprintf(format, args...)),
		Location: LocationOf(at),
	})
}

func (e *Emitter) qualify(message string) string {
	if path := e.ScopePath(); path != "" {
		return path + ": " + message
	}
	return message
}

func (e *Emitter) report(d Diagnostic) {
	e.diagnostics = append(e.diagnostics, d)
	if d.Severity == SeverityWarning {
		e.warnings = append(e.warnings, d)
	}
}

// Diagnostics returns all recorded diagnostics in report order.
func (e *Emitter) Diagnostics() []Diagnostic { return e.diagnostics }

// Warnings returns the warning-severity view of the diagnostics.
func (e *Emitter) Warnings() []Diagnostic { return e.warnings }

// HasErrors reports whether any error-severity diagnostic was recorded.
func (e *Emitter) HasErrors() bool {
	for _, d := range e.diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// CountFunction, CountClass, and CountModule bump the metadata counters.
func (e *Emitter) CountFunction() { e.meta.Functions++ }
func (e *Emitter) CountClass()    { e.meta.Classes++ }
func (e *Emitter) CountModule()   { e.meta.Modules++ }

// Meta returns a copy of the current metadata counters.
func (e *Emitter) Meta() Metadata { return e.meta }
