package codegen

import (
	"context"
	"fmt"
	"time"

	"github.com/Elastic-Softworks/worldsrc/ast"
)

// Target is a concrete code generator for one output language. A target
// embeds an *Emitter for its per-run state and implements ast.Visitor for
// every node kind; the sealed node families make that exhaustiveness a
// compile-time guarantee. A target instance must not be used by two
// concurrent Generate calls.
type Target interface {
	ast.Visitor

	// Name returns the target identifier ("typescript", "assemblyscript").
	Name() string

	// FileExtension returns the output file suffix (".ts").
	FileExtension() string

	// DefaultOptions returns the target's baseline options.
	DefaultOptions() Options

	// State returns the target's emitter.
	State() *Emitter

	// Reset clears all per-run state, including target-local bookkeeping.
	Reset()

	// ValidateOptions records diagnostics for suspicious or unsupported
	// option values. It never aborts the run.
	ValidateOptions(opts Options)

	// Analyze runs semantic analysis over the program. A non-nil error, or a
	// panic, converts the whole run into a failure result.
	Analyze(ctx context.Context, program *ast.Program) error

	// EmitHeader and EmitFooter bracket the program traversal.
	EmitHeader()
	EmitFooter()
}

// Generate runs the full generation lifecycle for one program: reset, option
// merge, option validation, semantic analysis, emission, result assembly.
//
// Generate never returns an error and never panics across this boundary:
// analysis failures and emission panics are converted into error
// diagnostics on a failure result. There is no mid-run cancellation; the
// context is threaded to analysis for API symmetry with future async
// analysis steps but a run always finishes once started.
func Generate(ctx context.Context, target Target, program *ast.Program, opts *Options) *Result {
	start := time.Now()

	target.Reset()
	e := target.State()
	e.Options = mergeOptions(target.DefaultOptions(), opts)

	for _, d := range validateOptions(e.Options) {
		e.report(d)
	}
	target.ValidateOptions(e.Options)

	if err := runAnalysis(ctx, target, program); err != nil {
		e.Errorf(CodeSemanticError, nil, "semantic analysis failed: %v", err)
		return buildResult(e, start)
	}

	if err := runEmission(target, program); err != nil {
		e.Errorf(CodeCodegenException, nil, "code generation failed: %v", err)
		return buildResult(e, start)
	}

	return buildResult(e, start)
}

// runAnalysis invokes the target's semantic analysis, converting a panic
// into an ordinary error.
func runAnalysis(ctx context.Context, target Target, program *ast.Program) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analysis panic: %v", r)
		}
	}()
	return target.Analyze(ctx, program)
}

// runEmission performs the header/traversal/footer walk, converting a panic
// into an ordinary error.
func runEmission(target Target, program *ast.Program) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("emission panic: %v", r)
		}
	}()
	target.EmitHeader()
	program.Accept(target)
	target.EmitFooter()
	return nil
}

// buildResult assembles the run outcome. Success requires zero
// error-severity diagnostics; a failed run reports empty code regardless of
// what was emitted before the failure.
func buildResult(e *Emitter, start time.Time) *Result {
	result := &Result{
		Success:     !e.HasErrors(),
		Diagnostics: e.Diagnostics(),
		Warnings:    e.Warnings(),
		Metadata:    e.Meta(),
	}
	result.Metadata.GenerationTime = time.Since(start)
	if result.Success {
		result.Code = e.Code()
	}
	return result
}
