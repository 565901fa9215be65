package codegen

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Options configures one generation run. A value is merged over the target's
// defaults at the start of Generate and is not mutated afterwards.
//
// The schema tags let the CLI decode -O key=value overrides into an Options
// value; the validate tags drive the framework-level option validation pass.
type Options struct {
	Target           string `schema:"target" validate:"omitempty,oneof=typescript assemblyscript"`
	Optimization     string `schema:"optimization" validate:"omitempty,oneof=none basic full"`
	OutputFormat     string `schema:"outputFormat" validate:"omitempty,oneof=esm cjs umd iife"`
	Minify           bool   `schema:"minify"`
	SourceMaps       bool   `schema:"sourceMaps"`
	TypeDeclarations bool   `schema:"typeDeclarations"`

	IndentSize         int  `schema:"indentSize" validate:"min=0,max=16"`
	UseTabs            bool `schema:"useTabs"`
	InsertFinalNewline bool `schema:"insertFinalNewline"`

	StrictMode   bool   `schema:"strictMode"`
	AsyncSupport bool   `schema:"asyncSupport"`
	ModuleSystem string `schema:"moduleSystem" validate:"omitempty,oneof=esm commonjs"`

	// Templates holds optional named source templates substituted into the
	// emitted header/footer. Unreferenced entries are ignored.
	Templates map[string]string `schema:"-"`

	// OutputPath is advisory: the core never writes files, but targets embed
	// it in header comments when set.
	OutputPath string `schema:"outputPath"`
}

// mergeOptions overlays supplied options over the target defaults. Enum
// fields left empty and a zero indent size fall back to the defaults;
// boolean flags are taken from the supplied value as-is.
func mergeOptions(defaults Options, supplied *Options) Options {
	if supplied == nil {
		return defaults
	}
	merged := *supplied
	if merged.Target == "" {
		merged.Target = defaults.Target
	}
	if merged.Optimization == "" {
		merged.Optimization = defaults.Optimization
	}
	if merged.OutputFormat == "" {
		merged.OutputFormat = defaults.OutputFormat
	}
	if merged.IndentSize == 0 {
		merged.IndentSize = defaults.IndentSize
	}
	if merged.ModuleSystem == "" {
		merged.ModuleSystem = defaults.ModuleSystem
	}
	return merged
}

var optionsValidator = validator.New(validator.WithRequiredStructEnabled())

// validateOptions runs struct-tag validation over the merged options. Each
// failed field becomes an error diagnostic; per the generation contract the
// diagnostics are recorded but never abort the run on their own.
func validateOptions(opts Options) []Diagnostic {
	err := optionsValidator.Struct(opts)
	if err == nil {
		return nil
	}

	valErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Diagnostic{{
			Severity: SeverityError,
			Code:     CodeInvalidOption,
			Message:  fmt.Sprintf("option validation failed: %v", err),
		}}
	}

	diags := make([]Diagnostic, 0, len(valErrs))
	for _, ve := range valErrs {
		diags = append(diags, Diagnostic{
			Severity:   SeverityError,
			Code:       CodeInvalidOption,
			Message:    fmt.Sprintf("invalid option %s: failed %q constraint (value %v)", ve.Field(), ve.Tag(), ve.Value()),
			Suggestion: fmt.Sprintf("allowed values: %s", ve.Param()),
		})
	}
	return diags
}
