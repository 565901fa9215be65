package codegen

import "time"

// Metadata counts what a run emitted.
type Metadata struct {
	Lines          int           `json:"lines"`
	Functions      int           `json:"functions"`
	Classes        int           `json:"classes"`
	Modules        int           `json:"modules"`
	GenerationTime time.Duration `json:"generationTime"`
}

// Artifact is a named auxiliary output produced alongside the main source
// text (e.g. a declaration file).
type Artifact struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Result is the outcome of one generation run. Success is true iff no
// diagnostic has error severity; a failed run always carries empty Code and
// at least one error diagnostic. A successful run may still carry warnings
// worth surfacing.
type Result struct {
	Success          bool         `json:"success"`
	Code             string       `json:"generatedCode"`
	SourceMap        string       `json:"sourceMap,omitempty"`
	TypeDeclarations string       `json:"typeDeclarations,omitempty"`
	Diagnostics      []Diagnostic `json:"diagnostics"`
	Warnings         []Diagnostic `json:"warnings"`
	Metadata         Metadata     `json:"metadata"`
	Artifacts        []Artifact   `json:"artifacts,omitempty"`
}

// Errors returns the error-severity diagnostics.
func (r *Result) Errors() []Diagnostic {
	var errs []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			errs = append(errs, d)
		}
	}
	return errs
}
