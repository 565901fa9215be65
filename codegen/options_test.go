package codegen

import (
	"reflect"
	"testing"
)

func TestMergeOptions(t *testing.T) {
	defaults := Options{
		Target:       "typescript",
		Optimization: "basic",
		OutputFormat: "esm",
		IndentSize:   2,
		ModuleSystem: "esm",
		StrictMode:   true,
	}

	t.Run("nil supplied keeps defaults", func(t *testing.T) {
		got := mergeOptions(defaults, nil)
		if !reflect.DeepEqual(got, defaults) {
			t.Errorf("mergeOptions = %+v, want defaults", got)
		}
	})

	t.Run("empty enums fall back", func(t *testing.T) {
		got := mergeOptions(defaults, &Options{Minify: true})
		if got.Target != "typescript" || got.Optimization != "basic" ||
			got.OutputFormat != "esm" || got.IndentSize != 2 || got.ModuleSystem != "esm" {
			t.Errorf("mergeOptions = %+v, want enum defaults preserved", got)
		}
		if !got.Minify {
			t.Error("supplied Minify lost in merge")
		}
	})

	t.Run("booleans taken as supplied", func(t *testing.T) {
		// StrictMode defaults true but an explicit options value overrides
		// with its own zero.
		got := mergeOptions(defaults, &Options{Target: "assemblyscript"})
		if got.StrictMode {
			t.Error("StrictMode = true, want supplied false")
		}
		if got.Target != "assemblyscript" {
			t.Errorf("Target = %q, want assemblyscript", got.Target)
		}
	})
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		errors int
	}{
		{"valid", Options{Target: "typescript", Optimization: "full", OutputFormat: "esm", IndentSize: 2}, 0},
		{"empty enums allowed", Options{}, 0},
		{"bad target", Options{Target: "rust"}, 1},
		{"bad optimization", Options{Optimization: "extreme"}, 1},
		{"indent too large", Options{IndentSize: 32}, 1},
		{"two failures", Options{Target: "rust", OutputFormat: "tarball"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := validateOptions(tt.opts)
			if len(diags) != tt.errors {
				t.Fatalf("validateOptions = %d diagnostics, want %d: %+v", len(diags), tt.errors, diags)
			}
			for _, d := range diags {
				if d.Severity != SeverityError || d.Code != CodeInvalidOption {
					t.Errorf("diagnostic = %+v, want error/%s", d, CodeInvalidOption)
				}
			}
		})
	}
}
