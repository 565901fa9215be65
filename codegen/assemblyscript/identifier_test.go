package assemblyscript

import (
	"testing"
)

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "_"},
		{"123abc", "_123abc"},
		{"my-field", "my_field"},
		{"class", "class_"},
		{"validName", "validName"},
		// AssemblyScript value type names are reserved too.
		{"i32", "i32_"},
		{"f64", "f64_"},
		{"usize", "usize_"},
		{"v128", "v128_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeIdentifier(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
