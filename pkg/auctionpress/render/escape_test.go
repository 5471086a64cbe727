package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`<script>`, "&lt;script&gt;"},
		{`a & b`, "a &amp; b"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EscapeHTML(tt.input); got != tt.expected {
			t.Errorf("EscapeHTML(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestEscapeJS(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`back\slash`, `back\\slash`},
		{`say "hi"`, `say \"hi\"`},
		{"line\nbreak", `line\nbreak`},
		{"car\rreturn", `car\rreturn`},
		// HTML metacharacters are not this context's concern.
		{"<b>&", "<b>&"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EscapeJS(tt.input); got != tt.expected {
			t.Errorf("EscapeJS(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
