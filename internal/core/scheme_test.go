package core

import "testing"

func TestParseScheme(t *testing.T) {
	tests := []struct {
		input      string
		wantScheme string
		wantRest   string
		wantOK     bool
	}{
		{"http://example.com", "http", "//example.com", true},
		{"node:fs", "node", "fs", true},
		{"npm:@scope/pkg", "npm", "@scope/pkg", true},
		{"a+b-c.1:rest", "a+b-c.1", "rest", true},
		{"HTTP://x", "http", "//x", true},
		{"FiLe:///a", "file", "///a", true},
		{"c:", "c", "", true},

		// No colon, bad first character, or a character outside the grammar.
		{"", "", "", false},
		{"http", "", "", false},
		{"1http:", "", "", false},
		{"+http:", "", "", false},
		{"ht tp://x", "", "", false},
		{"lodash/fp", "", "", false},
		{"@scope/pkg", "", "", false},
		{"./a.js", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			scheme, rest, ok := ParseScheme(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseScheme(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if scheme != tt.wantScheme || rest != tt.wantRest {
				t.Errorf("ParseScheme(%q) = (%q, %q), want (%q, %q)", tt.input, scheme, rest, tt.wantScheme, tt.wantRest)
			}
		})
	}
}
