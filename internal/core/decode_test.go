package core

import "testing"

func TestPercentDecode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"", ""},
		{"a%20b", "a b"},
		{"%41%42%43", "ABC"},
		{"%2Ffoo", "/foo"},
		{"%e2%82%ac", "€"},

		// Malformed escapes pass through verbatim.
		{"100%", "100%"},
		{"%ZZ", "%ZZ"},
		{"%2", "%2"},
		{"a%%20b", "a% b"},

		// Invalid UTF-8 decodes lossily.
		{"%ff", "�"},
		{"a%80b", "a�b"},
	}

	for _, tt := range tests {
		if got := percentDecode(tt.input); got != tt.want {
			t.Errorf("percentDecode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDecodePath(t *testing.T) {
	tests := []struct {
		input     string
		syntax    Syntax
		wantPath  string
		wantQuery string
	}{
		{"a%20b.js?x=1", SyntaxESM, "a b.js", "?x=1"},
		{"a%20b.js?x=1", SyntaxURL, "a b.js", "?x=1"},
		{"a.js#frag", SyntaxESM, "a.js", ""},
		{"a.js?x#frag", SyntaxESM, "a.js", "?x"},

		// CJS takes the text as-is: no decoding, no query.
		{"a%20b.js?x=1", SyntaxCJS, "a%20b.js?x=1", ""},
	}

	for _, tt := range tests {
		path, query := decodePath(tt.input, tt.syntax)
		if path != tt.wantPath || query != tt.wantQuery {
			t.Errorf("decodePath(%q, %v) = (%q, %q), want (%q, %q)", tt.input, tt.syntax, path, query, tt.wantPath, tt.wantQuery)
		}
	}
}
