package core

import "testing"

func TestSpecifierPURL(t *testing.T) {
	tests := []struct {
		name    string
		spec    Specifier
		version string
		want    string
		wantErr bool
	}{
		{"package", Package("lodash", ""), "", "pkg:npm/lodash", false},
		{"package version", Package("lodash", ""), "4.17.21", "pkg:npm/lodash@4.17.21", false},
		{"builtin", Builtin("fs"), "", "pkg:generic/fs", false},
		{"relative", Relative("a/b.js"), "", "", true},
		{"url", URL("https://example.com"), "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.PURL(tt.version)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PURL error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("PURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpecifierPURLScoped(t *testing.T) {
	got, err := Package("@babel/core", "").PURL("7.24.0")
	if err != nil {
		t.Fatalf("PURL error = %v", err)
	}
	// packageurl-go keeps the @ in the namespace and percent-encodes it.
	if got != "pkg:npm/%40babel/core@7.24.0" {
		t.Errorf("PURL = %q, want pkg:npm/%%40babel/core@7.24.0", got)
	}
}
