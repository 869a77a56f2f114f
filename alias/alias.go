// Package alias implements package.json-style specifier remap tables.
//
// Tables like the "alias" and "browser" fields map specifier text to a
// replacement. Both keys and values are raw CJS-style strings: no schemes,
// no percent-decoding, no query strings.
package alias

import (
	"encoding/json"
	"fmt"

	"github.com/git-pkgs/specifiers"
)

// Map is a specifier remap table. A key that names a bare package with no
// subpath remaps every subpath of that package; all other keys match their
// canonical form exactly.
type Map struct {
	exact   map[string]specifiers.Specifier
	modules map[string]specifiers.Specifier
}

// Load decodes a remap table from a JSON object of strings, e.g.
//
//	{"lodash": "lodash-es", "./legacy.js": "./modern.js"}
//
// Keys and values are parsed as CJS specifiers with default flags; entries
// are indexed by the key's canonical form.
func Load(data []byte) (*Map, error) {
	var raw map[string]specifiers.Specifier
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding alias map: %w", err)
	}

	m := &Map{
		exact:   make(map[string]specifiers.Specifier, len(raw)),
		modules: make(map[string]specifiers.Specifier),
	}
	for key, repl := range raw {
		parsed, _, err := specifiers.Parse(key, specifiers.SyntaxCJS, 0)
		if err != nil {
			return nil, fmt.Errorf("alias key %q: %w", key, err)
		}
		m.exact[parsed.String()] = repl
		if parsed.Kind == specifiers.KindPackage && parsed.Subpath == "" {
			m.modules[parsed.Value] = repl
		}
	}
	return m, nil
}

// Len returns the number of entries in the table.
func (m *Map) Len() int {
	return len(m.exact)
}

// Lookup finds the replacement for a classified specifier. Exact entries
// win; otherwise a package specifier with a subpath matches a module-level
// entry, and when that entry is itself a bare package the subpath carries
// over ("lodash" -> "lodash-es" remaps "lodash/fp" to "lodash-es/fp").
func (m *Map) Lookup(spec specifiers.Specifier) (specifiers.Specifier, bool) {
	if repl, ok := m.exact[spec.String()]; ok {
		return repl, true
	}
	if spec.Kind != specifiers.KindPackage || spec.Subpath == "" {
		return specifiers.Specifier{}, false
	}
	repl, ok := m.modules[spec.Value]
	if !ok {
		return specifiers.Specifier{}, false
	}
	if repl.Kind == specifiers.KindPackage && repl.Subpath == "" {
		return specifiers.Package(repl.Value, spec.Subpath), true
	}
	return repl, true
}
