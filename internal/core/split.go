package core

import "strings"

// SplitPath cuts input at the first '?' or '#'. path is the prefix before
// that character and rest begins at it, or is "" when neither occurs.
// Dot segments are deliberately left alone; normalization happens in a
// later stage.
func SplitPath(input string) (path, rest string) {
	if pos := strings.IndexAny(input, "?#"); pos >= 0 {
		return input[:pos], input[pos:]
	}
	return input, ""
}

// SplitQuery isolates a leading query segment. When input starts with '?',
// query runs up to (not including) the first '#' and keeps its leading '?',
// with rest starting at the '#' or empty. Otherwise query is "" and rest is
// the input unchanged.
func SplitQuery(input string) (query, rest string) {
	if input == "" || input[0] != '?' {
		return "", input
	}
	if pos := strings.IndexByte(input, '#'); pos >= 0 {
		return input[:pos], input[pos:]
	}
	return input, ""
}

// SplitPackage splits a bare module reference into its package name and
// subpath. Scoped names ("@scope/name") keep both segments in the module;
// a scope with no name segment is an error. The subpath is "" when absent
// and never starts with '/'.
//
//	"@scope/pkg/a/b" -> ("@scope/pkg", "a/b")
//	"@scope/pkg"     -> ("@scope/pkg", "")
//	"@scope"         -> error
//	"lodash/fp"      -> ("lodash", "fp")
//	"lodash"         -> ("lodash", "")
func SplitPackage(spec string) (module, subpath string, err error) {
	idx := strings.IndexByte(spec, '/')
	if strings.HasPrefix(spec, "@") {
		if idx < 0 {
			return "", "", ErrInvalidPackageSpecifier
		}
		if next := strings.IndexByte(spec[idx+1:], '/'); next >= 0 {
			return spec[:idx+1+next], spec[idx+next+2:], nil
		}
		return spec, "", nil
	}
	if idx >= 0 {
		return spec[:idx], spec[idx+1:], nil
	}
	return spec, "", nil
}
