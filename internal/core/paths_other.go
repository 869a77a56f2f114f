//go:build !windows

package core

// hostAbsolutePath is the host absolute-path predicate used by the CJS
// bare-specifier fast path. Bare specifiers never start with '/', so on
// slash-separator hosts nothing qualifies.
func hostAbsolutePath(string) bool {
	return false
}

func hostFileURLPath(p string) string {
	return p
}
