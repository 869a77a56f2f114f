//go:build windows

package core

// hostAbsolutePath is the host absolute-path predicate used by the CJS
// bare-specifier fast path.
func hostAbsolutePath(s string) bool {
	return windowsAbsolutePath(s)
}

// hostFileURLPath strips the slash a file: URL places before a drive
// letter: "/C:/dir" names "C:/dir".
func hostFileURLPath(p string) string {
	if len(p) >= 3 && p[0] == '/' && asciiAlpha(p[1]) && p[2] == ':' {
		return p[1:]
	}
	return p
}
