package core

import (
	"net/url"
	"strings"
)

// windowsAbsolutePath reports whether s has the shape of an absolute path
// on backslash-separator hosts: a drive letter followed by a separator
// ("C:\x", "C:/x") or a UNC prefix ("\\server\share"). Drive-relative
// ("C:x") and rooted ("\x") paths are not absolute.
func windowsAbsolutePath(s string) bool {
	if len(s) >= 3 && asciiAlpha(s[0]) && s[1] == ':' && (s[2] == '/' || s[2] == '\\') {
		return true
	}
	return strings.HasPrefix(s, `\\`)
}

// fileURLPath converts a parsed file: URL to a filesystem path. URLs with a
// non-local host cannot name a local file and are rejected rather than
// mapped to UNC form.
func fileURLPath(u *url.URL) (string, error) {
	if u.Host != "" && u.Host != "localhost" {
		return "", ErrInvalidFileURL
	}
	p := u.Path
	if p == "" {
		return "", ErrInvalidFileURL
	}
	return hostFileURLPath(p), nil
}
