package core

import "strings"

// percentDecode reverses %XX escape sequences, passing malformed escapes
// through verbatim and replacing invalid UTF-8 with U+FFFD. The input is
// returned unchanged (no allocation) when it contains no '%' byte.
func percentDecode(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}
	return strings.ToValidUTF8(b.String(), "�")
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// decodePath splits a specifier into path and query and percent-decodes the
// path under ESM and URL syntax. CJS paths are raw: no decoding, no query.
func decodePath(spec string, syntax Syntax) (path, query string) {
	if syntax == SyntaxCJS {
		return spec, ""
	}
	path, rest := SplitPath(spec)
	query, _ = SplitQuery(rest)
	return percentDecode(path), query
}
