package core

import "strings"

// ParseScheme recognizes an optional "scheme:" prefix following the WHATWG
// scheme grammar (https://url.spec.whatwg.org/#scheme-state): an ASCII
// letter followed by letters, digits, '+', '-', or '.', terminated by ':'.
// It returns the lower-cased scheme and the text after the colon. ok is
// false when the input is empty, starts with a non-letter, contains a
// character outside the grammar, or ends before any ':'.
//
// The scheme is a view into the input unless it contained upper-case
// letters; strings.ToLower only allocates when it changes bytes.
func ParseScheme(input string) (scheme, rest string, ok bool) {
	if input == "" || !asciiAlpha(input[0]) {
		return "", "", false
	}
	for i := 0; i < len(input); i++ {
		switch c := input[i]; {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9':
		case c == '+' || c == '-' || c == '.':
		case c == ':':
			return strings.ToLower(input[:i]), input[i+1:], true
		default:
			return "", "", false
		}
	}
	// Ran out of input before any ':'.
	return "", "", false
}

func asciiAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
