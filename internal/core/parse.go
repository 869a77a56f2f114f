package core

import (
	"net/url"
	"os"
	"strings"

	"github.com/git-pkgs/specifiers/internal/builtins"
)

// Parse classifies a module reference under the given syntax and flags. It
// returns the classified specifier and any trailing query string including
// its leading '?' ("" when absent). Parse is a pure function: same inputs,
// same outputs, no shared state.
func Parse(spec string, syntax Syntax, flags Flags) (Specifier, string, error) {
	if spec == "" {
		return Specifier{}, "", ErrEmptySpecifier
	}

	switch spec[0] {
	case '.':
		// Strip exactly "./"; "../" and bare "." stay as written.
		trimmed := strings.TrimPrefix(spec, "./")
		path, query := decodePath(trimmed, syntax)
		return Relative(path), query, nil

	case '~':
		trimmed := spec[1:]
		if trimmed != "" && os.IsPathSeparator(trimmed[0]) {
			trimmed = trimmed[1:]
		}
		path, query := decodePath(trimmed, syntax)
		return Tilde(path), query, nil

	case '/':
		if strings.HasPrefix(spec, "//") && syntax == SyntaxURL {
			// A protocol-relative URL, e.g. url('//example.com/foo.png').
			return URL(spec), "", nil
		}
		path, query := decodePath(spec, syntax)
		return Absolute(path), query, nil

	case '#':
		return Hash(spec[1:]), "", nil
	}

	return parseBare(spec, syntax, flags)
}

func parseBare(spec string, syntax Syntax, flags Flags) (Specifier, string, error) {
	if syntax == SyntaxCJS {
		if builtins.Contains(spec) {
			return Builtin(spec), "", nil
		}
		// On backslash-separator hosts, require() accepts raw absolute
		// paths like `C:\dir\file` unless the caller opts out.
		if !flags.Has(FlagAbsoluteSpecifiers) && hostAbsolutePath(spec) {
			return Absolute(spec), "", nil
		}
		// Raw string: no percent-decoding and no query, ever.
		module, subpath, err := SplitPackage(spec)
		if err != nil {
			return Specifier{}, "", err
		}
		return Package(module, subpath), "", nil
	}

	if scheme, rest, ok := ParseScheme(spec); ok {
		return parseSchemed(spec, scheme, rest, flags)
	}

	path, rest := SplitPath(spec)
	if syntax == SyntaxESM {
		if builtins.Contains(path) {
			return Builtin(path), "", nil
		}
		query, _ := SplitQuery(rest)
		module, subpath, err := SplitPackage(percentDecode(path))
		if err != nil {
			return Specifier{}, "", err
		}
		return Package(module, subpath), query, nil
	}

	// Bare URL-syntax text names a local file relative to the document,
	// never a package.
	decoded, query := decodePath(spec, syntax)
	return Relative(decoded), query, nil
}

func parseSchemed(spec, scheme, rest string, flags Flags) (Specifier, string, error) {
	path, rest := SplitPath(rest)
	query, _ := SplitQuery(rest)

	switch scheme {
	case "npm":
		if !flags.Has(FlagNPMScheme) {
			break
		}
		if builtins.Contains(path) {
			return Builtin(path), "", nil
		}
		module, subpath, err := SplitPackage(percentDecode(path))
		if err != nil {
			return Specifier{}, "", err
		}
		return Package(module, subpath), query, nil

	case "node":
		// Node neither percent-decodes nor accepts query params here.
		// See https://github.com/nodejs/node/issues/39710.
		return Builtin(path), "", nil

	case "file":
		// Full file URL grammar (hosts, encoding) is handled by net/url.
		u, err := url.Parse(spec)
		if err != nil {
			return Specifier{}, "", &URLError{Err: err}
		}
		p, err := fileURLPath(u)
		if err != nil {
			return Specifier{}, "", err
		}
		return Absolute(p), query, nil
	}

	// Any other scheme owns its query semantics; keep the text verbatim.
	return URL(spec), "", nil
}
