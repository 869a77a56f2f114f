// Package specifiers classifies module reference strings.
//
// Given the text of an import, a require() argument, or a URL-like
// reference from markup or CSS, Parse decides which semantic form it takes
// (relative path, absolute path, tilde path, fragment, package, runtime
// builtin, or opaque URL) and extracts any trailing query string. The rules
// differ by syntax: ESM and URL references follow WHATWG-style scheme and
// percent-encoding grammars, while CJS references are raw filesystem-like
// strings.
//
// Basic usage:
//
//	spec, query, err := specifiers.Parse("npm:@scope/pkg/sub?v=1", specifiers.SyntaxESM, specifiers.FlagNPMScheme)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(spec.Kind, spec.Value, spec.Subpath, query)
//	// package @scope/pkg sub ?v=1
//
// Classification is pure and allocation-averse: payloads are views into the
// input unless percent-decoding or URL conversion changed bytes. Locating
// the referenced file on disk is out of scope; see the fetch subpackage for
// resolving classified package specifiers against a registry.
package specifiers

import (
	"github.com/git-pkgs/purl"
	"github.com/git-pkgs/specifiers/internal/core"
)

// Re-export types from internal/core
type (
	// Specifier is a classified module reference.
	Specifier = core.Specifier

	// Kind identifies the semantic form of a specifier.
	Kind = core.Kind

	// Syntax selects which reference grammar Parse applies.
	Syntax = core.Syntax

	// Flags is a bitset of per-call parsing options.
	Flags = core.Flags

	// URLError wraps a failure from the generic URL grammar.
	URLError = core.URLError

	// WireError is the serialized {kind, value} form of a classification error.
	WireError = core.WireError
)

// Re-export constants
const (
	KindRelative = core.KindRelative
	KindAbsolute = core.KindAbsolute
	KindTilde    = core.KindTilde
	KindHash     = core.KindHash
	KindPackage  = core.KindPackage
	KindBuiltin  = core.KindBuiltin
	KindURL      = core.KindURL

	SyntaxESM = core.SyntaxESM
	SyntaxCJS = core.SyntaxCJS
	SyntaxURL = core.SyntaxURL

	FlagNPMScheme          = core.FlagNPMScheme
	FlagAbsoluteSpecifiers = core.FlagAbsoluteSpecifiers
)

// Re-export errors
var (
	ErrEmptySpecifier          = core.ErrEmptySpecifier
	ErrInvalidPackageSpecifier = core.ErrInvalidPackageSpecifier
	ErrInvalidFileURL          = core.ErrInvalidFileURL
)

// Parse classifies spec under the given syntax and flags. The returned
// query includes its leading '?' and is "" when absent.
func Parse(spec string, syntax Syntax, flags Flags) (Specifier, string, error) {
	return core.Parse(spec, syntax, flags)
}

// SplitPackage splits a string already known to be a bare package reference
// into its module name and subpath, handling "@scope/name" scoping.
func SplitPackage(spec string) (module, subpath string, err error) {
	return core.SplitPackage(spec)
}

// ParseScheme recognizes an optional "scheme:" prefix per the WHATWG scheme
// grammar, returning the lower-cased scheme and the text after the colon.
func ParseScheme(input string) (scheme, rest string, ok bool) {
	return core.ParseScheme(input)
}

// EncodeError maps a classification error to its wire form.
func EncodeError(err error) WireError {
	return core.EncodeError(err)
}

// Constructors, re-exported for callers assembling specifiers directly
// (e.g. test fixtures and alias tables).
var (
	Relative = core.Relative
	Absolute = core.Absolute
	Tilde    = core.Tilde
	Hash     = core.Hash
	Package  = core.Package
	Builtin  = core.Builtin
	URL      = core.URL
)

// PURL represents a parsed Package URL.
type PURL = purl.PURL

// FromPURL converts an npm Package URL (e.g. "pkg:npm/%40scope/pkg@1.2.0")
// into a package specifier plus the version carried by the purl ("" when
// absent).
func FromPURL(purlStr string) (Specifier, string, error) {
	p, err := purl.Parse(purlStr)
	if err != nil {
		return Specifier{}, "", err
	}
	return core.Package(p.FullName(), ""), p.Version, nil
}
