// Package core implements classification of module specifiers.
package core

// Kind identifies the semantic form of a specifier.
type Kind uint8

const (
	// KindRelative is a path relative to the referencing file, without a
	// leading "./".
	KindRelative Kind = iota

	// KindAbsolute is a filesystem-absolute path.
	KindAbsolute

	// KindTilde is a path relative to the project root, without the
	// leading "~" or separator.
	KindTilde

	// KindHash is an in-document fragment reference, without the leading "#".
	KindHash

	// KindPackage is an installed package, split into module name and subpath.
	KindPackage

	// KindBuiltin is a module provided by the runtime itself.
	KindBuiltin

	// KindURL is an opaque URL, stored verbatim and uninterpreted.
	KindURL
)

func (k Kind) String() string {
	switch k {
	case KindRelative:
		return "relative"
	case KindAbsolute:
		return "absolute"
	case KindTilde:
		return "tilde"
	case KindHash:
		return "hash"
	case KindPackage:
		return "package"
	case KindBuiltin:
		return "builtin"
	case KindURL:
		return "url"
	}
	return "unknown"
}

// Specifier is the fully-classified form of a module reference. It is an
// immutable value computed once by Parse; Value holds the path, fragment,
// module name, builtin name, or raw URL depending on Kind, and Subpath is
// set only for KindPackage ("" when the package has no subpath).
//
// Payload strings are views into the caller's input whenever classification
// required no byte changes; decoding or synthesis (e.g. file: URL
// conversion) produces independently owned strings.
type Specifier struct {
	Kind    Kind
	Value   string
	Subpath string
}

// Relative returns a relative-path specifier.
func Relative(path string) Specifier {
	return Specifier{Kind: KindRelative, Value: path}
}

// Absolute returns a filesystem-absolute specifier.
func Absolute(path string) Specifier {
	return Specifier{Kind: KindAbsolute, Value: path}
}

// Tilde returns a project-root-relative specifier.
func Tilde(path string) Specifier {
	return Specifier{Kind: KindTilde, Value: path}
}

// Hash returns an in-document fragment specifier.
func Hash(fragment string) Specifier {
	return Specifier{Kind: KindHash, Value: fragment}
}

// Package returns a package specifier. subpath is "" when absent and never
// carries a leading "/".
func Package(module, subpath string) Specifier {
	return Specifier{Kind: KindPackage, Value: module, Subpath: subpath}
}

// Builtin returns a runtime-builtin specifier.
func Builtin(name string) Specifier {
	return Specifier{Kind: KindBuiltin, Value: name}
}

// URL returns an opaque URL specifier holding raw verbatim.
func URL(raw string) Specifier {
	return Specifier{Kind: KindURL, Value: raw}
}

// String renders the canonical text form: paths, fragments, builtin names,
// and URLs verbatim; packages as "module" or "module/subpath". Queries are
// not part of a Specifier and are never re-derived.
func (s Specifier) String() string {
	if s.Kind == KindPackage && s.Subpath != "" {
		return s.Value + "/" + s.Subpath
	}
	return s.Value
}

// Syntax selects which reference grammar Parse applies.
type Syntax uint8

const (
	// SyntaxESM follows ECMAScript import specifier rules: URL-like schemes,
	// percent-decoding, and query strings.
	SyntaxESM Syntax = iota

	// SyntaxCJS follows CommonJS require rules: raw filesystem-like strings
	// with no decoding and no query support.
	SyntaxCJS

	// SyntaxURL follows generic URL-reference rules as found in markup and
	// CSS, where bare text names a local file rather than a package.
	SyntaxURL
)

func (s Syntax) String() string {
	switch s {
	case SyntaxESM:
		return "esm"
	case SyntaxCJS:
		return "cjs"
	case SyntaxURL:
		return "url"
	}
	return "unknown"
}

// Flags is a bitset of per-call parsing options. It is always passed
// explicitly; there is no ambient configuration.
type Flags uint8

const (
	// FlagNPMScheme enables the "npm:" scheme shorthand for package
	// specifiers.
	FlagNPMScheme Flags = 1 << iota

	// FlagAbsoluteSpecifiers disables the host fast path that treats bare
	// CJS strings matching the platform's absolute-path shape (drive
	// letters, backslashes) as absolute paths.
	FlagAbsoluteSpecifiers
)

// Has reports whether all bits in f are set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}
