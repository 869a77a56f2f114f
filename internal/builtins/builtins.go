// Package builtins holds the registry of Node.js builtin module names.
//
// The set is initialized at startup and never mutated, so lookups are safe
// from any number of concurrent callers. Only membership is exposed; the
// classifier never needs to iterate the set.
//
// To regenerate the list:
//
//	node -p "require('module').builtinModules.filter(m => !m.startsWith('_')).sort().join('\n')"
package builtins

// Last regenerated against Node.js v22.
var names = map[string]struct{}{
	"assert":              {},
	"assert/strict":       {},
	"async_hooks":         {},
	"buffer":              {},
	"child_process":       {},
	"cluster":             {},
	"console":             {},
	"constants":           {},
	"crypto":              {},
	"dgram":               {},
	"diagnostics_channel": {},
	"dns":                 {},
	"dns/promises":        {},
	"domain":              {},
	"events":              {},
	"fs":                  {},
	"fs/promises":         {},
	"http":                {},
	"http2":               {},
	"https":               {},
	"inspector":           {},
	"inspector/promises":  {},
	"module":              {},
	"net":                 {},
	"os":                  {},
	"path":                {},
	"path/posix":          {},
	"path/win32":          {},
	"perf_hooks":          {},
	"process":             {},
	"punycode":            {},
	"querystring":         {},
	"readline":            {},
	"readline/promises":   {},
	"repl":                {},
	"stream":              {},
	"stream/consumers":    {},
	"stream/promises":     {},
	"stream/web":          {},
	"string_decoder":      {},
	"sys":                 {},
	"timers":              {},
	"timers/promises":     {},
	"tls":                 {},
	"trace_events":        {},
	"tty":                 {},
	"url":                 {},
	"util":                {},
	"util/types":          {},
	"v8":                  {},
	"vm":                  {},
	"wasi":                {},
	"worker_threads":      {},
	"zlib":                {},
}

// Contains reports whether name is exactly a builtin module name. Prefixes
// like "node:" and trailing subpaths are the caller's concern.
func Contains(name string) bool {
	_, ok := names[name]
	return ok
}

// Len returns the number of registered builtin names.
func Len() int {
	return len(names)
}
