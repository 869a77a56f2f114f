package core

import (
	"fmt"
	"strings"

	packageurl "github.com/package-url/packageurl-go"
)

// PURL renders a package or builtin specifier as a Package URL. Packages
// map to pkg:npm with the scope as the namespace and the subpath carried in
// the purl subpath; builtins map to pkg:generic since they ship with the
// runtime and have no registry. version may be empty.
func (s Specifier) PURL(version string) (string, error) {
	switch s.Kind {
	case KindPackage:
		namespace, name := "", s.Value
		if strings.HasPrefix(s.Value, "@") {
			if idx := strings.IndexByte(s.Value, '/'); idx >= 0 {
				namespace, name = s.Value[:idx], s.Value[idx+1:]
			}
		}
		p := packageurl.NewPackageURL(packageurl.TypeNPM, namespace, name, version, nil, s.Subpath)
		return p.ToString(), nil

	case KindBuiltin:
		p := packageurl.NewPackageURL(packageurl.TypeGeneric, "", s.Value, version, nil, "")
		return p.ToString(), nil
	}

	return "", fmt.Errorf("no package URL for %s specifier %q", s.Kind, s.String())
}
