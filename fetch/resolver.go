package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/git-pkgs/specifiers"
)

var (
	// ErrNotRemote is returned for specifier kinds that name local files or
	// fragments rather than registry packages.
	ErrNotRemote = errors.New("specifier does not name a registry package")

	// ErrBuiltinSpecifier is returned for builtins, which ship with the
	// runtime and have no registry artifact.
	ErrBuiltinSpecifier = errors.New("builtin modules have no registry artifact")

	// ErrNoDownloadURL is returned when registry metadata carries no
	// tarball for the requested version.
	ErrNoDownloadURL = errors.New("no download URL available")
)

// DefaultRegistryURL is the public npm registry.
const DefaultRegistryURL = "https://registry.npmjs.org"

// Resolver maps classified package specifiers to registry URLs.
type Resolver struct {
	baseURL string
	client  Client
}

// NewResolver creates a resolver against the given registry base URL
// (DefaultRegistryURL when empty). client may be nil if only URL building
// is needed.
func NewResolver(baseURL string, client Client) *Resolver {
	if baseURL == "" {
		baseURL = DefaultRegistryURL
	}
	return &Resolver{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// ArtifactInfo describes a downloadable package artifact.
type ArtifactInfo struct {
	URL       string
	Filename  string
	Version   string
	Integrity string // sha512-... or sha1-...
}

// MetadataURL returns the registry document URL for a package specifier.
// Scoped names keep their '/' percent-encoded, as npm requires.
func (r *Resolver) MetadataURL(spec specifiers.Specifier) (string, error) {
	module, err := moduleName(spec)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", r.baseURL, url.PathEscape(module)), nil
}

// TarballURL returns the conventional npm tarball URL for a package
// specifier at an explicit version, without consulting the registry.
func (r *Resolver) TarballURL(spec specifiers.Specifier, version string) (string, error) {
	module, err := moduleName(spec)
	if err != nil {
		return "", err
	}
	shortName := module
	if idx := strings.LastIndex(module, "/"); idx >= 0 {
		shortName = module[idx+1:]
	}
	return fmt.Sprintf("%s/%s/-/%s-%s.tgz", r.baseURL, module, shortName, version), nil
}

// packument is the subset of the npm registry document the resolver reads.
type packument struct {
	Name     string                      `json:"name"`
	DistTags map[string]string           `json:"dist-tags"`
	Versions map[string]packumentVersion `json:"versions"`
}

type packumentVersion struct {
	Version string `json:"version"`
	Dist    struct {
		Tarball   string `json:"tarball"`
		Integrity string `json:"integrity"`
		Shasum    string `json:"shasum"`
	} `json:"dist"`
}

// Resolve fetches registry metadata for a package specifier and returns the
// artifact for the requested version, or for the "latest" dist-tag when
// version is empty.
func (r *Resolver) Resolve(ctx context.Context, spec specifiers.Specifier, version string) (*ArtifactInfo, error) {
	metaURL, err := r.MetadataURL(spec)
	if err != nil {
		return nil, err
	}

	var doc packument
	if err := r.client.FetchJSON(ctx, metaURL, &doc); err != nil {
		return nil, err
	}

	if version == "" {
		version = doc.DistTags["latest"]
	}
	v, ok := doc.Versions[version]
	if !ok {
		return nil, fmt.Errorf("%w: %s@%s", ErrNotFound, spec.String(), version)
	}
	if v.Dist.Tarball == "" {
		return nil, ErrNoDownloadURL
	}

	integrity := v.Dist.Integrity
	if integrity == "" && v.Dist.Shasum != "" {
		integrity = "sha1-" + v.Dist.Shasum
	}

	return &ArtifactInfo{
		URL:       v.Dist.Tarball,
		Filename:  filenameFromURL(v.Dist.Tarball),
		Version:   v.Version,
		Integrity: integrity,
	}, nil
}

// Download resolves a package specifier and fetches its tarball.
func (r *Resolver) Download(ctx context.Context, spec specifiers.Specifier, version string) (*ArtifactInfo, *Artifact, error) {
	info, err := r.Resolve(ctx, spec, version)
	if err != nil {
		return nil, nil, err
	}
	artifact, err := r.client.Fetch(ctx, info.URL)
	if err != nil {
		return nil, nil, err
	}
	return info, artifact, nil
}

func moduleName(spec specifiers.Specifier) (string, error) {
	switch spec.Kind {
	case specifiers.KindPackage:
		return spec.Value, nil
	case specifiers.KindBuiltin:
		return "", ErrBuiltinSpecifier
	}
	return "", fmt.Errorf("%w: %s %q", ErrNotRemote, spec.Kind, spec.String())
}

func filenameFromURL(u string) string {
	if idx := strings.LastIndex(u, "/"); idx >= 0 {
		return u[idx+1:]
	}
	return u
}
