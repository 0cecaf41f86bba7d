package ports

// ManifestReader reads project metadata (composer.json).
type ManifestReader interface {
	// RootNamespace returns the PSR-4 namespace mapped to srcDir.
	RootNamespace(srcDir string) (string, error)
}
