package domain

// Config represents the console configuration loaded from vivid.yaml.
type Config struct {
	Paths     PathsConfig
	Manifest  string
	Extension string

	FoundationNamespace string
}

type PathsConfig struct {
	// SourceDir is the directory holding Devices/ and Domains/ in a monolith.
	// When it does not exist the project is treated as a microservice.
	SourceDir string
	// AppDir is the Laravel application directory.
	AppDir   string
	TestsDir string
	// StubsDir optionally overrides the embedded templates.
	StubsDir string
}

// DefaultConfig provides sane defaults if vivid.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			SourceDir: "app",
			AppDir:    "app",
			TestsDir:  "tests",
		},
		Manifest:            "composer.json",
		Extension:           "php",
		FoundationNamespace: `Vivid\Foundation`,
	}
}
