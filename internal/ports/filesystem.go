package ports

// Filesystem is the only way generators touch the disk.
type Filesystem interface {
	Exists(path string) bool
	// CreateFile writes contents at path, creating parent directories.
	CreateFile(path string, contents []byte) error
	CreateDirectory(path string) error
	ReadFile(path string) ([]byte, error)
	Delete(path string) error
}
