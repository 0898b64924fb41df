package filesystem

import (
	"os"
)

// FileSystem defines the whole-file operations preform performs.
// This interface allows swapping the backing store in tests.
type FileSystem interface {
	// ReadFile reads a file.
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces the content of a file, creating it if needed.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// Stat returns file info.
	Stat(name string) (os.FileInfo, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error
}

// Exists reports whether name can be stat'ed.
func Exists(fs FileSystem, name string) bool {
	_, err := fs.Stat(name)
	return err == nil
}
