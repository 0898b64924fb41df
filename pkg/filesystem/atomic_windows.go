//go:build windows

package filesystem

import (
	"os"
)

// writeFileAtomicImpl falls back to a plain write on Windows, where renameio is not supported.
func writeFileAtomicImpl(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}
