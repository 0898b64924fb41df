package filesystem

import (
	"os"
)

// WriteFileAtomic replaces filename with data using a platform-specific strategy.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return writeFileAtomicImpl(filename, data, perm)
}
