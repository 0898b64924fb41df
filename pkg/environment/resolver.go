// Package environment loads the environment definition file, a JSON object that maps
// environment names to `$key` substitution tables.
package environment

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/preform/errors"
	"github.com/cloudposse/preform/pkg/filesystem"
	log "github.com/cloudposse/preform/pkg/logger"
)

// Resolver looks up environments in the definition file.
// The file is read again on every call; nothing is cached.
type Resolver struct {
	fs   filesystem.FileSystem
	path string
}

// NewResolver creates a Resolver for the definition file at path.
func NewResolver(fs filesystem.FileSystem, path string) *Resolver {
	return &Resolver{fs: fs, path: path}
}

// Path returns the location of the definition file.
func (r *Resolver) Path() string {
	return r.path
}

// Load reads and parses the whole definition file.
func (r *Resolver) Load() (*Definitions, error) {
	data, err := r.fs.ReadFile(r.path)
	if err != nil {
		b := errUtils.Build(errors.Join(errUtils.ErrReadDefinitions, err)).WithContext("file", r.path)
		if errors.Is(err, os.ErrNotExist) {
			b = b.WithHintf("Create `%s` mapping each environment name to its variables", r.path)
		}
		return nil, b.Err()
	}

	defs, err := parseDefinitions(data)
	if err != nil {
		return nil, errUtils.Build(errors.Join(errUtils.ErrParseDefinitions, err)).
			WithContext("file", r.path).
			Err()
	}
	log.Trace("Loaded environment definitions", "file", r.path, "environments", len(defs.Names()))
	return defs, nil
}

// Resolve returns the table of the named environment. found is false when the
// file parses but does not define name.
func (r *Resolver) Resolve(name string) (table Table, found bool, err error) {
	defs, err := r.Load()
	if err != nil {
		return nil, false, err
	}
	table, found = defs.Get(name)
	return table, found, nil
}

// Names returns the environments defined in the file, in file order.
func (r *Resolver) Names() ([]string, error) {
	defs, err := r.Load()
	if err != nil {
		return nil, err
	}
	return defs.Names(), nil
}

// NotDefinedError builds the configuration error reported when name is missing from the file.
func (r *Resolver) NotDefinedError(name string, available []string) error {
	b := errUtils.Build(errors.Newf("chosen environment %q is not defined in %s", name, r.path)).
		WithSentinel(errUtils.ErrEnvironmentNotDefined).
		WithContext("env", name).
		WithExitCode(1)
	if len(available) > 0 {
		b = b.WithHintf("Defined environments: %s", strings.Join(available, ", "))
	} else {
		b = b.WithHintf("`%s` does not define any environment", r.path)
	}
	return b.Err()
}
