package exec

import (
	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/preform/errors"
	"github.com/cloudposse/preform/pkg/filesystem"
	log "github.com/cloudposse/preform/pkg/logger"
	"github.com/cloudposse/preform/pkg/schema"
)

// Bootstrap warns when the environment definition file is missing and creates the state directory.
// The missing file is not an error here; resolving an environment fails later if it is still absent.
func Bootstrap(fs filesystem.FileSystem, cfg schema.Configuration) error {
	if !filesystem.Exists(fs, cfg.EnvFile) {
		log.Warn("Missing config file " + cfg.EnvFile)
	}

	if err := fs.MkdirAll(cfg.State.Dir, 0o755); err != nil {
		return errUtils.Build(errors.Join(errUtils.ErrCreateStateDir, err)).
			WithContext("dir", cfg.State.Dir).
			Err()
	}
	return nil
}
