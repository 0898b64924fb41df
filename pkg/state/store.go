// Package state persists the last selected environment between invocations.
package state

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	errUtils "github.com/cloudposse/preform/errors"
	"github.com/cloudposse/preform/pkg/filesystem"
	log "github.com/cloudposse/preform/pkg/logger"
	"github.com/cloudposse/preform/pkg/schema"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store reads and writes the session state file.
type Store struct {
	fs   filesystem.FileSystem
	path string
}

// NewStore creates a Store for the state file at path.
func NewStore(fs filesystem.FileSystem, path string) *Store {
	return &Store{fs: fs, path: path}
}

// NewStoreFromConfig creates a Store at `<state.dir>/<state.file>`.
func NewStoreFromConfig(fs filesystem.FileSystem, cfg schema.Configuration) *Store {
	return NewStore(fs, filepath.Join(cfg.State.Dir, cfg.State.File))
}

// Path returns the location of the state file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the cached session, or nil when no state file exists.
func (s *Store) Load() (*schema.SessionState, error) {
	payload, err := s.fs.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("No cached session", "file", s.path)
			return nil, nil
		}
		return nil, errUtils.Build(errors.Join(errUtils.ErrReadState, err)).
			WithContext("file", s.path).
			Err()
	}

	var loaded schema.SessionState
	if err := json.Unmarshal(payload, &loaded); err != nil {
		return nil, errUtils.Build(errors.Join(errUtils.ErrParseState, err)).
			WithHintf("Fix or delete `%s`, then select an environment with `-e`", s.path).
			WithContext("file", s.path).
			Err()
	}
	return &loaded, nil
}

// Save overwrites the state file unconditionally.
func (s *Store) Save(session schema.SessionState) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(s.path, payload, 0o644); err != nil {
		return errUtils.Build(errors.Join(errUtils.ErrWriteState, err)).
			WithContext("file", s.path).
			Err()
	}
	log.Debug("Saved session", "env", session.Env, "file", s.path)
	return nil
}

// Resolve picks the session for this run. An explicitly passed environment wins and must be
// persisted (save is true); otherwise the cached session is reused as is.
func Resolve(args schema.ArgsInfo, cached *schema.SessionState) (session schema.SessionState, save bool, err error) {
	if args.EnvProvided {
		return schema.SessionState{Env: args.Env}, true, nil
	}
	if cached != nil {
		return *cached, false, nil
	}
	return schema.SessionState{}, false, errUtils.Build(errUtils.ErrNoEnvironment).
		WithHint("Select an environment once with `preform -e <name>`; it is remembered for later runs").
		WithExitCode(1).
		Err()
}
