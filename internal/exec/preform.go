package exec

import (
	"io"
	"os"

	"github.com/cloudposse/preform/pkg/config"
	"github.com/cloudposse/preform/pkg/environment"
	"github.com/cloudposse/preform/pkg/filesystem"
	log "github.com/cloudposse/preform/pkg/logger"
	"github.com/cloudposse/preform/pkg/render"
	"github.com/cloudposse/preform/pkg/schema"
	"github.com/cloudposse/preform/pkg/state"
)

// Preform runs the select, render and forward pipeline once.
type Preform struct {
	fs     filesystem.FileSystem
	runner CommandRunner
	out    io.Writer
}

// NewPreform creates a pipeline over the given filesystem and command runner.
// Dry-run output goes to out.
func NewPreform(fs filesystem.FileSystem, runner CommandRunner, out io.Writer) *Preform {
	return &Preform{fs: fs, runner: runner, out: out}
}

// ExecutePreform runs the pipeline against the real filesystem and child processes.
func ExecutePreform(cfg schema.Configuration, args schema.ArgsInfo) error {
	return NewPreform(filesystem.NewOSFileSystem(), NewProcessRunner(), os.Stdout).Execute(cfg, args)
}

// Execute selects the environment, renders the templates and forwards the command.
//
// An explicitly selected environment is saved before it is looked up, so a typo in -e
// is remembered even though the run fails.
func (p *Preform) Execute(cfg schema.Configuration, args schema.ArgsInfo) error {
	if err := Bootstrap(p.fs, cfg); err != nil {
		return err
	}

	store := state.NewStoreFromConfig(p.fs, cfg)
	cached, err := store.Load()
	if err != nil {
		return err
	}

	session, save, err := state.Resolve(args, cached)
	if err != nil {
		return err
	}
	if save {
		if err := store.Save(session); err != nil {
			return err
		}
	}
	log.Debug("Using environment", "env", session.Env)

	resolver := environment.NewResolver(p.fs, cfg.EnvFile)
	table, found, err := resolver.Resolve(session.Env)
	if err != nil {
		return err
	}
	if !found {
		names, err := resolver.Names()
		if err != nil {
			return err
		}
		return resolver.NotDefinedError(session.Env, names)
	}

	renderer := render.NewRenderer(p.fs, render.Options{
		Templates:    cfg.Templates,
		LongestFirst: cfg.Substitution.Order == config.SubstitutionOrderLongestFirst,
		ValidateHCL:  cfg.ValidateHCL,
	})
	if _, err := renderer.Render(table); err != nil {
		return err
	}

	return ExecuteShellCommand(p.runner, cfg, args, session, p.out)
}
