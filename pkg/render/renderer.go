// Package render writes environment-specific copies of template files.
package render

import (
	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/preform/errors"
	"github.com/cloudposse/preform/pkg/environment"
	"github.com/cloudposse/preform/pkg/filesystem"
	log "github.com/cloudposse/preform/pkg/logger"
)

// Options configures a Renderer.
type Options struct {
	// Templates are rendered in order.
	Templates []string
	// LongestFirst applies longer keys before shorter ones instead of file order.
	LongestFirst bool
	// ValidateHCL logs a warning for each syntax problem in rendered Terraform files.
	ValidateHCL bool
}

// Renderer renders the configured templates with a substitution table.
type Renderer struct {
	fs   filesystem.FileSystem
	opts Options
}

// NewRenderer creates a Renderer.
func NewRenderer(fs filesystem.FileSystem, opts Options) *Renderer {
	return &Renderer{fs: fs, opts: opts}
}

// Render renders every template and returns the written output paths.
// Outputs written before a failure are left in place.
func (r *Renderer) Render(table environment.Table) ([]string, error) {
	if r.opts.LongestFirst {
		table = LongestFirst(table)
	}

	written := make([]string, 0, len(r.opts.Templates))
	for _, template := range r.opts.Templates {
		out, err := r.renderOne(template, table)
		if err != nil {
			return written, err
		}
		written = append(written, out)
	}
	return written, nil
}

func (r *Renderer) renderOne(template string, table environment.Table) (string, error) {
	out, ok := OutputPath(template)
	if !ok {
		return "", errUtils.Build(errUtils.ErrInvalidTemplatePath).
			WithHintf("Rename `%s` to carry a suffix such as `.pre`", template).
			WithContext("template", template).
			Err()
	}

	data, err := r.fs.ReadFile(template)
	if err != nil {
		return "", errUtils.Build(errors.Join(errUtils.ErrReadTemplate, err)).
			WithContext("template", template).
			Err()
	}

	rendered := Substitute(string(data), table)

	if err := r.fs.WriteFile(out, []byte(rendered), 0o644); err != nil {
		return "", errUtils.Build(errors.Join(errUtils.ErrWriteOutput, err)).
			WithContext("file", out).
			Err()
	}
	log.Debug("Rendered template", "template", template, "output", out, "variables", len(table))

	if left := unresolved(rendered); len(left) > 0 {
		log.Debug("Placeholders without a value", "output", out, "placeholders", left)
	}

	if r.opts.ValidateHCL {
		for _, diag := range checkHCL([]byte(rendered), out) {
			log.Warn("Rendered file is not valid HCL", "file", out, "error", diag.Error())
		}
	}

	return out, nil
}
