package errors

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// contextField is one `key=value` pair shown in the verbose context table.
type contextField struct {
	key   string
	value interface{}
}

// ErrorBuilder decorates a preform error with hints for the user, context for --logs-level
// Debug output and an exit code.
type ErrorBuilder struct {
	err       error
	hints     []string
	context   []contextField
	exitCode  *int
	sentinels []error
}

// Build starts decorating err. A bare sentinel such as ErrNoEnvironment stays matchable with
// errors.Is after decoration; for joined or wrapped errors use WithSentinel.
func Build(err error) *ErrorBuilder {
	b := &ErrorBuilder{err: err}
	if err != nil && errors.UnwrapOnce(err) == nil {
		b.sentinels = append(b.sentinels, err)
	}
	return b
}

// WithHint adds a line printed under the error, e.g. how to select an environment.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hints = append(b.hints, hint)
	return b
}

// WithHintf is WithHint with formatting.
func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	return b.WithHint(fmt.Sprintf(format, args...))
}

// WithContext records the file, template or environment the error is about.
// Fields keep the order they were added in; setting a key again replaces its value.
func (b *ErrorBuilder) WithContext(key string, value interface{}) *ErrorBuilder {
	for i := range b.context {
		if b.context[i].key == key {
			b.context[i].value = value
			return b
		}
	}
	b.context = append(b.context, contextField{key: key, value: value})
	return b
}

// WithExitCode sets the status preform exits with.
func (b *ErrorBuilder) WithExitCode(code int) *ErrorBuilder {
	b.exitCode = &code
	return b
}

// WithSentinel makes the result match sentinel with errors.Is.
func (b *ErrorBuilder) WithSentinel(sentinel error) *ErrorBuilder {
	b.sentinels = append(b.sentinels, sentinel)
	return b
}

// Err returns the decorated error, or nil when Build was given nil.
func (b *ErrorBuilder) Err() error {
	if b.err == nil {
		return nil
	}

	err := b.err
	for _, hint := range b.hints {
		err = errors.WithHint(err, hint)
	}

	if len(b.context) > 0 {
		format := make([]string, 0, len(b.context))
		values := make([]interface{}, 0, len(b.context))
		for _, f := range b.context {
			format = append(format, f.key+"=%s")
			values = append(values, errors.Safe(f.value))
		}
		err = errors.WithSafeDetails(err, strings.Join(format, " "), values...)
	}

	// Marks go on last so no later wrapper hides them.
	for _, sentinel := range b.sentinels {
		err = errors.Mark(err, sentinel)
	}

	if b.exitCode != nil {
		err = WithExitCode(err, *b.exitCode)
	}
	return err
}
