package environment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/preform/errors"
	"github.com/cloudposse/preform/pkg/filesystem"
)

func writeDefinitions(t *testing.T, content string) *Resolver {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preform-env.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return NewResolver(filesystem.NewOSFileSystem(), path)
}

func TestResolver_RoundTrip(t *testing.T) {
	resolver := writeDefinitions(t, `{
  "dev":     {"region": "us-east-1", "instance": "t3.micro"},
  "staging": {"region": "eu-west-1"},
  "prod":    {"instance": "m5.large", "region": "us-west-2", "replicas": "3"}
}`)

	expected := map[string]Table{
		"dev":     {{"region", "us-east-1"}, {"instance", "t3.micro"}},
		"staging": {{"region", "eu-west-1"}},
		"prod":    {{"instance", "m5.large"}, {"region", "us-west-2"}, {"replicas", "3"}},
	}

	for name, want := range expected {
		t.Run(name, func(t *testing.T) {
			table, found, err := resolver.Resolve(name)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, want, table)
		})
	}
}

func TestResolver_Names(t *testing.T) {
	resolver := writeDefinitions(t, `{"zeta": {}, "alpha": {"a": "1"}, "mid": {}}`)

	names, err := resolver.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestResolver_Undefined(t *testing.T) {
	resolver := writeDefinitions(t, `{"dev": {"region": "us-east-1"}, "gone": null}`)

	for _, name := range []string{"prod", "gone", "Dev"} {
		table, found, err := resolver.Resolve(name)
		require.NoError(t, err)
		assert.False(t, found, name)
		assert.Nil(t, table)
	}
}

func TestResolver_EmptyTable(t *testing.T) {
	resolver := writeDefinitions(t, `{"dev": {}}`)

	table, found, err := resolver.Resolve("dev")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, table)
}

func TestResolver_DuplicateKeys(t *testing.T) {
	resolver := writeDefinitions(t, `{"dev": {"a": "1", "b": "2", "a": "3"}}`)

	table, _, err := resolver.Resolve("dev")
	require.NoError(t, err)
	assert.Equal(t, Table{{"a", "3"}, {"b", "2"}}, table)
}

func TestResolver_ReadsFreshEachCall(t *testing.T) {
	resolver := writeDefinitions(t, `{"dev": {"region": "us-east-1"}}`)

	_, found, err := resolver.Resolve("prod")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, os.WriteFile(resolver.Path(), []byte(`{"prod": {"region": "us-west-2"}}`), 0o644))

	table, found, err := resolver.Resolve("prod")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, Table{{"region", "us-west-2"}}, table)
}

func TestResolver_ParseErrors(t *testing.T) {
	tests := map[string]string{
		"truncated":          `{"dev": {"region": "us-east-1"}`,
		"not an object":      `["dev"]`,
		"empty file":         ``,
		"number value":       `{"dev": {"replicas": 3}}`,
		"nested object":      `{"dev": {"tags": {"a": "b"}}}`,
		"environment string": `{"dev": "us-east-1"}`,
		"trailing garbage":   `{"dev": {}} x`,
		"second document":    `{"dev": {}} {"prod": {}}`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			resolver := writeDefinitions(t, content)

			_, _, err := resolver.Resolve("dev")
			assert.ErrorIs(t, err, errUtils.ErrParseDefinitions)
			assert.NotErrorIs(t, err, errUtils.ErrEnvironmentNotDefined)
		})
	}
}

func TestResolver_MissingFile(t *testing.T) {
	resolver := NewResolver(filesystem.NewOSFileSystem(), filepath.Join(t.TempDir(), "preform-env.json"))

	_, _, err := resolver.Resolve("dev")
	assert.ErrorIs(t, err, errUtils.ErrReadDefinitions)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolver_NotDefinedError(t *testing.T) {
	resolver := NewResolver(filesystem.NewOSFileSystem(), "preform-env.json")

	err := resolver.NotDefinedError("prod", []string{"dev", "staging"})
	assert.ErrorIs(t, err, errUtils.ErrEnvironmentNotDefined)
	assert.Equal(t, 1, errUtils.GetExitCode(err))
	assert.Contains(t, err.Error(), `"prod"`)
	assert.Contains(t, err.Error(), "preform-env.json")

	formatted := errUtils.Format(err, errUtils.FormatterConfig{Color: "never", MaxLineLength: 200})
	assert.Contains(t, formatted, "dev, staging")
}
