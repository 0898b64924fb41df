package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudposse/preform/pkg/environment"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		table    environment.Table
		expected string
	}{
		{
			name:     "single key",
			content:  `region = "$region"`,
			table:    environment.Table{{Key: "region", Value: "us-east-1"}},
			expected: `region = "us-east-1"`,
		},
		{
			name:     "all occurrences",
			content:  "$a-$a-$a",
			table:    environment.Table{{Key: "a", Value: "x"}},
			expected: "x-x-x",
		},
		{
			name:     "case sensitive",
			content:  "$Region $region",
			table:    environment.Table{{Key: "region", Value: "eu"}},
			expected: "$Region eu",
		},
		{
			name:     "no delimiter after key",
			content:  "$regionally",
			table:    environment.Table{{Key: "region", Value: "eu"}},
			expected: "eually",
		},
		{
			name:     "unknown placeholders untouched",
			content:  `name = "$name" # ${var.x}`,
			table:    environment.Table{{Key: "region", Value: "eu"}},
			expected: `name = "$name" # ${var.x}`,
		},
		{
			name:     "value containing its own key is not rewritten again",
			content:  "$a",
			table:    environment.Table{{Key: "a", Value: "$a$a"}},
			expected: "$a$a",
		},
		{
			name:     "value containing another key is inserted verbatim",
			content:  "$a $b",
			table:    environment.Table{{Key: "a", Value: "lit-$b"}, {Key: "b", Value: "B"}},
			expected: "lit-$b B",
		},
		{
			name:     "value containing an earlier key is inserted verbatim",
			content:  "$a $b",
			table:    environment.Table{{Key: "a", Value: "A"}, {Key: "b", Value: "$a"}},
			expected: "A $a",
		},
		{
			name:     "lone sigils kept",
			content:  "$ $$a $",
			table:    environment.Table{{Key: "a", Value: "x"}},
			expected: "$ $x $",
		},
		{
			name:     "empty value",
			content:  "prefix-$suffix",
			table:    environment.Table{{Key: "suffix", Value: ""}},
			expected: "prefix-",
		},
		{
			name:     "empty table",
			content:  "$a",
			table:    nil,
			expected: "$a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Substitute(tt.content, tt.table))
		})
	}
}

func TestSubstitute_PrefixCollisionIsOrderDependent(t *testing.T) {
	content := "$env/$environment"

	shortFirst := environment.Table{{Key: "env", Value: "dev"}, {Key: "environment", Value: "development"}}
	assert.Equal(t, "dev/devironment", Substitute(content, shortFirst))

	longFirst := environment.Table{{Key: "environment", Value: "development"}, {Key: "env", Value: "dev"}}
	assert.Equal(t, "dev/development", Substitute(content, longFirst))

	assert.Equal(t, "dev/development", Substitute(content, LongestFirst(shortFirst)))
}

func TestSubstitute_AllKeysReplaced(t *testing.T) {
	table := environment.Table{
		{Key: "region", Value: "us-east-1"},
		{Key: "bucket", Value: "state-bucket"},
		{Key: "count", Value: "3"},
		{Key: "owner", Value: "platform"},
	}

	var b strings.Builder
	for _, v := range table {
		fmt.Fprintf(&b, "%s = \"$%s\"\n", v.Key, v.Key)
	}

	out := Substitute(b.String(), table)
	for _, v := range table {
		assert.NotContains(t, out, "$"+v.Key)
		assert.Contains(t, out, fmt.Sprintf("%s = %q", v.Key, v.Value))
	}
	assert.Empty(t, unresolved(out))
}

func TestLongestFirst(t *testing.T) {
	table := environment.Table{{Key: "a", Value: "1"}, {Key: "ccc", Value: "3"}, {Key: "bb", Value: "2"}, {Key: "dd", Value: "4"}}

	ordered := LongestFirst(table)
	assert.Equal(t, environment.Table{{Key: "ccc", Value: "3"}, {Key: "bb", Value: "2"}, {Key: "dd", Value: "4"}, {Key: "a", Value: "1"}}, ordered)
	assert.Equal(t, "a", table[0].Key, "input must not be reordered")
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		template string
		expected string
		ok       bool
	}{
		{"main.tf.pre", "main.tf", true},
		{"infra/main.tf.pre", "infra/main.tf", true},
		{"terraform.tfvars.tmpl", "terraform.tfvars", true},
		{"backend.pre", "backend", true},
		{"main", "", false},
		{".pre", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			out, ok := OutputPath(tt.template)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestUnresolved(t *testing.T) {
	assert.Equal(t, []string{"$a", "$b_1"}, unresolved("$a $b_1 $a ${c} $$ $1"))
}
