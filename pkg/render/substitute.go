package render

import (
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/cloudposse/preform/pkg/environment"
)

const sigil = "$"

var placeholderRegexp = regexp.MustCompile(`\$[A-Za-z_][A-Za-z0-9_]*`)

// Substitute replaces every literal `$<key>` in content with its value in a single left-to-right
// scan. At each `$` the keys are tried in table order and the first match wins, so when a key is a
// prefix of another (`$env` and `$environment`) the entry listed first is used. Inserted values are
// never scanned again.
func Substitute(content string, table environment.Table) string {
	if len(table) == 0 {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))
	for {
		i := strings.Index(content, sigil)
		if i < 0 {
			b.WriteString(content)
			return b.String()
		}
		b.WriteString(content[:i])
		rest := content[i+len(sigil):]

		v, ok := match(rest, table)
		if !ok {
			b.WriteString(sigil)
			content = rest
			continue
		}
		b.WriteString(v.Value)
		content = rest[len(v.Key):]
	}
}

// match returns the first table entry whose key starts text.
func match(text string, table environment.Table) (environment.Variable, bool) {
	for _, v := range table {
		if strings.HasPrefix(text, v.Key) {
			return v, true
		}
	}
	return environment.Variable{}, false
}

// LongestFirst returns a copy of table ordered by descending key length, so that `$environment`
// is replaced before `$env`. Keys of equal length keep their file order.
func LongestFirst(table environment.Table) environment.Table {
	ordered := slices.Clone(table)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Key) > len(ordered[j].Key)
	})
	return ordered
}

// OutputPath strips the final extension of template: `main.tf.pre` renders to `main.tf`.
func OutputPath(template string) (string, bool) {
	ext := filepath.Ext(template)
	if ext == "" || filepath.Base(template) == ext {
		return "", false
	}
	return strings.TrimSuffix(template, ext), true
}

// unresolved lists the distinct `$identifier` tokens left in content.
func unresolved(content string) []string {
	return lo.Uniq(placeholderRegexp.FindAllString(content, -1))
}
