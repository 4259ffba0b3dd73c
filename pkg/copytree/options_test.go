package copytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/copytree/pkg/extattr"
)

func TestAttrSelection_String(t *testing.T) {
	assert.Equal(t, "none", AttrSelection{}.String())
	assert.Equal(t, "all", AllAttrs().String())
	assert.Equal(t, "named(system,user)", NamedAttrs("user", "system").String(), "names are sorted")
	assert.Equal(t, "named(user)", NamedAttrs("user", "user").String(), "duplicates collapse")
}

func TestAttrSelection_Resolve(t *testing.T) {
	table := map[string]extattr.NamespaceID{"user": 1, "system": 2}

	assert.Nil(t, AttrSelection{}.resolve(table))

	all := AllAttrs().resolve(table)
	require.Len(t, all, 2)
	assert.Equal(t, "system", all[0].name, "resolution is sorted by name")
	assert.Equal(t, "user", all[1].name)

	named := NamedAttrs("user", "vanished").resolve(table)
	require.Len(t, named, 1, "names missing from the table are skipped")
	assert.Equal(t, extattr.NamespaceID(1), named[0].id)
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "abort", Abort.String())
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "unknown", Decision(9).String())
}

func TestOptions_Excluded(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		arg  string
		want bool
	}{
		{"empty options", Options{}, "anything", false},
		{"exact name", Options{Exclude: []string{"node_modules"}}, "node_modules", true},
		{"name is not a pattern", Options{Exclude: []string{"*.log"}}, "trace.log", false},
		{"pattern match", Options{ExcludePatterns: []string{"*.log"}}, "trace.log", true},
		{"pattern miss", Options{ExcludePatterns: []string{"*.log"}}, "trace.txt", false},
		{"brace expansion", Options{ExcludePatterns: []string{"*.{log,tmp}"}}, "trace.tmp", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.excluded(tt.arg))
		})
	}
}
