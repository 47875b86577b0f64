package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`name: fruits
groups:
  - title: Citrus
    options:
      - name: orange
        hint: sweet
      - lemon
  - title: Stone
    options:
      - peach
`)
	d, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "fruits", d.Name)
	require.Len(t, d.Groups, 2)

	// Mapping form keeps the hint; scalar shorthand has none.
	require.Len(t, d.Groups[0].Options, 2)
	assert.Equal(t, Option{Name: "orange", Hint: "sweet"}, d.Groups[0].Options[0])
	assert.Equal(t, Option{Name: "lemon"}, d.Groups[0].Options[1])
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("groups: {broken"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\ngroups:\n  - title: G\n    options: [a, b]\n"), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "x", d.Name)
	require.Len(t, d.Groups, 1)
	assert.Len(t, d.Groups[0].Options, 2)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEntries(t *testing.T) {
	d := Dataset{
		Groups: []Group{
			{Title: "G1", Options: []Option{{Name: "a"}, {Name: "b"}}},
			{Options: []Option{{Name: "c"}}}, // untitled: no divider
		},
	}
	entries := d.Entries()
	require.Len(t, entries, 4)
	assert.True(t, entries[0].Divider)
	assert.Equal(t, "G1", entries[0].Title)
	assert.Equal(t, "a", entries[1].Value.Name)
	assert.Equal(t, "b", entries[2].Value.Name)
	assert.False(t, entries[3].Divider)
	assert.Equal(t, "c", entries[3].Value.Name)
}

func TestSample(t *testing.T) {
	d := Sample()
	entries := d.Entries()
	assert.NotEmpty(t, entries)

	dividers := 0
	for _, e := range entries {
		if e.Divider {
			dividers++
		}
	}
	assert.Equal(t, len(d.Groups), dividers)
}
