package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	doc := []byte(`
files:
  - name: sepl_18.se1
    path: ephe/sepl_18.se1
  - name: seleapsec.txt
    content: "20170101 37\n"
    overwrite: true
`)

	m, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, m.Files, 2)

	assert.Equal(t, "sepl_18.se1", m.Files[0].Name)
	assert.Equal(t, "ephe/sepl_18.se1", m.Files[0].Path)
	assert.False(t, m.Files[0].Overwrite)

	assert.Equal(t, "seleapsec.txt", m.Files[1].Name)
	assert.Equal(t, "20170101 37\n", m.Files[1].Content)
	assert.True(t, m.Files[1].Overwrite)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("files: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse manifest")
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "no files",
			doc:  "files: []",
		},
		{
			name: "missing name",
			doc: `
files:
  - content: abc
`,
		},
		{
			name: "name too long",
			doc: `
files:
  - name: ` + strings.Repeat("x", 32) + `
    content: abc
`,
		},
		{
			name: "both content and path",
			doc: `
files:
  - name: f
    content: abc
    path: f.txt
`,
		},
		{
			name: "neither content nor path",
			doc: `
files:
  - name: f
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validate manifest")
		})
	}
}

func TestParse_NameAtLimit(t *testing.T) {
	doc := `
files:
  - name: ` + strings.Repeat("x", 31) + `
    content: abc
`
	_, err := Parse([]byte(doc))
	require.NoError(t, err)
}
