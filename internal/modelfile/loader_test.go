package modelfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relcheck/internal/model"
)

const sampleYAML = `
package: com.example
declarations:
  - name: Parent
    annotations:
      - type: javax.persistence.Entity
    constructors:
      - params: [int, java.lang.String]
      - {}
    properties:
      - name: children
        type: java.util.Set<Child>
        annotations:
          - type: javax.persistence.OneToMany
            attributes:
              mappedBy: parent
              targetEntity: {class: Child}
              orphanRemoval: true
              cascade: [PERSIST, MERGE]
  - name: Child
    properties:
      - name: getParent
        kind: accessor
        type: Parent
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "com.example", f.Package)
	require.Len(t, f.Declarations, 2)

	parent := f.Declarations[0]
	assert.Equal(t, "Parent", parent.Name)
	assert.Equal(t, 4, parent.Line)
	require.Len(t, parent.Constructors, 2)
	assert.Equal(t, []string{"int", "java.lang.String"}, parent.Constructors[0].Params)
	assert.Empty(t, parent.Constructors[1].Params)

	children := parent.Properties[0]
	assert.Equal(t, "field", children.Kind, "kind defaults to field")
	assert.Equal(t, 11, children.Line)

	attrs := children.Annotations[0].Attributes
	require.Len(t, attrs, 4)
	assert.Equal(t, AttributeDef{Name: "mappedBy", Kind: model.ValueString, Str: "parent"}, attrs[0])
	assert.Equal(t, AttributeDef{Name: "targetEntity", Kind: model.ValueClass, Class: "Child"}, attrs[1])
	assert.Equal(t, "orphanRemoval", attrs[2].Name)
	assert.Equal(t, model.ValueOther, attrs[2].Kind)
	assert.Equal(t, true, attrs[2].Other)
	assert.Equal(t, []any{"PERSIST", "MERGE"}, attrs[3].Other)

	assert.Equal(t, "accessor", f.Declarations[1].Properties[0].Kind)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("declarations: [\n"))
	require.Error(t, err)

	_, err = Parse([]byte(`
declarations:
  - name: Parent
    properties:
      - name: children
        type: Child
        annotations:
          - type: javax.persistence.OneToMany
            attributes: [mappedBy]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected attribute mapping")
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, WriteFile(f, path))

	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, back.Path)

	require.Len(t, back.Declarations, 2)
	got := back.Declarations[0].Properties[0].Annotations[0].Attributes
	want := f.Declarations[0].Properties[0].Annotations[0].Attributes
	assert.Equal(t, want, got)
}
