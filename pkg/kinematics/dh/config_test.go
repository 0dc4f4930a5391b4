package dh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
links:
  - theta: 0
    d: 1
    a: 0
    alpha: 1.5707963267948966
    kind: revolute
    id: 1
  - theta: 0
    d: 1
    a: 0
    alpha: 1.5707963267948966
    kind: revolute
    id: 2
`

func TestLoadChain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	c, err := LoadChain(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2"}, c.ActuatedJoints())
}

func TestLoadChain_InvalidKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte("links:\n  - kind: bogus\n    id: 1\n"), 0o644))

	_, err := LoadChain(path)
	require.ErrorIs(t, err, ErrInvalidJointKind)
}

func TestLoadChain_MissingFile(t *testing.T) {
	_, err := LoadChain(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
