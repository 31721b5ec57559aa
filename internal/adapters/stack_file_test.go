package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStacksYAML = `stacks:
  - name: embedded
    description: Embedded toolchain
    packages: [git, cmake, ninja]
    pip_packages: [platformio]
    vscode_extensions: [ms-vscode.cpptools]
`

func TestStackFileAdapterLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stacks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleStacksYAML), 0o644))

	stacks, err := NewStackFileAdapter().Load(path)
	require.NoError(t, err)
	require.Len(t, stacks, 1)
	assert.Equal(t, "embedded", stacks[0].Name)
	if diff := cmp.Diff([]string{"git", "cmake", "ninja"}, stacks[0].Packages); diff != "" {
		t.Fatalf("unexpected packages (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"platformio"}, stacks[0].PipPackages); diff != "" {
		t.Fatalf("unexpected pip packages (-want +got):\n%s", diff)
	}
}

func TestStackFileAdapterMissingFile(t *testing.T) {
	_, err := NewStackFileAdapter().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestStackFileAdapterMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stacks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stacks: [unclosed"), 0o644))

	_, err := NewStackFileAdapter().Load(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
