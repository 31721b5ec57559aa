package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devsetup/internal/types"
)

func TestDoctorProbesEveryBackendOnce(t *testing.T) {
	manager := &stubManager{present: map[types.ManagerKind]bool{
		types.ManagerScoop: true,
	}}
	service := newTestService(&stubRunner{}, manager)

	result := service.Doctor(t.Context())
	require.Len(t, result.Probes, len(types.ManagerProbeOrder))

	byKind := map[types.ManagerKind]types.ProbeResult{}
	for _, probe := range result.Probes {
		byKind[probe.Kind] = probe
	}
	assert.False(t, byKind[types.ManagerChocolatey].Present)
	assert.True(t, byKind[types.ManagerScoop].Present)
	assert.Equal(t, "1.0.0", byKind[types.ManagerScoop].Version)
	assert.False(t, byKind[types.ManagerWinget].Present)
	assert.Empty(t, manager.bootstraps, "doctor must not bootstrap")
}

func TestStacksListsCatalog(t *testing.T) {
	service := newTestService(&stubRunner{}, allPresent())

	result, err := service.Stacks(t.Context(), StacksRequest{})
	require.NoError(t, err)
	require.Len(t, result.Stacks, 5)
}

func TestStacksAppliesOverrideFile(t *testing.T) {
	service := newTestService(&stubRunner{}, allPresent())
	service.StackSource = stubStackSource{stacks: []types.StackDefinition{
		{Name: "embedded", Packages: []string{"git", "cmake"}},
	}}

	result, err := service.Stacks(t.Context(), StacksRequest{StacksFile: "stacks.yaml"})
	require.NoError(t, err)
	require.Len(t, result.Stacks, 6)
}
