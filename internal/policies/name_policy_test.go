package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"devsetup/internal/types"
)

func TestBackendIDBuiltinMappings(t *testing.T) {
	policy := NewNamePolicy(nil)
	tests := []struct {
		kind    types.ManagerKind
		logical string
		id      string
	}{
		{types.ManagerWinget, "vscode", "Microsoft.VisualStudioCode"},
		{types.ManagerWinget, "git", "Git.Git"},
		{types.ManagerScoop, "kubernetes-cli", "kubectl"},
		{types.ManagerChocolatey, "git", "git"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.id, policy.BackendID(tt.kind, tt.logical), "%s/%s", tt.kind, tt.logical)
	}
}

func TestBackendIDUnmappedNamePassesThrough(t *testing.T) {
	policy := NewNamePolicy(nil)
	assert.Equal(t, "some-unknown-tool", policy.BackendID(types.ManagerWinget, "Some-Unknown-Tool"))
}

func TestBackendIDOverridesWin(t *testing.T) {
	policy := NewNamePolicy(map[types.ManagerKind]map[string]string{
		types.ManagerWinget: {"git": "Custom.Git"},
	})
	assert.Equal(t, "Custom.Git", policy.BackendID(types.ManagerWinget, "git"))
	assert.Equal(t, "Git.Git", NewNamePolicy(nil).BackendID(types.ManagerWinget, "git"))
}
