package core

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"devsetup/internal/types"
)

func TestParsePackageLines(t *testing.T) {
	names, err := ParsePackageLines(strings.NewReader("git\n#comment\n\npython\n"))
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"git", "python"}, names); diff != "" {
		t.Fatalf("unexpected package list (-want +got):\n%s", diff)
	}
}

func TestParsePackageLinesTrimsWhitespace(t *testing.T) {
	names, err := ParsePackageLines(strings.NewReader("  git  \n\t#tab comment\n  python\t\n"))
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"git", "python"}, names); diff != "" {
		t.Fatalf("unexpected package list (-want +got):\n%s", diff)
	}
}

func TestParseToolList(t *testing.T) {
	specs := ParseToolList("git, nodejs,,vscode, git")
	var names []string
	for _, spec := range specs {
		require.Equal(t, types.PackageKindSystem, spec.Kind)
		names = append(names, spec.Name)
	}
	if diff := cmp.Diff([]string{"git", "nodejs", "vscode"}, names); diff != "" {
		t.Fatalf("unexpected tool list (-want +got):\n%s", diff)
	}
}
