package adapters

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devsetup/internal/types"
)

func TestReportFileAdapterWrite(t *testing.T) {
	adapter := ReportFileAdapter{Dir: t.TempDir()}
	report := types.InstallReport{
		Manager:   types.ManagerChocolatey,
		StartedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Results: []types.InstallResult{
			{Spec: types.PackageSpec{Name: "git", Kind: types.PackageKindSystem}, Status: types.InstallStatusSucceeded},
			{Spec: types.PackageSpec{Name: "python", Kind: types.PackageKindSystem}, Status: types.InstallStatusFailed, Detail: "exit status 1"},
		},
	}

	path, err := adapter.Write(report)
	require.NoError(t, err)
	assert.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded types.InstallReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	if diff := cmp.Diff(report, decoded); diff != "" {
		t.Fatalf("report did not round-trip (-want +got):\n%s", diff)
	}
}
