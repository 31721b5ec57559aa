package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/mitchellh/go-homedir"

	"devsetup/internal/ports"
	"devsetup/internal/types"
)

// ReportFileAdapter writes the run report as indented JSON, one file
// per run, named by start timestamp.
type ReportFileAdapter struct {
	Dir string
}

// NewReportFileAdapter stores reports under the per-user devsetup
// state directory, next to nothing else.
func NewReportFileAdapter() ReportFileAdapter {
	home, err := homedir.Dir()
	if err != nil {
		home = os.TempDir()
	}
	return ReportFileAdapter{Dir: filepath.Join(home, ".devsetup", "reports")}
}

func (a ReportFileAdapter) Write(report types.InstallReport) (string, error) {
	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create report directory").
			WithCause(err)
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode report").
			WithCause(err)
	}
	name := fmt.Sprintf("run-%s.json", report.StartedAt.Format("20060102-150405"))
	path := filepath.Join(a.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report").
			WithCause(err)
	}
	return path, nil
}

var _ ports.ReportWriterPort = ReportFileAdapter{}
