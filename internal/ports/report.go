package ports

import "devsetup/internal/types"

// ReportWriterPort persists the machine-readable report of one run.
// Returns the path it was written to.
type ReportWriterPort interface {
	Write(report types.InstallReport) (string, error)
}
