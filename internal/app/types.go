package app

import "devsetup/internal/types"

// InstallRequest selects what to install and how. Exactly one of
// Stack, Tools, or CustomFile drives the package list; when several
// are set, that order wins. Manager empty means auto-detect. Editor
// empty means ask (or take the default when non-interactive).
type InstallRequest struct {
	Stack          string
	Tools          string
	CustomFile     string
	StacksFile     string
	Manager        types.ManagerKind
	Editor         types.EditorChoice
	DryRun         bool
	NonInteractive bool
	Force          bool
}

type InstallResult struct {
	Report     types.InstallReport
	ReportPath string
}

type DoctorResult struct {
	Probes []types.ProbeResult
}

type StacksRequest struct {
	StacksFile string
}

type StacksResult struct {
	Stacks []types.StackDefinition
}
