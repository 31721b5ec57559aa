package types

type ManagerKind string

const (
	ManagerChocolatey ManagerKind = "choco"
	ManagerScoop      ManagerKind = "scoop"
	ManagerWinget     ManagerKind = "winget"
)

// ManagerProbeOrder is the detection priority when no backend was
// requested explicitly. The first backend found present wins.
var ManagerProbeOrder = []ManagerKind{
	ManagerChocolatey,
	ManagerScoop,
	ManagerWinget,
}

// ManagerFallback is assumed present on the target OS family and is
// used when no backend can be detected. It is never bootstrapped.
const ManagerFallback = ManagerWinget

type PackageKind string

const (
	PackageKindSystem    PackageKind = "system"
	PackageKindPip       PackageKind = "pip"
	PackageKindExtension PackageKind = "vscode-extension"
)

type EditorChoice string

const (
	EditorChoiceNone      EditorChoice = "none"
	EditorChoiceVSCode    EditorChoice = "vscode"
	EditorChoiceAlternate EditorChoice = "alternate"
	EditorChoiceBoth      EditorChoice = "both"
)

type InstallStatus string

const (
	InstallStatusSucceeded InstallStatus = "succeeded"
	InstallStatusFailed    InstallStatus = "failed"
	InstallStatusDryRun    InstallStatus = "would-install"
)
