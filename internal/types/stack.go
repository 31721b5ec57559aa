package types

// PackageSpec is one logical install unit. Name is the logical
// identifier; the backend-specific id is resolved by the name policy
// at invocation time. Args carries optional extra arguments appended
// to the backend invocation verbatim.
type PackageSpec struct {
	Name string      `json:"name" yaml:"name"`
	Args string      `json:"args,omitempty" yaml:"args,omitempty"`
	Kind PackageKind `json:"kind" yaml:"kind"`
}

// StackDefinition is a named bundle of packages targeting one
// development scenario. Packages are system-level installs delegated
// to the resolved backend; PipPackages go through pip and may carry
// PEP 440 pins; Extensions go through the VS Code extension CLI.
type StackDefinition struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Packages    []string `yaml:"packages"`
	PipPackages []string `yaml:"pip_packages"`
	Extensions  []string `yaml:"vscode_extensions"`
}

// ProbeResult records the outcome of checking one backend for
// presence. Version is the first line of the backend's --version
// output when present.
type ProbeResult struct {
	Kind    ManagerKind `json:"manager"`
	Present bool        `json:"present"`
	Version string      `json:"version,omitempty"`
}
