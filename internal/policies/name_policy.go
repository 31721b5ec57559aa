package policies

import (
	"devsetup/internal/shared"
	"devsetup/internal/types"
)

// NamePolicy maps a logical package name to the id a backend knows it
// by. Resolution order: caller overrides, built-in mappings, then the
// logical name itself. Most names are identical across backends;
// winget is the main divergence with its publisher-qualified ids.
type NamePolicy struct {
	overrides map[types.ManagerKind]map[string]string
}

// Chocolatey and Scoop community ids largely match the logical names,
// so only genuine divergences are listed.
var builtinNames = map[types.ManagerKind]map[string]string{
	types.ManagerChocolatey: {
		"openjdk": "openjdk",
	},
	types.ManagerScoop: {
		"docker-desktop":  "docker",
		"dotnet-sdk":      "dotnet-sdk",
		"kubernetes-cli":  "kubectl",
		"kubernetes-helm": "helm",
		"azure-cli":       "azure-cli",
		"androidstudio":   "android-studio",
	},
	types.ManagerWinget: {
		"git":             "Git.Git",
		"nodejs":          "OpenJS.NodeJS",
		"yarn":            "Yarn.Yarn",
		"python":          "Python.Python.3.12",
		"vscode":          "Microsoft.VisualStudioCode",
		"notepadplusplus": "Notepad++.Notepad++",
		"dotnet-sdk":      "Microsoft.DotNet.SDK.8",
		"openjdk":         "Microsoft.OpenJDK.21",
		"androidstudio":   "Google.AndroidStudio",
		"flutter":         "Flutter.Flutter",
		"docker-desktop":  "Docker.DockerDesktop",
		"kubernetes-cli":  "Kubernetes.kubectl",
		"kubernetes-helm": "Helm.Helm",
		"terraform":       "Hashicorp.Terraform",
		"azure-cli":       "Microsoft.AzureCLI",
	},
}

// NewNamePolicy builds a policy with optional per-backend overrides
// keyed by normalized logical name.
func NewNamePolicy(overrides map[types.ManagerKind]map[string]string) NamePolicy {
	normalized := map[types.ManagerKind]map[string]string{}
	for kind, mapping := range overrides {
		normalized[kind] = map[string]string{}
		for logical, id := range mapping {
			normalized[kind][shared.NormalizeName(logical)] = id
		}
	}
	return NamePolicy{overrides: normalized}
}

// BackendID resolves the id to pass to the backend for a logical
// package name. First match wins; an unmapped name passes through
// unchanged.
func (p NamePolicy) BackendID(kind types.ManagerKind, logical string) string {
	normalized := shared.NormalizeName(logical)
	if mapping, ok := p.overrides[kind]; ok {
		if id, found := mapping[normalized]; found {
			return id
		}
	}
	if mapping, ok := builtinNames[kind]; ok {
		if id, found := mapping[normalized]; found {
			return id
		}
	}
	return normalized
}
