package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"devsetup/internal/shared"
	"devsetup/internal/types"
)

// The two editor entries controlled by the editor choice. They never
// appear in stack package lists directly; BuildPackageList adds them
// according to the choice gathered before the run.
const (
	EditorPackageVSCode    = "vscode"
	EditorPackageAlternate = "notepadplusplus"
)

// builtinCatalog mirrors the stack composition of the original setup
// tool: system packages per backend, Python packages through pip, and
// VS Code extensions through the editor CLI.
var builtinCatalog = []types.StackDefinition{
	{
		Name:        "web-dev",
		Description: "Web development (Node.js toolchain)",
		Packages:    []string{"git", "nodejs", "yarn"},
		Extensions:  []string{"dbaeumer.vscode-eslint", "esbenp.prettier-vscode"},
	},
	{
		Name:        "data-science",
		Description: "Data science (Python toolchain)",
		Packages:    []string{"git", "python"},
		PipPackages: []string{"numpy", "pandas", "matplotlib", "jupyter", "scikit-learn"},
		Extensions:  []string{"ms-python.python", "ms-toolsai.jupyter"},
	},
	{
		Name:        "dotnet",
		Description: ".NET development",
		Packages:    []string{"git", "dotnet-sdk"},
		Extensions:  []string{"ms-dotnettools.csdevkit"},
	},
	{
		Name:        "mobile-dev",
		Description: "Mobile development (Flutter and Android)",
		Packages:    []string{"git", "openjdk", "androidstudio", "flutter"},
		Extensions:  []string{"dart-code.flutter"},
	},
	{
		Name:        "devops",
		Description: "DevOps and infrastructure tooling",
		Packages:    []string{"git", "docker-desktop", "kubernetes-cli", "kubernetes-helm", "terraform", "azure-cli"},
		Extensions:  []string{"ms-azuretools.vscode-docker", "hashicorp.terraform"},
	},
}

// Catalog returns the built-in stack definitions.
func Catalog() []types.StackDefinition {
	stacks := make([]types.StackDefinition, len(builtinCatalog))
	copy(stacks, builtinCatalog)
	return stacks
}

// ResolveStack finds a stack by name in the given catalog. Lookup is
// case-insensitive. An unknown name is an invalid-argument error that
// names the valid choices.
func ResolveStack(catalog []types.StackDefinition, name string) (types.StackDefinition, error) {
	normalized := shared.NormalizeName(name)
	names := make([]string, 0, len(catalog))
	for _, stack := range catalog {
		if shared.NormalizeName(stack.Name) == normalized {
			return stack, nil
		}
		names = append(names, stack.Name)
	}
	return types.StackDefinition{}, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unknown stack %q (valid: %s)", name, strings.Join(names, ", ")))
}

// BuildPackageList expands a stack into the ordered package list for
// one run. It is pure: the editor choice is an explicit parameter, so
// the expansion is testable without a terminal. The editor entries are
// stripped from the base list and re-added per the choice; blanks are
// dropped and duplicates removed, first occurrence wins. Extensions
// are only included when the choice installs VS Code, since the
// extension CLI ships with the editor.
func BuildPackageList(stack types.StackDefinition, editor types.EditorChoice) []types.PackageSpec {
	names := make([]string, 0, len(stack.Packages)+2)
	for _, name := range stack.Packages {
		normalized := shared.NormalizeName(name)
		if normalized == EditorPackageVSCode || normalized == EditorPackageAlternate {
			continue
		}
		names = append(names, name)
	}
	switch editor {
	case types.EditorChoiceVSCode:
		names = append(names, EditorPackageVSCode)
	case types.EditorChoiceAlternate:
		names = append(names, EditorPackageAlternate)
	case types.EditorChoiceBoth:
		names = append(names, EditorPackageVSCode, EditorPackageAlternate)
	}

	specs := appendSpecs(nil, names, types.PackageKindSystem)
	specs = appendSpecs(specs, stack.PipPackages, types.PackageKindPip)
	if editor == types.EditorChoiceVSCode || editor == types.EditorChoiceBoth {
		specs = appendSpecs(specs, stack.Extensions, types.PackageKindExtension)
	}
	return specs
}

// appendSpecs adds one spec per identifier, skipping blanks and
// duplicates already present in the list.
func appendSpecs(specs []types.PackageSpec, names []string, kind types.PackageKind) []types.PackageSpec {
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		duplicate := false
		for _, existing := range specs {
			if existing.Kind == kind && shared.NormalizeName(existing.Name) == shared.NormalizeName(trimmed) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		specs = append(specs, types.PackageSpec{Name: trimmed, Kind: kind})
	}
	return specs
}

// CompileCatalog validates stack definitions loaded from an override
// file and merges them over the built-in catalog. An override with the
// same name as a built-in stack replaces it; new names extend the
// catalog. Pip entries may carry PEP 440 pins, which are validated
// here so a broken pin fails the run before anything is installed.
func CompileCatalog(ctx context.Context, overrides []types.StackDefinition) ([]types.StackDefinition, error) {
	seen := map[string]struct{}{}
	for _, stack := range overrides {
		assert.NotEmpty(ctx, stack.Name, "stack name must be set")
		normalized := shared.NormalizeName(stack.Name)
		if normalized == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("stack name must not be empty")
		}
		if _, duplicate := seen[normalized]; duplicate {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("stack %q defined twice", stack.Name))
		}
		seen[normalized] = struct{}{}
		if len(stack.Packages) == 0 && len(stack.PipPackages) == 0 && len(stack.Extensions) == 0 {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("stack %q has no packages", stack.Name))
		}
		for _, pin := range stack.PipPackages {
			if err := ValidatePipPin(pin); err != nil {
				return nil, err
			}
		}
	}

	catalog := Catalog()
	for _, stack := range overrides {
		replaced := false
		for i, existing := range catalog {
			if shared.NormalizeName(existing.Name) == shared.NormalizeName(stack.Name) {
				catalog[i] = stack
				replaced = true
				break
			}
		}
		if !replaced {
			catalog = append(catalog, stack)
		}
	}
	log.Ctx(ctx).Debug().Int("stacks", len(catalog)).Msg("stack catalog compiled")
	return catalog, nil
}

// pipSpecifierOps in match order; two-character operators first so
// "==" is not split as "=".
var pipSpecifierOps = []string{"==", "!=", "~=", ">=", "<=", ">", "<"}

// ValidatePipPin checks one pip entry of the form "name" or
// "name<specifier>" (e.g. "numpy==1.26"). The specifier part must be a
// valid PEP 440 specifier set.
func ValidatePipPin(entry string) error {
	trimmed := strings.TrimSpace(entry)
	if trimmed == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("pip package entry must not be empty")
	}
	split := len(trimmed)
	for _, op := range pipSpecifierOps {
		if idx := strings.Index(trimmed, op); idx >= 0 && idx < split {
			split = idx
		}
	}
	name := strings.TrimSpace(trimmed[:split])
	if name == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("pip entry %q has no package name", entry))
	}
	if split == len(trimmed) {
		return nil
	}
	if _, err := pep440.NewSpecifiers(trimmed[split:]); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("pip entry %q has an invalid version pin", entry)).
			WithCause(err)
	}
	return nil
}
