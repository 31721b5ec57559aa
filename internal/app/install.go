package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"devsetup/internal/core"
	"devsetup/internal/policies"
	"devsetup/internal/types"
)

// Install runs one installation pass: build the package list, resolve
// the backend, then attempt every package in sequence. A failing
// package never aborts the pass; the report records every outcome and
// a partial failure is returned as an error after the pass completes,
// so the process can exit non-zero without hiding the summary.
func (s Service) Install(ctx context.Context, req InstallRequest) (InstallResult, error) {
	specs, err := s.buildPackageList(ctx, req)
	if err != nil {
		return InstallResult{}, err
	}
	if len(specs) == 0 {
		log.Warn().Msg("nothing to install")
		return InstallResult{}, nil
	}

	kind, unavailable := s.resolveManager(ctx, req.Manager, !req.DryRun)
	if unavailable != nil {
		log.Warn().Err(unavailable).Msg("continuing without a working package manager; installs will fail individually")
	}

	if !req.DryRun && !req.Force && !req.NonInteractive {
		proceed, err := s.Prompter.Confirm(fmt.Sprintf("Install %d package(s) with %s?", len(specs), kind), true)
		if err != nil {
			return InstallResult{}, err
		}
		if !proceed {
			return InstallResult{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("installation aborted")
		}
	}

	policy := policies.NewNamePolicy(nil)
	report := types.InstallReport{
		Manager:   kind,
		DryRun:    req.DryRun,
		StartedAt: s.Clock(),
	}
	for _, spec := range specs {
		if strings.TrimSpace(spec.Name) == "" {
			continue
		}
		report.Results = append(report.Results, s.installOne(ctx, kind, policy, spec, req.DryRun))
	}
	report.FinishedAt = s.Clock()

	result := InstallResult{Report: report}
	if path, err := s.Reports.Write(report); err != nil {
		log.Warn().Err(err).Msg("failed to persist run report")
	} else {
		result.ReportPath = path
	}

	if report.Failed() {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("install run completed with failures: %d of %d packages failed",
				report.FailedCount(), len(report.Results)))
	}
	return result, nil
}

// buildPackageList expands the request into the ordered package list.
// Stack selection wins over --tools, which wins over a custom file.
func (s Service) buildPackageList(ctx context.Context, req InstallRequest) ([]types.PackageSpec, error) {
	switch {
	case strings.TrimSpace(req.Stack) != "":
		catalog, err := s.loadCatalog(ctx, req.StacksFile)
		if err != nil {
			return nil, err
		}
		stack, err := core.ResolveStack(catalog, req.Stack)
		if err != nil {
			return nil, err
		}
		editor, err := s.editorChoice(req)
		if err != nil {
			return nil, err
		}
		return core.BuildPackageList(stack, editor), nil
	case strings.TrimSpace(req.Tools) != "":
		return core.ParseToolList(req.Tools), nil
	case strings.TrimSpace(req.CustomFile) != "":
		names, err := s.PackageFile.Read(req.CustomFile)
		if err != nil {
			return nil, err
		}
		return core.SpecsFromNames(names), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("nothing selected: pass a stack flag, --tools, or --custom")
	}
}

func (s Service) loadCatalog(ctx context.Context, stacksFile string) ([]types.StackDefinition, error) {
	if strings.TrimSpace(stacksFile) == "" {
		return core.Catalog(), nil
	}
	overrides, err := s.StackSource.Load(stacksFile)
	if err != nil {
		return nil, err
	}
	return core.CompileCatalog(ctx, overrides)
}

// editorChoice resolves the one interactive decision of a stack run.
// An explicit request wins; non-interactive runs take the default
// without prompting.
func (s Service) editorChoice(req InstallRequest) (types.EditorChoice, error) {
	if req.Editor != "" {
		switch req.Editor {
		case types.EditorChoiceVSCode, types.EditorChoiceAlternate, types.EditorChoiceBoth, types.EditorChoiceNone:
			return req.Editor, nil
		default:
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unknown editor choice %q (valid: vscode, alternate, both, none)", req.Editor))
		}
	}
	if req.NonInteractive {
		return types.EditorChoiceVSCode, nil
	}
	return s.Prompter.EditorChoice(types.EditorChoiceVSCode)
}

// installOne attempts a single package and records the outcome. Dry
// runs record a synthetic success without spawning anything.
func (s Service) installOne(ctx context.Context, kind types.ManagerKind, policy policies.NamePolicy, spec types.PackageSpec, dryRun bool) types.InstallResult {
	invocation, err := s.invocationFor(kind, policy, spec)
	if err != nil {
		return types.InstallResult{Spec: spec, Status: types.InstallStatusFailed, Detail: err.Error()}
	}
	if dryRun {
		log.Info().Str("package", spec.Name).Str("command", invocation.String()).Msg("dry run")
		return types.InstallResult{
			Spec:   spec,
			Status: types.InstallStatusDryRun,
			Detail: "would run: " + invocation.String(),
		}
	}
	log.Info().Str("package", spec.Name).Msg("installing")
	if _, err := s.Runner.Run(ctx, invocation.Name, invocation.Args...); err != nil {
		log.Warn().Err(err).Str("package", spec.Name).Msg("install failed")
		return types.InstallResult{Spec: spec, Status: types.InstallStatusFailed, Detail: err.Error()}
	}
	return types.InstallResult{Spec: spec, Status: types.InstallStatusSucceeded}
}

func (s Service) invocationFor(kind types.ManagerKind, policy policies.NamePolicy, spec types.PackageSpec) (core.Invocation, error) {
	switch spec.Kind {
	case types.PackageKindPip:
		return core.PipInvocation(spec.Name), nil
	case types.PackageKindExtension:
		return core.ExtensionInvocation(spec.Name), nil
	default:
		return core.InstallInvocation(kind, policy.BackendID(kind, spec.Name), spec.Args)
	}
}
