package app

import (
	"context"
	"time"

	"devsetup/internal/types"
)

type stubRunner struct {
	calls [][]string
	fail  func(name string, args []string) error
}

func (r *stubRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.fail != nil {
		if err := r.fail(name, args); err != nil {
			return "", err
		}
	}
	return "ok", nil
}

type stubManager struct {
	present           map[types.ManagerKind]bool
	bootstraps        []types.ManagerKind
	bootstrapInstalls bool
	bootstrapErr      error
}

func (m *stubManager) Probe(_ context.Context, kind types.ManagerKind) types.ProbeResult {
	if m.present[kind] {
		return types.ProbeResult{Kind: kind, Present: true, Version: "1.0.0"}
	}
	return types.ProbeResult{Kind: kind}
}

func (m *stubManager) Bootstrap(_ context.Context, kind types.ManagerKind) error {
	m.bootstraps = append(m.bootstraps, kind)
	if m.bootstrapErr != nil {
		return m.bootstrapErr
	}
	if m.bootstrapInstalls {
		if m.present == nil {
			m.present = map[types.ManagerKind]bool{}
		}
		m.present[kind] = true
	}
	return nil
}

type stubPrompter struct {
	choice        types.EditorChoice
	confirm       bool
	editorPrompts int
}

func (p *stubPrompter) EditorChoice(defaultChoice types.EditorChoice) (types.EditorChoice, error) {
	p.editorPrompts++
	if p.choice == "" {
		return defaultChoice, nil
	}
	return p.choice, nil
}

func (p *stubPrompter) Confirm(string, bool) (bool, error) {
	return p.confirm, nil
}

type stubStackSource struct {
	stacks []types.StackDefinition
	err    error
}

func (s stubStackSource) Load(string) ([]types.StackDefinition, error) {
	return s.stacks, s.err
}

type stubPackageFile struct {
	names []string
	err   error
}

func (s stubPackageFile) Read(string) ([]string, error) {
	return s.names, s.err
}

type stubReports struct {
	written []types.InstallReport
}

func (s *stubReports) Write(report types.InstallReport) (string, error) {
	s.written = append(s.written, report)
	return "run-test.json", nil
}

func newTestService(runner *stubRunner, manager *stubManager) Service {
	return Service{
		Runner:      runner,
		Manager:     manager,
		Prompter:    &stubPrompter{confirm: true},
		StackSource: stubStackSource{},
		PackageFile: stubPackageFile{},
		Reports:     &stubReports{},
		Clock:       func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) },
	}
}

func allPresent() *stubManager {
	return &stubManager{present: map[types.ManagerKind]bool{
		types.ManagerChocolatey: true,
		types.ManagerScoop:      true,
		types.ManagerWinget:     true,
	}}
}
