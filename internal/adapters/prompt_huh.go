package adapters

import (
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"devsetup/internal/ports"
	"devsetup/internal/types"
)

// HuhPrompter asks for the editor choice with a single select prompt.
// Without a terminal on stdin it returns the default silently, so
// pipelines and non-interactive runs never block.
type HuhPrompter struct {
	isTerminal func() bool
}

// runFormFunc is swapped out in tests to avoid driving a real TTY.
var runFormFunc = func(form *huh.Form) error { return form.Run() }

func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

func (p *HuhPrompter) EditorChoice(defaultChoice types.EditorChoice) (types.EditorChoice, error) {
	checker := p.isTerminal
	if checker == nil || !checker() {
		return defaultChoice, nil
	}

	choice := defaultChoice
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[types.EditorChoice]().
				Title("Which editor should this stack install?").
				Options(
					huh.NewOption("VS Code", types.EditorChoiceVSCode),
					huh.NewOption("Notepad++", types.EditorChoiceAlternate),
					huh.NewOption("Both", types.EditorChoiceBoth),
					huh.NewOption("Neither", types.EditorChoiceNone),
				).
				Value(&choice),
		),
	)
	if err := runFormFunc(form); err != nil {
		return defaultChoice, err
	}
	return choice, nil
}

func (p *HuhPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	checker := p.isTerminal
	if checker == nil || !checker() {
		return defaultValue, nil
	}

	value := defaultValue
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&value),
		),
	)
	if err := runFormFunc(form); err != nil {
		return defaultValue, err
	}
	return value, nil
}

var _ ports.PrompterPort = (*HuhPrompter)(nil)
