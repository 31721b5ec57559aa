package ports

import "devsetup/internal/types"

// PrompterPort gathers the interactive decisions of a run: which
// editor(s) a stack should install, and the go-ahead before touching
// the system. Implementations must return the default without
// prompting when no terminal is attached.
type PrompterPort interface {
	EditorChoice(defaultChoice types.EditorChoice) (types.EditorChoice, error)
	Confirm(title string, defaultValue bool) (bool, error)
}
