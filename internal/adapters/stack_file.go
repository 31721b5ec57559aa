package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"devsetup/internal/ports"
	"devsetup/internal/types"
)

// StackFileAdapter loads stack-catalog overrides from a YAML file of
// the form:
//
//	stacks:
//	  - name: web-dev
//	    packages: [git, nodejs]
//	    pip_packages: []
//	    vscode_extensions: []
type StackFileAdapter struct{}

func NewStackFileAdapter() StackFileAdapter {
	return StackFileAdapter{}
}

func (a StackFileAdapter) Load(path string) ([]types.StackDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("stacks file not found").
			WithCause(err)
	}
	var wrapper struct {
		Stacks []types.StackDefinition `yaml:"stacks"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse stacks file").
			WithCause(err)
	}
	return wrapper.Stacks, nil
}

var _ ports.StackSourcePort = StackFileAdapter{}
