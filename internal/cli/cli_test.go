package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"install", "stacks", "doctor"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestRootCommandPersistentFlags(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"config", "log-level", "debug"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing flag: %s", name)
	}
}

func TestInstallCommandFlags(t *testing.T) {
	cmd := newInstallCommand()
	flags := []string{
		"web-dev", "data-science", "dotnet", "mobile-dev", "devops",
		"tools", "custom", "stacks-file", "editor",
		"non-interactive", "dry-run", "force",
		"choco", "scoop", "winget",
	}
	for _, name := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestStacksCommandFlags(t *testing.T) {
	cmd := newStacksCommand()
	assert.NotNil(t, cmd.Flags().Lookup("stacks-file"))
}

// ---------- Selection helper tests ----------

func TestSelectedStackPriorityOrder(t *testing.T) {
	assert.Equal(t, "web-dev", selectedStack(installOptions{WebDev: true, DevOps: true}))
	assert.Equal(t, "data-science", selectedStack(installOptions{DataScience: true, MobileDev: true}))
	assert.Equal(t, "devops", selectedStack(installOptions{DevOps: true}))
	assert.Empty(t, selectedStack(installOptions{}))
}

func TestSelectedManager(t *testing.T) {
	assert.Equal(t, "choco", string(selectedManager(installOptions{Choco: true, Winget: true})))
	assert.Equal(t, "scoop", string(selectedManager(installOptions{Scoop: true})))
	assert.Empty(t, string(selectedManager(installOptions{})))
}

// ---------- Exit code mapping tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			"invalid argument",
			errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("unknown stack"),
			2,
		},
		{
			"manager unavailable",
			errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("package manager unavailable: winget is not installed"),
			4,
		},
		{
			"partial install failure",
			errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("install run completed with failures: 1 of 3 packages failed"),
			6,
		},
		{
			"missing file",
			errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("custom package file not found"),
			5,
		},
		{
			"internal",
			errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("command failed"),
			5,
		},
		{
			"plain error",
			assert.AnError,
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, exitCodeForError(tt.err))
		})
	}
}
